// SPDX-License-Identifier: MIT

// Package config resolves the runtime configuration of wdiam.
//
// Precedence (later wins):
//
//	defaults → YAML file (optional) → .env (godotenv) → WDIAM_* environment → Overrides (CLI flags)
//
// The merged result is checked with go-playground/validator struct tags; all
// violations are reported together.
package config
