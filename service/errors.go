// SPDX-License-Identifier: MIT

package service

import "errors"

// ErrBadInput marks loader failures (malformed or invalid edge lists).
// The loader's own sentinels stay reachable through errors.Is.
var ErrBadInput = errors.New("service: bad input")
