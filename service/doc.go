// SPDX-License-Identifier: MIT

// Package service wires loader, solver and extractor into one pipeline and
// exposes it over HTTP.
//
// Pipeline:
//
//	edge-list text → edgelist.Read → matrix.APSP → diameter.Find → Outcome
//
// Identical graphs (same canonical edge list, direction and policy) are
// answered from an LRU cache. Every run is recorded in Prometheus metrics.
// The context passed to Run bounds the solver; cancellation is honored
// between Floyd–Warshall generations.
package service
