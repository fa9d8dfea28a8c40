// Package wdiam computes the weighted diameter of a graph: the pair of
// vertices whose shortest-path distance is largest, together with the
// path between them.
//
// What is in the box?
//
//	core/     : fixed-order weighted Graph (vertices 1..n), thread-safe
//	matrix/   : weight/predecessor matrices and the Floyd–Warshall solver
//	diameter/ : farthest-pair scan, disconnection policies, path walk
//	edgelist/ : edge-list loader (aggregated line errors) and writers
//	builder/  : deterministic topology generators (path, cycle, grid, …)
//	config/   : YAML + .env + WDIAM_* environment configuration
//	service/  : cached pipeline, Prometheus metrics, HTTP API
//	cmd/wdiam/: the command-line tool (run, matrix, gen, serve)
//
// Quick ASCII example:
//
//	1 ──1── 2 ──1── 3
//	 \_______5_____/
//
// The direct 1–3 edge loses to the route through 2, so the farthest pair is
// (1, 3) at distance 2 along 1 → 2 → 3.
//
//	printf '3 3\n1 2 1\n2 3 1\n1 3 5\n' | wdiam run
package wdiam
