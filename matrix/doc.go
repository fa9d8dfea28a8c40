// Package matrix holds the dense all-pairs shortest-path engine.
//
// The matrix package provides:
//
//   - Distance: a tagged shortest-path length with an explicit Unreachable
//     marker instead of a magic "infinity" weight.
//   - Distances / Predecessors: n×n row-major matrices with safe accessors.
//   - BuildWeights: generation 0 (W, Π) from a core.Graph.
//   - FloydWarshall: the Θ(n³) recurrence with predecessor tracking, a
//     reproducible tie-break, optional row-parallel generations and
//     cancellation between generations.
//
// Indexing: accessors take 0-based indices (vertex v at index v-1);
// predecessor cells store 1-based vertex IDs, NoPredecessor (0) when unknown.
//
// Matrices are best for dense or small graphs where O(n²) memory and
// O(n³) time are acceptable.
package matrix
