// Package core provides a thread-safe in-memory weighted Graph over a fixed,
// contiguous vertex set {1,…,n}.
//
// The Graph is the adjacency mapping consumed by the matrix initializer:
// vertex → neighbor → weight.
//
//   - Undirected by default: AddEdge(u,v,w) installs u→v and v→u.
//   - Directed graphs (WithDirected(true)) store only u→v.
//   - Parallel edges collapse, the last AddEdge wins.
//   - Self-loops are stored but carry no meaning for shortest paths.
//   - Weights are non-negative and bounded by MaxEdgeWeight.
//
// Core Methods:
//
//	NewGraph(n int, opts ...GraphOption) (*Graph, error)  // O(1)
//	AddEdge(from, to int, weight int64) error              // O(1)
//	RemoveEdge(from, to int) error                         // O(1)
//	HasEdge(from, to int) bool                             // O(1)
//	Weight(from, to int) (int64, bool)                     // O(1)
//	Neighbors(id int) ([]int, error)                       // O(d·log d), sorted
//	Edges() []Edge                                         // O(E·log E), sorted
//	VertexCount() int / EdgeCount() int                    // O(1)
//
// Example:
//
//	g, _ := core.NewGraph(3)
//	_ = g.AddEdge(1, 2, 1)
//	_ = g.AddEdge(2, 3, 1)
//	_ = g.AddEdge(1, 3, 5)
package core
