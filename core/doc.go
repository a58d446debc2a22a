// SPDX-License-Identifier: MIT

// Package core provides the thread-safe, in-memory undirected weighted Graph
// that every other minpath package operates on.
//
// The Graph G = (V,E) keeps a deliberately small surface:
//
//   - Undirected edges only: an edge u—v is visible from both endpoints.
//   - Integer weights (int64). The store does not police signs; algorithms
//     validate weights against their own preconditions before running.
//   - At most one edge per unordered vertex pair (ErrMultiEdgeNotAllowed).
//   - Optional self-loops (WithLoops); rejected by default.
//   - Collision-free Edge.ID generation ("e1", "e2", …).
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj) so readers never contend with each other.
//
// Deterministic iteration:
//
//	Vertices()      – sorted lexicographically.
//	Edges()         – sorted by numeric edge sequence.
//	Neighbors(id)   – sorted by numeric edge sequence.
//	NeighborIDs(id) – unique, sorted lexicographically.
//
// Example:
//
//	g := core.NewGraph()
//	_, _ = g.AddEdge("A", "B", 4)
//	_, _ = g.AddEdge("A", "C", 2)
//	w, _ := g.Weight("B", "A") // 4
//
// Errors:
//
//	ErrEmptyVertexID       – vertex ID is the empty string.
//	ErrVertexNotFound      – requested vertex does not exist.
//	ErrEdgeNotFound        – requested edge does not exist.
//	ErrLoopNotAllowed      – self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed – second edge between the same pair.
package core
