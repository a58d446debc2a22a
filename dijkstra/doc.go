// SPDX-License-Identifier: MIT

// Package dijkstra finds minimum-cost paths between two vertices of a weighted
// undirected core.Graph with non-negative edge weights.
//
// Overview:
//
//   - Run computes distances from one source to every vertex by greedy
//     relaxation: repeatedly take the unvisited vertex with the smallest known
//     distance, mark it visited, and relax every incident edge.
//   - Result.PathTo rebuilds a path by following predecessors backward from
//     the end vertex and reversing.
//   - ShortestPath wraps both and returns (path, distance) for a start/end pair.
//
// Selection strategies:
//
//   - SelectScan (default): linear scan of the unvisited set, O(V²).
//   - SelectHeap: lazy decrease-key min-heap, O((V + E) log V).
//
// Both strategies break distance ties by the lexicographically smallest vertex
// ID, so they visit vertices in the same order and produce identical
// distances, predecessors and examined totals.
//
// Distance figure:
//
//	DistanceShortest – dist[end], the true shortest-path distance (default).
//	DistanceExamined – sum of every edge weight examined during relaxation.
//	                   On an undirected graph where every vertex is expanded
//	                   this is twice the total edge weight (loops once).
//
// Edge cases:
//
//   - start == end: path [start], distance 0.
//   - end unreachable: path [end], distance Infinity.
//   - Disconnected graphs: the main loop still runs exactly |V| times.
//
// Errors (sentinel, use errors.Is):
//
//	ErrNilGraph       – graph pointer is nil.
//	ErrEmptyVertexID  – start or end ID is empty.
//	ErrVertexNotFound – start or end is not in the graph.
//	ErrNegativeWeight – some edge has a negative weight (O(E) pre-scan).
//	ErrNotAdjacent    – PathWeight was given a non-contiguous path.
//
// Example usage:
//
//	path, dist, err := dijkstra.ShortestPath(g, "A", "F")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(path, dist) // [A C B D E F] 12
//
// Thread safety: a query only reads g; concurrent queries on an unchanging
// graph are safe. Mutating g during a query is not supported.
package dijkstra
