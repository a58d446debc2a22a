// SPDX-License-Identifier: MIT

// Package render draws a core.Graph as Graphviz DOT text, optionally
// highlighting one path (typically the result of dijkstra.ShortestPath).
//
// Every vertex becomes a node and every edge an undirected edge labelled with
// its weight. Vertices and edges on the highlighted path are drawn in a
// distinct colour with a thicker pen. Output is deterministic: nodes are
// emitted in vertex-ID order and edges in insertion order.
//
//	path, _, _ := dijkstra.ShortestPath(g, "A", "F")
//	dot, err := render.DOT(g, path, render.WithGraphName("route"))
package render
