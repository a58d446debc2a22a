// SPDX-License-Identifier: MIT

// Package minpath finds minimum-weight routes through weighted undirected
// graphs.
//
// The module is organised into four packages:
//
//	core/     — thread-safe Graph, Vertex and Edge types
//	builder/  — graph construction: explicit edge lists, the A–F reference
//	            network, YAML/JSON documents, seeded random fixtures
//	dijkstra/ — single-source distances and start→end shortest paths
//	render/   — Graphviz DOT output with a highlighted route
//
// Quick example:
//
//	g, _ := builder.BuildGraph(nil, nil, builder.Reference())
//	path, dist, _ := dijkstra.ShortestPath(g, "A", "F")
//	fmt.Println(path, dist) // [A C B D E F] 12
//
// Edge weights must be non-negative integers. An unreachable end vertex is
// not an error: the path is just [end] and the distance is dijkstra.Infinity.
package minpath
