// SPDX-License-Identifier: MIT
// Package dijkstra_test provides runnable examples for the shortest-path finder.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/minpath/builder"
	"github.com/katalvlaran/minpath/core"
	"github.com/katalvlaran/minpath/dijkstra"
)

// ExampleShortestPath queries the A–F reference graph from A to F.
func ExampleShortestPath() {
	g, err := builder.BuildGraph(nil, nil, builder.Reference())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path, dist, err := dijkstra.ShortestPath(g, "A", "F")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path, dist)
	// Output: [A C B D E F] 12
}

// ExampleShortestPath_examined reports the cumulative examined-weight figure
// instead of the path length.
func ExampleShortestPath_examined() {
	g, _ := builder.BuildGraph(nil, nil, builder.Reference())

	path, total, err := dijkstra.ShortestPath(g, "A", "F",
		dijkstra.WithDistanceMode(dijkstra.DistanceExamined),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path, total)
	// Output: [A C B D E F] 80
}

// ExampleRun shows the full distance and predecessor tables for one source.
func ExampleRun() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 5)
	_ = g.AddVertex("Z")

	res, err := dijkstra.Run(g, "A", dijkstra.WithSelection(dijkstra.SelectHeap))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range res.Vertices() {
		path, _ := res.PathTo(v)
		fmt.Printf("%s reachable=%t path=%v\n", v, res.Reachable(v), path)
	}
	fmt.Println("order:", res.Order)
	// Output:
	// A reachable=true path=[A]
	// B reachable=true path=[A B]
	// C reachable=true path=[A B C]
	// Z reachable=false path=[Z]
	// order: [A B C Z]
}
