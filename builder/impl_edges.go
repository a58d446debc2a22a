// SPDX-License-Identifier: MIT
// Package: minpath/builder
//
// impl_edges.go - explicit edge lists and the A–F reference network.

package builder

import (
	"fmt"

	"github.com/katalvlaran/minpath/core"
)

const (
	methodEdges     = "Edges"
	methodReference = "Reference"
)

// WeightedEdge is one undirected edge From—To with a traversal Weight.
type WeightedEdge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int64  `json:"weight"`
}

// referenceEdges is the classroom example network: vertices A–F, nine edges,
// total weight 40.
var referenceEdges = []WeightedEdge{
	{"A", "B", 4},
	{"A", "C", 2},
	{"B", "C", 1},
	{"B", "D", 5},
	{"C", "D", 8},
	{"C", "E", 10},
	{"D", "E", 2},
	{"D", "F", 6},
	{"E", "F", 2},
}

// Edges returns a Constructor that adds every edge in list order.
// Endpoints are created on demand; weights are taken verbatim.
// Complexity: O(len(list)).
func Edges(list ...WeightedEdge) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		return addEdges(g, methodEdges, list)
	}
}

// Reference returns a Constructor for the six-vertex A–F network whose
// shortest A→F path is A→C→B→D→E→F with weight 12.
func Reference() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		return addEdges(g, methodReference, referenceEdges)
	}
}

// ReferenceEdges returns a copy of the reference network's edge list.
func ReferenceEdges() []WeightedEdge {
	out := make([]WeightedEdge, len(referenceEdges))
	copy(out, referenceEdges)

	return out
}

func addEdges(g *core.Graph, method string, list []WeightedEdge) error {
	for _, e := range list {
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return fmt.Errorf("%s: AddEdge(%s—%s, w=%d): %w: %w",
				method, e.From, e.To, e.Weight, ErrConstructFailed, err)
		}
	}

	return nil
}
