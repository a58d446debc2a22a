// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/minpath/core"
)

// Result is the outcome of a single-source run.
//
// Dist[v] is the minimum distance from Source (Infinity if unreachable).
// Prev[v] is the predecessor of v on one shortest path, "" for Source and
// for unreachable vertices. Order lists vertices in the order they left the
// unvisited set. Examined is the sum of every edge weight relax looked at.
type Result struct {
	Source   string
	Dist     map[string]int64
	Prev     map[string]string
	Order    []string
	Examined int64
}

// Vertices returns every vertex covered by the result, sorted by ID.
func (r *Result) Vertices() []string {
	ids := maps.Keys(r.Dist)
	slices.Sort(ids)

	return ids
}

// Reachable reports whether end has a finite distance from Source.
func (r *Result) Reachable(end string) bool {
	d, ok := r.Dist[end]

	return ok && d != Infinity
}

// DistanceTo returns Dist[end], or ErrVertexNotFound for an unknown vertex.
func (r *Result) DistanceTo(end string) (int64, error) {
	d, ok := r.Dist[end]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, end)
	}

	return d, nil
}

// PathTo walks predecessor links backward from end until a vertex without a
// predecessor is reached, then returns the sequence in start→end order.
//
// If end is unreachable the walk stops immediately and the path is just [end].
// If end == Source the path is [Source].
func (r *Result) PathTo(end string) ([]string, error) {
	if end == "" {
		return nil, ErrEmptyVertexID
	}
	if _, ok := r.Prev[end]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, end)
	}

	var path []string
	for cur := end; cur != ""; cur = r.Prev[cur] {
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}

// ShortestPath returns a minimum-weight path from start to end and a distance.
//
// The distance is chosen by Options.Mode:
//   - DistanceShortest (default): Dist[end]; Infinity if end is unreachable.
//   - DistanceExamined: the run's Examined total.
//
// An unreachable end yields the single-element path [end] and no error.
// Validation fails fast with ErrNilGraph, ErrEmptyVertexID, ErrVertexNotFound
// (start or end missing) or ErrNegativeWeight.
func ShortestPath(g *core.Graph, start, end string, opts ...Option) ([]string, int64, error) {
	if err := validate(g, start, end); err != nil {
		return nil, 0, err
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	res, err := Run(g, start, opts...)
	if err != nil {
		return nil, 0, err
	}
	path, err := res.PathTo(end)
	if err != nil {
		return nil, 0, err
	}

	if cfg.Mode == DistanceExamined {
		return path, res.Examined, nil
	}

	return path, res.Dist[end], nil
}

// PathWeight sums the weights of the edges traversed by path.
// A path of zero or one vertex weighs 0.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrVertexNotFound if a path vertex is missing from g.
//   - ErrNotAdjacent if two consecutive vertices share no edge.
func PathWeight(g *core.Graph, path []string) (int64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	for _, v := range path {
		if !g.HasVertex(v) {
			return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, v)
		}
	}

	var total int64
	for i := 1; i < len(path); i++ {
		w, err := g.Weight(path[i-1], path[i])
		if errors.Is(err, core.ErrEdgeNotFound) {
			return 0, fmt.Errorf("%w: %s—%s", ErrNotAdjacent, path[i-1], path[i])
		}
		if err != nil {
			return 0, err
		}
		total += w
	}

	return total, nil
}
