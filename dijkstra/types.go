// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"math"
)

// Infinity is the distance recorded for vertices not reachable from the source.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by the shortest-path finder.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptyVertexID indicates that a start or end vertex ID is empty.
	ErrEmptyVertexID = errors.New("dijkstra: vertex ID is empty")

	// ErrVertexNotFound indicates that the start or end vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNotAdjacent indicates that two consecutive path vertices share no edge.
	ErrNotAdjacent = errors.New("dijkstra: path vertices are not adjacent")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or a negative value.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Selection picks the next unvisited vertex on each iteration.
type Selection int

const (
	// SelectScan scans the whole unvisited set for the minimum distance.
	// O(V²) overall; every vertex, reachable or not, is expanded once.
	SelectScan Selection = iota

	// SelectHeap keeps candidates in a lazy decrease-key min-heap.
	// O((V + E) log V); vertices never reached are drained afterwards in ID order.
	SelectHeap
)

// String implements fmt.Stringer.
func (s Selection) String() string {
	switch s {
	case SelectScan:
		return "scan"
	case SelectHeap:
		return "heap"
	default:
		return "unknown"
	}
}

// DistanceMode chooses which figure ShortestPath reports as the distance.
type DistanceMode int

const (
	// DistanceShortest reports dist[end], the true minimum path weight
	// (Infinity when end is unreachable, 0 when start == end).
	DistanceShortest DistanceMode = iota

	// DistanceExamined reports the sum of every edge weight examined during
	// relaxation across the whole run, edges off the final path and repeated
	// examinations included. It is a measure of work done, not a path length
	// (80 on the reference network, whose A→F route weighs 12).
	DistanceExamined
)

// String implements fmt.Stringer.
func (m DistanceMode) String() string {
	switch m {
	case DistanceShortest:
		return "shortest"
	case DistanceExamined:
		return "examined"
	default:
		return "unknown"
	}
}

// Options configures a single shortest-path query.
//
// Selection        – how the next vertex is chosen (SelectScan default).
// Mode             – which distance figure ShortestPath returns.
// MaxDistance      – candidates farther than this are never recorded. Default math.MaxInt64.
// InfEdgeThreshold – edges with weight ≥ this are impassable. Default math.MaxInt64.
type Options struct {
	Selection        Selection
	Mode             DistanceMode
	MaxDistance      int64
	InfEdgeThreshold int64
}

// Option represents a functional option for configuring a query.
type Option func(*Options)

// WithSelection sets the vertex selection strategy.
func WithSelection(s Selection) Option {
	return func(o *Options) {
		o.Selection = s
	}
}

// WithDistanceMode sets the figure ShortestPath reports as the distance.
func WithDistanceMode(m DistanceMode) Option {
	return func(o *Options) {
		o.Mode = m
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose distance would exceed max keep Infinity.
// Panics on a negative value.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold marks edges with weight ≥ threshold as impassable.
// Impassable edges are still examined (and counted by DistanceExamined) but never relax.
// Panics on zero or a negative value.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns the defaults every query starts from:
// SelectScan, DistanceShortest, no distance cap, no impassable edges.
func DefaultOptions() Options {
	return Options{
		Selection:        SelectScan,
		Mode:             DistanceShortest,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
