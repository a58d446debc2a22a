// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/minpath/core"
)

// Run computes shortest distances from source to every vertex of g.
//
// Every vertex leaves the unvisited set exactly once. On each iteration the
// unvisited vertex with the smallest known distance is selected (ties go to
// the lexicographically smallest ID) and all of its incident edges are
// relaxed, including edges back to already-visited vertices. Vertices that are
// unreachable keep Infinity and no predecessor.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be non-empty (ErrEmptyVertexID).
//  3. g must contain source (ErrVertexNotFound).
//  4. No edge in g can have negative weight (ErrNegativeWeight).
//
// Complexity:
//   - SelectScan: O(V² + E log d) time.
//   - SelectHeap: O((V + E) log V) time.
//   - Space: O(V + E).
func Run(g *core.Graph, source string, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validate(g, source); err != nil {
		return nil, err
	}

	r := newRunner(g, cfg, source)
	var err error
	switch cfg.Selection {
	case SelectHeap:
		err = r.processHeap()
	default:
		err = r.processScan()
	}
	if err != nil {
		return nil, err
	}

	return &Result{
		Source:   source,
		Dist:     r.dist,
		Prev:     r.prev,
		Order:    r.order,
		Examined: r.examined,
	}, nil
}

// validate checks the graph, every requested vertex ID, and pre-scans all
// edges for negative weights so no query starts on malformed input.
func validate(g *core.Graph, ids ...string) error {
	if g == nil {
		return ErrNilGraph
	}
	for _, id := range ids {
		if id == "" {
			return ErrEmptyVertexID
		}
	}
	for _, id := range ids {
		if !g.HasVertex(id) {
			return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
		}
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %s—%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	return nil
}

// runner holds the mutable state for a single query.
type runner struct {
	g         *core.Graph
	options   Options
	source    string
	dist      map[string]int64    // vertex → best known distance from source
	prev      map[string]string   // vertex → predecessor, "" for none
	unvisited map[string]struct{} // vertices not yet selected
	order     []string            // selection order
	examined  int64               // sum of every edge weight looked at by relax
	pq        nodePQ              // SelectHeap only
}

// newRunner sets dist[v] = Infinity and prev[v] = "" for every vertex,
// then dist[source] = 0.
func newRunner(g *core.Graph, cfg Options, source string) *runner {
	vertices := g.Vertices()
	r := &runner{
		g:         g,
		options:   cfg,
		source:    source,
		dist:      make(map[string]int64, len(vertices)),
		prev:      make(map[string]string, len(vertices)),
		unvisited: make(map[string]struct{}, len(vertices)),
		order:     make([]string, 0, len(vertices)),
	}
	for _, v := range vertices {
		r.dist[v] = Infinity
		r.prev[v] = ""
		r.unvisited[v] = struct{}{}
	}
	r.dist[source] = 0

	return r
}

// processScan drains the unvisited set by repeated linear minimum search.
// The loop runs exactly |V| times regardless of connectivity.
func (r *runner) processScan() error {
	for len(r.unvisited) > 0 {
		u := r.closest()
		if err := r.visit(u); err != nil {
			return err
		}
	}

	return nil
}

// closest returns the unvisited vertex with minimum (dist, ID).
func (r *runner) closest() string {
	var best string
	first := true
	for v := range r.unvisited {
		if first || less(r.dist[v], v, r.dist[best], best) {
			best, first = v, false
		}
	}

	return best
}

// processHeap pops candidates from a lazy decrease-key heap. Once the heap is
// empty, the remaining unvisited vertices are unreachable; they are selected
// in ID order, which is exactly the order the scan strategy would pick them.
func (r *runner) processHeap() error {
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.source, dist: 0})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if _, open := r.unvisited[item.id]; !open {
			continue // stale entry
		}
		if err := r.visit(item.id); err != nil {
			return err
		}
	}

	for len(r.unvisited) > 0 {
		if err := r.visit(r.closest()); err != nil {
			return err
		}
	}

	return nil
}

// visit moves u from unvisited to visited and relaxes its edges.
func (r *runner) visit(u string) error {
	delete(r.unvisited, u)
	r.order = append(r.order, u)

	return r.relax(u)
}

// relax examines every edge incident to u. Each examined weight is added to
// the examined total whether or not it improves anything. A candidate
// distance replaces dist[v] only when strictly smaller.
func (r *runner) relax(u string) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	du := r.dist[u]
	for _, e := range edges {
		v, w := e.Other(u), e.Weight
		r.examined += w

		if du == Infinity || w >= r.options.InfEdgeThreshold {
			continue
		}
		if w > Infinity-du {
			continue // would overflow int64
		}
		nd := du + w
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			continue
		}

		r.dist[v] = nd
		r.prev[v] = u
		if r.options.Selection == SelectHeap {
			heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
		}
	}

	return nil
}

// less orders (distance, ID) pairs; ID breaks distance ties.
func less(da int64, a string, db int64, b string) bool {
	if da != db {
		return da < db
	}

	return a < b
}

// nodeItem is a heap entry: a vertex and the distance it was pushed with.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	return less(pq[i].dist, pq[i].id, pq[j].dist, pq[j].id)
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
