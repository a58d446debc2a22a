// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/minpath/core"
)

var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("render: graph is nil")

	// ErrPathVertexNotFound indicates that a highlighted vertex is not in the graph.
	ErrPathVertexNotFound = errors.New("render: path vertex not found in graph")

	// ErrPathNotAdjacent indicates that two consecutive path vertices share no edge.
	ErrPathNotAdjacent = errors.New("render: path vertices are not adjacent")
)

const (
	colorPath        = "steelblue2"
	colorDefaultNode = "seashell2"
	colorDefaultEdge = "black"
)

// Options configures DOT output.
type Options struct {
	GraphName string
	RankDir   string
}

// Option is a functional option for DOT.
type Option func(*Options)

// WithGraphName sets the DOT graph identifier. Panics on an empty name.
func WithGraphName(name string) Option {
	if name == "" {
		panic("render: WithGraphName(\"\")")
	}
	return func(o *Options) {
		o.GraphName = name
	}
}

// WithRankDir sets the Graphviz rankdir attribute ("LR", "TB", ...).
func WithRankDir(dir string) Option {
	return func(o *Options) {
		o.RankDir = dir
	}
}

// DefaultOptions returns graph name "G", left-to-right layout.
func DefaultOptions() Options {
	return Options{GraphName: "G", RankDir: "LR"}
}

// DOT renders g as an undirected Graphviz graph and highlights path.
// A nil or empty path highlights nothing.
func DOT(g *core.Graph, path []string, opts ...Option) (string, error) {
	graph, err := build(g, path, opts...)
	if err != nil {
		return "", err
	}

	return graph.String(), nil
}

// build assembles the gographviz graph behind DOT.
func build(g *core.Graph, path []string, opts ...Option) (*gographviz.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	onPath, hops, err := pathSets(g, path)
	if err != nil {
		return nil, err
	}

	graph := gographviz.NewGraph()
	if err = graph.SetName(quote(cfg.GraphName)); err != nil {
		return nil, fmt.Errorf("render: graph name: %w", err)
	}
	if err = graph.SetDir(false); err != nil {
		return nil, fmt.Errorf("render: graph direction: %w", err)
	}
	if cfg.RankDir != "" {
		if err = graph.AddAttr(graph.Name, "rankdir", cfg.RankDir); err != nil {
			return nil, fmt.Errorf("render: rankdir: %w", err)
		}
	}

	for _, id := range g.Vertices() {
		attrs := map[string]string{
			"label":     quote(id),
			"shape":     "circle",
			"style":     "filled",
			"fillcolor": colorDefaultNode,
		}
		if onPath[id] {
			attrs["fillcolor"] = colorPath
			attrs["penwidth"] = "2"
		}
		if err = graph.AddNode(graph.Name, quote(id), attrs); err != nil {
			return nil, fmt.Errorf("render: node %q: %w", id, err)
		}
	}

	for _, e := range g.Edges() {
		attrs := map[string]string{
			"label": strconv.FormatInt(e.Weight, 10),
			"color": colorDefaultEdge,
		}
		if hops[pairKey(e.From, e.To)] {
			attrs["color"] = colorPath
			attrs["penwidth"] = "2"
		}
		if err = graph.AddEdge(quote(e.From), quote(e.To), false, attrs); err != nil {
			return nil, fmt.Errorf("render: edge %s—%s: %w", e.From, e.To, err)
		}
	}

	return graph, nil
}

// pathSets validates path against g and returns its vertex set and the
// undirected pairs it traverses.
func pathSets(g *core.Graph, path []string) (map[string]bool, map[string]bool, error) {
	onPath := make(map[string]bool, len(path))
	hops := make(map[string]bool, len(path))
	for i, id := range path {
		if !g.HasVertex(id) {
			return nil, nil, fmt.Errorf("%w: %q", ErrPathVertexNotFound, id)
		}
		onPath[id] = true
		if i == 0 {
			continue
		}
		if !g.HasEdge(path[i-1], id) {
			return nil, nil, fmt.Errorf("%w: %s—%s", ErrPathNotAdjacent, path[i-1], id)
		}
		hops[pairKey(path[i-1], id)] = true
	}

	return onPath, hops, nil
}

func pairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}

	return a + "\x00" + b
}

// quote makes any vertex ID a valid DOT identifier.
func quote(id string) string {
	return strconv.Quote(id)
}
