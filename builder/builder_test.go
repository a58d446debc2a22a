// SPDX-License-Identifier: MIT
package builder_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minpath/builder"
	"github.com/katalvlaran/minpath/core"
)

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Reference(), nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.Contains(t, err.Error(), "index 1")
}

func TestReference(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Reference())
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, g.Vertices())
	assert.Equal(t, 9, g.EdgeCount())
	assert.Equal(t, int64(40), g.TotalWeight())

	w, err := g.Weight("E", "C")
	require.NoError(t, err)
	assert.Equal(t, int64(10), w)

	// The exported copy must not alias the internal table.
	edges := builder.ReferenceEdges()
	edges[0].Weight = 99
	assert.Equal(t, int64(4), builder.ReferenceEdges()[0].Weight)
}

func TestEdges(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Edges(
		builder.WeightedEdge{From: "X", To: "Y", Weight: 3},
		builder.WeightedEdge{From: "Y", To: "Z", Weight: 0},
	))
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge("Z", "Y"))
}

func TestEdges_Rejected(t *testing.T) {
	tests := []struct {
		name string
		edge builder.WeightedEdge
		want error
	}{
		{"empty endpoint", builder.WeightedEdge{From: "A", To: "", Weight: 1}, core.ErrEmptyVertexID},
		{"loop", builder.WeightedEdge{From: "A", To: "A", Weight: 1}, core.ErrLoopNotAllowed},
		{"duplicate", builder.WeightedEdge{From: "B", To: "A", Weight: 1}, core.ErrMultiEdgeNotAllowed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, nil, builder.Reference(), builder.Edges(tc.edge))
			require.ErrorIs(t, err, builder.ErrConstructFailed)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestEdges_LoopsWithGraphOption(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithLoops()}, nil,
		builder.Edges(builder.WeightedEdge{From: "A", To: "A", Weight: 2}),
	)
	require.NoError(t, err)
	assert.True(t, g.HasEdge("A", "A"))
}

func TestFromYAML(t *testing.T) {
	doc := []byte(strings.Join([]string{
		"vertices: [A, Z]",
		"edges:",
		"  - {from: A, to: B, weight: 4}",
		"  - from: B",
		"    to: C",
		"    weight: 1",
	}, "\n"))

	g, err := builder.BuildGraph(nil, nil, builder.FromYAML(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "Z"}, g.Vertices())
	assert.Equal(t, int64(5), g.TotalWeight())
}

func TestFromYAML_JSON(t *testing.T) {
	doc := []byte(`{"edges":[{"from":"A","to":"B","weight":7}]}`)
	d, err := builder.ParseDocument(doc)
	require.NoError(t, err)
	assert.Empty(t, d.Vertices)
	assert.Equal(t, []builder.WeightedEdge{{From: "A", To: "B", Weight: 7}}, d.Edges)
}

func TestFromYAML_BadDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		also error
	}{
		{"not yaml", "edges: [", nil},
		{"weight not a number", "edges:\n  - {from: A, to: B, weight: heavy}", nil},
		{"empty vertex", "vertices: ['']", core.ErrEmptyVertexID},
		{"missing endpoint", "edges:\n  - {from: A, weight: 1}", core.ErrEmptyVertexID},
		{"duplicate pair", "edges:\n  - {from: A, to: B, weight: 1}\n  - {from: B, to: A, weight: 2}", core.ErrMultiEdgeNotAllowed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, nil, builder.FromYAML([]byte(tc.doc)))
			require.ErrorIs(t, err, builder.ErrBadDocument)
			if tc.also != nil {
				require.ErrorIs(t, err, tc.also)
			}
		})
	}
}

func TestRandomSparse_Validation(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		p     float64
		bopts []builder.BuilderOption
		want  error
	}{
		{"n zero", 0, 0.5, nil, builder.ErrTooFewVertices},
		{"p negative", 3, -0.1, nil, builder.ErrInvalidProbability},
		{"p above one", 3, 1.1, nil, builder.ErrInvalidProbability},
		{"no rng", 3, 0.5, nil, builder.ErrNeedRandSource},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, tc.bopts, builder.RandomSparse(tc.n, tc.p))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRandomSparse_Extremes(t *testing.T) {
	empty, err := builder.BuildGraph(nil, nil, builder.RandomSparse(5, 0))
	require.NoError(t, err)
	assert.Equal(t, 5, empty.VertexCount())
	assert.Equal(t, 0, empty.EdgeCount())

	complete, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(3))},
		builder.RandomSparse(5, 1),
	)
	require.NoError(t, err)
	assert.Equal(t, 10, complete.EdgeCount())
	assert.Equal(t, int64(30), complete.TotalWeight())
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func(bopt builder.BuilderOption) *core.Graph {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{
				bopt,
				builder.WithIDScheme(func(i int) string { return "v" + string(rune('a'+i)) }),
				builder.WithWeightFn(builder.UniformWeightFn(1, 9)),
			},
			builder.RandomSparse(8, 0.4),
		)
		require.NoError(t, err)
		return g
	}
	g1 := build(builder.WithSeed(11))
	g2 := build(builder.WithRand(rand.New(rand.NewSource(11))))

	require.Equal(t, g1.EdgeCount(), g2.EdgeCount())
	e1, e2 := g1.Edges(), g2.Edges()
	for i := range e1 {
		assert.Equal(t, [3]interface{}{e1[i].From, e1[i].To, e1[i].Weight},
			[3]interface{}{e2[i].From, e2[i].To, e2[i].Weight})
		assert.GreaterOrEqual(t, e1[i].Weight, int64(1))
		assert.LessOrEqual(t, e1[i].Weight, int64(9))
	}
	assert.Equal(t, "va", g1.Vertices()[0])
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 4) })
	assert.Panics(t, func() { builder.UniformWeightFn(-1, 4) })
}

func TestUniformWeightFn_NilRand(t *testing.T) {
	assert.Equal(t, int64(2), builder.UniformWeightFn(2, 8)(nil))
	assert.Equal(t, int64(4), builder.UniformWeightFn(4, 4)(rand.New(rand.NewSource(1))))
}
