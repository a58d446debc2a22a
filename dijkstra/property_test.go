// SPDX-License-Identifier: MIT
package dijkstra_test

import (
	"fmt"
	"testing"

	"github.com/r3labs/diff/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minpath/builder"
	"github.com/katalvlaran/minpath/core"
	"github.com/katalvlaran/minpath/dijkstra"
)

// bruteForce enumerates every simple path from start and returns the minimum
// total weight per reachable vertex.
func bruteForce(t *testing.T, g *core.Graph, start string) map[string]int64 {
	t.Helper()
	best := map[string]int64{start: 0}
	onPath := map[string]bool{start: true}

	var walk func(u string, acc int64)
	walk = func(u string, acc int64) {
		nbs, err := g.Neighbors(u)
		require.NoError(t, err)
		for _, e := range nbs {
			v := e.Other(u)
			if onPath[v] {
				continue
			}
			d := acc + e.Weight
			if cur, ok := best[v]; !ok || d < cur {
				best[v] = d
			}
			onPath[v] = true
			walk(v, d)
			onPath[v] = false
		}
	}
	walk(start, 0)

	return best
}

// TestShortestPath_MatchesBruteForce checks, on many small random graphs, that
// distances equal the exhaustive minimum, that every path is a chain of
// adjacent vertices whose weights sum to the distance, and that both
// selection strategies agree on everything they record.
func TestShortestPath_MatchesBruteForce(t *testing.T) {
	const (
		seeds    = 40
		vertices = 7
		density  = 0.35
	)
	for seed := int64(1); seed <= seeds; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			g, err := builder.BuildGraph(nil,
				[]builder.BuilderOption{
					builder.WithSeed(seed),
					builder.WithWeightFn(builder.UniformWeightFn(0, 9)),
				},
				builder.RandomSparse(vertices, density),
			)
			require.NoError(t, err)

			start := g.Vertices()[0]
			want := bruteForce(t, g, start)

			scan, err := dijkstra.Run(g, start, dijkstra.WithSelection(dijkstra.SelectScan))
			require.NoError(t, err)
			hp, err := dijkstra.Run(g, start, dijkstra.WithSelection(dijkstra.SelectHeap))
			require.NoError(t, err)

			changes, err := diff.Diff(scan, hp)
			require.NoError(t, err)
			assert.Empty(t, changes, "scan and heap runs diverge")
			assert.Equal(t, 2*g.TotalWeight(), scan.Examined)
			assert.Len(t, scan.Order, g.VertexCount())

			for _, v := range g.Vertices() {
				path, err := scan.PathTo(v)
				require.NoError(t, err)

				exp, reachable := want[v]
				if !reachable {
					assert.Equal(t, dijkstra.Infinity, scan.Dist[v], "vertex %s", v)
					assert.Equal(t, []string{v}, path)
					continue
				}
				assert.Equal(t, exp, scan.Dist[v], "vertex %s", v)
				assert.Equal(t, start, path[0])
				assert.Equal(t, v, path[len(path)-1])

				w, err := dijkstra.PathWeight(g, path)
				require.NoError(t, err, "path %v must be contiguous", path)
				assert.Equal(t, exp, w)
			}
		})
	}
}
