package cluster_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/psidex/simgraph/internal/cluster"
	"github.com/psidex/simgraph/internal/simgraph"
)

var (
	louvain = cluster.Louvain{Resolution: 1, Seed: 42}
	spring  = cluster.Spring{Repulsion: 1, Rate: 0.05, Updates: 30, Theta: 0.2, Scale: 1, Seed: 42}
)

// twoTriangles is two disjoint, strongly connected triangles plus one isolated node.
func twoTriangles() *simgraph.Graph {
	ids := []string{"a", "b", "c", "d", "e", "f", "g"}
	m := mat.NewDense(len(ids), len(ids), nil)
	for _, pair := range [][2]int{{0, 1}, {0, 2}, {1, 2}, {3, 4}, {3, 5}, {4, 5}} {
		m.Set(pair[0], pair[1], 0.9)
		m.Set(pair[1], pair[0], 0.9)
	}
	return simgraph.Build(m, ids, 0.1)
}

func TestLouvainFindsTriangles(t *testing.T) {
	g := twoTriangles()

	partition, err := louvain.Partition(g)
	require.NoError(t, err)

	assert.Len(t, partition, g.NodeCount())
	assert.Equal(t, 0, partition["a"])
	assert.Equal(t, partition["a"], partition["b"])
	assert.Equal(t, partition["a"], partition["c"])
	assert.Equal(t, partition["d"], partition["e"])
	assert.Equal(t, partition["d"], partition["f"])
	assert.NotEqual(t, partition["a"], partition["d"])
	assert.NotEqual(t, partition["g"], partition["a"])
	assert.NotEqual(t, partition["g"], partition["d"])
	assert.Equal(t, 3, partition.Communities())

	assert.Greater(t, louvain.Modularity(g, partition), 0.4)
}

func TestLouvainIsDeterministic(t *testing.T) {
	first, err := louvain.Partition(twoTriangles())
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := louvain.Partition(twoTriangles())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestLouvainSingleEdge(t *testing.T) {
	g := simgraph.Build(mat.NewDense(2, 2, []float64{0, 0.9, 0.9, 0}), []string{"x", "y"}, 0.1)

	partition, err := louvain.Partition(g)
	require.NoError(t, err)
	assert.Equal(t, simgraph.Partition{"x": 0, "y": 0}, partition)
}

func TestSpringCoversAndScales(t *testing.T) {
	g := twoTriangles()

	positions, err := spring.Layout(g)
	require.NoError(t, err)
	require.Len(t, positions, g.NodeCount())

	var sumX, sumY, lim float64
	for _, id := range g.Nodes() {
		p, ok := positions[id]
		require.True(t, ok, id)
		assert.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y), id)
		sumX += p.X
		sumY += p.Y
		lim = math.Max(lim, math.Max(math.Abs(p.X), math.Abs(p.Y)))
	}
	assert.InDelta(t, 0, sumX, 1e-9)
	assert.InDelta(t, 0, sumY, 1e-9)
	assert.InDelta(t, 1, lim, 1e-9)
}

func TestSpringIsDeterministic(t *testing.T) {
	first, err := spring.Layout(twoTriangles())
	require.NoError(t, err)

	again, err := spring.Layout(twoTriangles())
	require.NoError(t, err)
	assert.Equal(t, first, again)

	other := spring
	other.Seed = 7
	moved, err := other.Layout(twoTriangles())
	require.NoError(t, err)
	assert.NotEqual(t, first, moved)
}
