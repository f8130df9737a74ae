package simgraph_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psidex/simgraph/internal/simgraph"
)

var hexColor = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestColorKnownValues(t *testing.T) {
	assert.Equal(t, "#f20c0c", simgraph.Color(0))
	assert.Equal(t, "#0cf24f", simgraph.Color(1))
}

func TestColorFormatAndPurity(t *testing.T) {
	for k := 0; k < 500; k++ {
		c := simgraph.Color(k)
		assert.Regexp(t, hexColor, c, "community %d", k)
		assert.Equal(t, c, simgraph.Color(k), "community %d", k)
	}
	assert.Regexp(t, hexColor, simgraph.Color(1<<40))
}

func TestColorDistinctNeighbours(t *testing.T) {
	for k := 0; k < 50; k++ {
		assert.NotEqual(t, simgraph.Color(k), simgraph.Color(k+1), "communities %d and %d", k, k+1)
	}
}

func TestPaletteMatchesColor(t *testing.T) {
	p, err := simgraph.NewPalette(4)
	require.NoError(t, err)

	// More ids than the cache holds, twice over, so evicted entries get recomputed.
	for round := 0; round < 2; round++ {
		for k := 0; k < 10; k++ {
			assert.Equal(t, simgraph.Color(k), p.Color(k))
		}
	}
}

func TestNewPaletteRejectsBadSize(t *testing.T) {
	_, err := simgraph.NewPalette(0)
	assert.Error(t, err)
}
