package similarity_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/psidex/simgraph/internal/similarity"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "similarity_matrix.npy")
	want := mat.NewDense(3, 3, []float64{
		0, 0.01, 0,
		0.01, 0, 0.02,
		0, 0.02, 0,
	})
	require.NoError(t, similarity.Save(path, want))

	got, err := similarity.Load(path)
	require.NoError(t, err)
	assert.True(t, mat.Equal(want, got))
}

func TestLoadRejectsNonSquare(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wide.npy")
	require.NoError(t, similarity.Save(path, mat.NewDense(2, 3, nil)))

	_, err := similarity.Load(path)
	assert.ErrorIs(t, err, similarity.ErrNotSquare)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := similarity.Load(filepath.Join(t.TempDir(), "nope.npy"))
	assert.Error(t, err)
}
