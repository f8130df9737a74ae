// Package similarity loads the precomputed pairwise similarity matrix.
package similarity

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
)

var ErrNotSquare = errors.New("similarity: matrix is not square")

// Load reads a 2D NumPy .npy file. The matrix is not checked for symmetry or range,
// only for being square.
func Load(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return m, nil
}

// Read decodes a 2D .npy stream.
func Read(r io.Reader) (*mat.Dense, error) {
	var m mat.Dense
	if err := npyio.Read(r, &m); err != nil {
		return nil, err
	}
	if rows, cols := m.Dims(); rows != cols {
		return nil, fmt.Errorf("%w: %dx%d", ErrNotSquare, rows, cols)
	}
	return &m, nil
}

// Save writes m as a .npy file, used to produce fixtures.
func Save(path string, m mat.Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := npyio.Write(f, m); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
