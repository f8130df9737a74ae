package simgraph

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/psidex/simgraph/internal/lib"
)

var (
	ErrNoIdentifiers       = errors.New("simgraph: no identifiers found")
	ErrShapeMismatch       = errors.New("simgraph: identifier count does not match matrix dimension")
	ErrDuplicateIdentifier = errors.New("simgraph: duplicate identifier")
)

// LoadIdentifiers lists the files matching pattern and returns one identifier per
// file, in lexical path order. The order must match the similarity matrix axes.
func LoadIdentifiers(pattern string) ([]string, error) {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: nothing matches %q", ErrNoIdentifiers, pattern)
	}
	return IdentifiersFromPaths(paths), nil
}

// IdentifiersFromPaths strips the directory and everything from the first "." of
// each path, so "graphs/a/foo.v2.graphml" becomes "foo". Order is preserved.
func IdentifiersFromPaths(paths []string) []string {
	ids := make([]string, 0, len(paths))
	for _, p := range paths {
		base := filepath.Base(p)
		if i := strings.IndexByte(base, '.'); i >= 0 {
			base = base[:i]
		}
		ids = append(ids, base)
	}
	return ids
}

// CheckAligned fails fast when ids cannot label the axes of an n×n matrix: wrong
// length or a repeated identifier.
func CheckAligned(ids []string, n int) error {
	if len(ids) != n {
		return fmt.Errorf("%w: %d identifiers for a %dx%d matrix", ErrShapeMismatch, len(ids), n, n)
	}
	seen := lib.NewSet[string]()
	for i, id := range ids {
		if !seen.AddNew(id) {
			return fmt.Errorf("%w: %q at position %d", ErrDuplicateIdentifier, id, i)
		}
	}
	return nil
}
