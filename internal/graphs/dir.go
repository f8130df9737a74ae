package graphs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/psidex/simgraph/internal/simgraph"
)

// Dir renders documents with a FileRenderer into a directory, naming each file
// after the document's threshold.
type Dir struct {
	path string
	fr   FileRenderer
}

var _ Renderer = (*Dir)(nil)

func NewDir(path string, fr FileRenderer) *Dir {
	return &Dir{path: path, fr: fr}
}

func (d Dir) Render(_ context.Context, doc *simgraph.Document) (string, error) {
	if err := os.MkdirAll(d.path, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	return d.fr.RenderToFile(doc, filepath.Join(d.path, doc.Name()))
}

// Multi renders each document with every renderer in order, stopping at the first
// error. The destinations are reported comma separated.
type Multi []Renderer

var _ Renderer = Multi(nil)

func (m Multi) Render(ctx context.Context, doc *simgraph.Document) (string, error) {
	dest := ""
	for _, r := range m {
		d, err := r.Render(ctx, doc)
		if err != nil {
			return dest, err
		}
		if dest != "" {
			dest += ", "
		}
		dest += d
	}
	return dest, nil
}

// Notifiers returns the renderers in m that want sweep notifications.
func (m Multi) Notifiers() []SweepNotifier {
	var ns []SweepNotifier
	for _, r := range m {
		if n, ok := r.(SweepNotifier); ok {
			ns = append(ns, n)
		}
	}
	return ns
}
