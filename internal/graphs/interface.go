package graphs

import (
	"context"

	"github.com/psidex/simgraph/internal/simgraph"
)

// Renderer defines an output for finished threshold documents.
type Renderer interface {
	// Render is not assumed to be thread-safe. It returns a description of where the
	// document went (a path, an object key, ...) for progress reporting.
	Render(ctx context.Context, doc *simgraph.Document) (string, error)
}

// FileRenderer writes a document to the local filesystem.
type FileRenderer interface {
	// RenderToFile is not assumed to be thread-safe.
	// filename should be the desired file name without an extension, the full path
	// that was written is returned.
	RenderToFile(doc *simgraph.Document, filename string) (string, error)
}

// SweepNotifier extends the Renderer interface for renderers that stream a whole
// sweep, such as a websocket frontend, and so need to hear about thresholds that
// produce no document too.
type SweepNotifier interface {
	Renderer

	NotifyStart(thresholds []float64)
	NotifySkip(threshold float64)
	NotifyEnd()
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(ctx context.Context, doc *simgraph.Document) (string, error)

func (f RendererFunc) Render(ctx context.Context, doc *simgraph.Document) (string, error) {
	return f(ctx, doc)
}
