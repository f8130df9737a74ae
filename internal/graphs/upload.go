package graphs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/psidex/simgraph/internal/simgraph"
)

// Putter stores a blob under a run-scoped path.
type Putter interface {
	Put(ctx context.Context, runID, path string, content []byte) error
}

// Upload defines a Renderer that pushes the document JSON to object storage under
// <runID>/<name>.json.
type Upload struct {
	store Putter
	runID string
}

var _ Renderer = (*Upload)(nil)

func NewUpload(store Putter, runID string) *Upload {
	return &Upload{store: store, runID: runID}
}

func (u Upload) Render(ctx context.Context, doc *simgraph.Document) (string, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}

	path := doc.Name() + ".json"
	if err := u.store.Put(ctx, u.runID, path, data); err != nil {
		return "", fmt.Errorf("upload %s: %w", path, err)
	}

	return u.runID + "/" + path, nil
}
