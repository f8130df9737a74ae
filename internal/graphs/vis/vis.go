package vis

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/psidex/simgraph/internal/graphs"
	. "github.com/psidex/simgraph/internal/lib"
	"github.com/psidex/simgraph/internal/simgraph"
)

// Vis defines a FileRenderer that renders to a HTML file showing the graph at its
// computed layout with vis.js, then replaying its edges one by one.
type Vis struct {
	// scale converts layout units to canvas pixels.
	scale float64
}

var _ graphs.FileRenderer = (*Vis)(nil)

func NewVis() *Vis {
	return &Vis{scale: 500}
}

// datasets converts doc into vis.js node and edge arrays, in document order.
func (v Vis) datasets(doc *simgraph.Document) ([]nodeData, []edgeData) {
	// vis.js wants numeric ids, give them out in document order.
	hasher := NewStrHasher()

	nodes := make([]nodeData, 0, len(doc.Nodes))
	for _, n := range doc.Nodes {
		nodes = append(nodes, nodeData{
			ID:    hasher.Hash(n.ID),
			Label: n.Label,
			Title: fmt.Sprintf("%s (community %d)", n.ID, n.Community),
			Group: n.Community,
			Color: n.Color,
			X:     n.X * v.scale,
			Y:     n.Y * v.scale,
		})
	}

	edges := make([]edgeData, 0, len(doc.Edges))
	for _, e := range doc.Edges {
		edges = append(edges, edgeData{
			From:  hasher.Hash(e.Source),
			To:    hasher.Hash(e.Target),
			Value: e.Weight,
			Title: fmt.Sprintf("%g", e.Weight),
		})
	}

	return nodes, edges
}

func (v Vis) RenderToFile(doc *simgraph.Document, filename string) (string, error) {
	filename = filename + ".vis.html"

	nodes, edges := v.datasets(doc)
	nodesJson, err := json.Marshal(nodes)
	if err != nil {
		return "", err
	}
	edgesJson, err := json.Marshal(edges)
	if err != nil {
		return "", err
	}

	file, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer file.Close()

	title := "threshold " + simgraph.FormatThreshold(doc.Threshold)
	header := fmt.Sprintf("%s: %d nodes, %d communities", title, len(doc.Nodes), doc.Communities())
	_, err = fmt.Fprintf(file, page, title, header, nodesJson, edgesJson)
	if err != nil {
		return "", err
	}

	return filename, nil
}
