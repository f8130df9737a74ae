package graphology

import (
	"encoding/json"
	"math"
	"os"
	"strconv"

	"github.com/psidex/simgraph/internal/graphs"
	"github.com/psidex/simgraph/internal/simgraph"
)

const (
	minNodeSize = 2
	maxNodeSize = 10
	minEdgeSize = 1
	maxEdgeSize = 5
)

// Graphology defines a FileRenderer that renders a document as a graphology
// serialized graph. Node size grows with degree and edge size with weight.
type Graphology struct{}

var _ graphs.FileRenderer = Graphology{}

func NewGraphology() Graphology {
	return Graphology{}
}

// Serialize converts doc to graphology's format. Node keys are the document ids,
// edge keys count up from 1 in document order.
func Serialize(doc *simgraph.Document) *SerializedGraph {
	degree := make(map[string]int, len(doc.Nodes))
	maxWeight := 0.0
	for _, e := range doc.Edges {
		degree[e.Source]++
		degree[e.Target]++
		maxWeight = math.Max(maxWeight, e.Weight)
	}

	g := &SerializedGraph{
		Attributes: GraphAttributes{Threshold: doc.Threshold},
		Options:    Options{Type: "undirected"},
		Nodes:      make([]Node, 0, len(doc.Nodes)),
		Edges:      make([]Edge, 0, len(doc.Edges)),
	}

	for _, n := range doc.Nodes {
		g.Nodes = append(g.Nodes, Node{
			Key: n.ID,
			Attributes: NodeAttributes{
				X: n.X, Y: n.Y,
				Size:      math.Min(minNodeSize+0.2*float64(degree[n.ID]), maxNodeSize),
				Label:     n.Label,
				Color:     n.Color,
				Community: n.Community,
			},
		})
	}

	for i, e := range doc.Edges {
		size := float64(minEdgeSize)
		if maxWeight > 0 {
			size += (maxEdgeSize - minEdgeSize) * e.Weight / maxWeight
		}
		g.Edges = append(g.Edges, Edge{
			Key:    strconv.Itoa(i + 1),
			Source: e.Source,
			Target: e.Target,
			Attributes: EdgeAttributes{
				Size:   size,
				Weight: e.Weight,
			},
		})
	}

	return g
}

func (Graphology) RenderToFile(doc *simgraph.Document, filename string) (string, error) {
	filename = filename + ".graphology.json"

	file, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer file.Close()

	marshalled, err := json.Marshal(Serialize(doc))
	if err != nil {
		return "", err
	}

	_, err = file.Write(marshalled)
	if err != nil {
		return "", err
	}

	return filename, nil
}
