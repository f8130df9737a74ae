package simgraph

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/psidex/simgraph/internal/lib"
)

var (
	ErrMissingCommunity = errors.New("simgraph: node missing from partition")
	ErrMissingPosition  = errors.New("simgraph: node missing from layout")
)

// Partition maps a node identifier to its community id.
type Partition map[string]int

// Communities returns the number of distinct community ids.
func (p Partition) Communities() int {
	ids := lib.NewSet[int]()
	for _, c := range p {
		ids.Add(c)
	}
	return ids.Size()
}

// Position is a layout coordinate. Only relative positions are meaningful.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Layout maps a node identifier to its position.
type Layout map[string]Position

type Node struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	Community int     `json:"community"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Color     string  `json:"color"`
}

// Document is the serialised form of one non-degenerate threshold graph.
type Document struct {
	Threshold float64 `json:"threshold"`
	Nodes     []Node  `json:"nodes"`
	Edges     []Edge  `json:"edges"`
}

// Communities returns the number of distinct communities among the document nodes.
func (d *Document) Communities() int {
	ids := lib.NewSet[int]()
	for _, n := range d.Nodes {
		ids.Add(n.Community)
	}
	return ids.Size()
}

// Name is the extension-less file name for the document, see DocumentName.
func (d *Document) Name() string {
	return DocumentName(d.Threshold)
}

// Assemble shapes g into a Document. Nodes and edges keep the graph's order. Every
// node must have a community and a position; a gap in either is an error rather
// than a silent default.
func Assemble(g *Graph, partition Partition, layout Layout, color ColorFunc) (*Document, error) {
	doc := &Document{
		Threshold: g.Threshold,
		Nodes:     make([]Node, 0, g.NodeCount()),
		Edges:     make([]Edge, 0, g.EdgeCount()),
	}

	for _, id := range g.Nodes() {
		community, ok := partition[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingCommunity, id)
		}
		pos, ok := layout[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingPosition, id)
		}
		doc.Nodes = append(doc.Nodes, Node{
			ID:        id,
			Label:     id,
			Community: community,
			X:         pos.X,
			Y:         pos.Y,
			Color:     color(community),
		})
	}

	doc.Edges = append(doc.Edges, g.Edges()...)

	return doc, nil
}

// DocumentName is "graph_" followed by the threshold's shortest decimal form with
// "." replaced by "_", e.g. 0.00125125 -> graph_0_00125125. Whole numbers keep a
// ".0" so 1 -> graph_1_0.
func DocumentName(threshold float64) string {
	return "graph_" + strings.ReplaceAll(FormatThreshold(threshold), ".", "_")
}

// FormatThreshold renders a threshold the way it appears in file names and logs.
func FormatThreshold(threshold float64) string {
	s := strconv.FormatFloat(threshold, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eIN") {
		s += ".0"
	}
	return s
}
