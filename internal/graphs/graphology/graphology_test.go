package graphology

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psidex/simgraph/internal/simgraph"
)

func starDoc() *simgraph.Document {
	doc := &simgraph.Document{Threshold: 0.5}
	doc.Nodes = append(doc.Nodes, simgraph.Node{ID: "hub", Label: "hub", Color: simgraph.Color(0)})
	for _, id := range []string{"a", "b", "c", "d"} {
		doc.Nodes = append(doc.Nodes, simgraph.Node{ID: id, Label: id, Community: 1, X: 1, Y: -1, Color: simgraph.Color(1)})
	}
	doc.Edges = []simgraph.Edge{
		{Source: "hub", Target: "a", Weight: 1},
		{Source: "hub", Target: "b", Weight: 0.5},
		{Source: "hub", Target: "c", Weight: 0.75},
		{Source: "hub", Target: "d", Weight: 1},
	}
	return doc
}

func TestSerialize(t *testing.T) {
	g := Serialize(starDoc())

	assert.Equal(t, 0.5, g.Attributes.Threshold)
	assert.Equal(t, Options{Type: "undirected"}, g.Options)

	require.Len(t, g.Nodes, 5)
	assert.Equal(t, "hub", g.Nodes[0].Key)
	assert.InDelta(t, 2.8, g.Nodes[0].Attributes.Size, 1e-9)
	assert.InDelta(t, 2.2, g.Nodes[1].Attributes.Size, 1e-9)
	assert.Equal(t, NodeAttributes{X: 1, Y: -1, Size: g.Nodes[1].Attributes.Size, Label: "a", Color: simgraph.Color(1), Community: 1}, g.Nodes[1].Attributes)

	require.Len(t, g.Edges, 4)
	assert.Equal(t, []string{"1", "2", "3", "4"}, []string{g.Edges[0].Key, g.Edges[1].Key, g.Edges[2].Key, g.Edges[3].Key})
	assert.Equal(t, EdgeAttributes{Size: 5, Weight: 1}, g.Edges[0].Attributes)
	assert.Equal(t, EdgeAttributes{Size: 3, Weight: 0.5}, g.Edges[1].Attributes)
	assert.Equal(t, "hub", g.Edges[2].Source)
	assert.Equal(t, "c", g.Edges[2].Target)
}

func TestSerializeCapsNodeSize(t *testing.T) {
	doc := &simgraph.Document{Nodes: []simgraph.Node{{ID: "hub"}}}
	for i := 0; i < 100; i++ {
		id := string(rune('A' + i))
		doc.Nodes = append(doc.Nodes, simgraph.Node{ID: id})
		doc.Edges = append(doc.Edges, simgraph.Edge{Source: "hub", Target: id, Weight: 0.1})
	}

	g := Serialize(doc)
	assert.Equal(t, float64(maxNodeSize), g.Nodes[0].Attributes.Size)
}

func TestRenderToFile(t *testing.T) {
	base := filepath.Join(t.TempDir(), "graph_0_5")

	path, err := NewGraphology().RenderToFile(starDoc(), base)
	require.NoError(t, err)
	assert.Equal(t, base+".graphology.json", path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got SerializedGraph
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, *Serialize(starDoc()), got)
}
