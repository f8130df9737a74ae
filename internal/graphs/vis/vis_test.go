package vis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/psidex/simgraph/internal/simgraph"
)

func testDoc() *simgraph.Document {
	return &simgraph.Document{
		Threshold: 0.1,
		Nodes: []simgraph.Node{
			{ID: "x", Label: "x", Community: 0, X: 0.5, Y: -0.5, Color: simgraph.Color(0)},
			{ID: "y", Label: "y", Community: 0, X: -0.5, Y: 0.5, Color: simgraph.Color(0)},
		},
		Edges: []simgraph.Edge{{Source: "x", Target: "y", Weight: 0.9}},
	}
}

func TestDatasets(t *testing.T) {
	nodes, edges := NewVis().datasets(testDoc())

	require.Len(t, nodes, 2)
	assert.Equal(t, nodeData{
		ID: 1, Label: "x", Title: "x (community 0)", Group: 0, Color: simgraph.Color(0), X: 250, Y: -250,
	}, nodes[0])
	assert.Equal(t, 2, nodes[1].ID)

	assert.Equal(t, []edgeData{{From: 1, To: 2, Value: 0.9, Title: "0.9"}}, edges)
}

func TestRenderToFile(t *testing.T) {
	base := filepath.Join(t.TempDir(), "graph_0_1")

	path, err := NewVis().RenderToFile(testDoc(), base)
	require.NoError(t, err)
	assert.Equal(t, base+".vis.html", path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	root, err := html.Parse(f)
	require.NoError(t, err)

	var title, header string
	var divs []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				title = n.FirstChild.Data
			case "div":
				for _, a := range n.Attr {
					if a.Key == "id" {
						divs = append(divs, a.Val)
						if a.Val == "header" {
							header = n.FirstChild.Data
						}
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	assert.Equal(t, "threshold 0.1", title)
	assert.Equal(t, []string{"header", "graph"}, divs)
	assert.Equal(t, "threshold 0.1: 2 nodes, 1 communities ", header)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `const edges = [{"from":1,"to":2,"value":0.9,"title":"0.9"}];`)
}
