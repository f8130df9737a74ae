package graphs_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/psidex/simgraph/internal/graphs"
	"github.com/psidex/simgraph/internal/simgraph"
)

func testDoc() *simgraph.Document {
	return &simgraph.Document{
		Threshold: 0.005,
		Nodes: []simgraph.Node{
			{ID: "a", Label: "a", Community: 0, X: -1, Y: 0.5, Color: simgraph.Color(0)},
			{ID: "b", Label: "b", Community: 0, X: 0, Y: -0.5, Color: simgraph.Color(0)},
			{ID: "c", Label: "c", Community: 1, X: 1, Y: 0, Color: simgraph.Color(1)},
		},
		Edges: []simgraph.Edge{
			{Source: "a", Target: "b", Weight: 0.01},
			{Source: "b", Target: "c", Weight: 0.02},
		},
	}
}

func TestJSONRenderToFile(t *testing.T) {
	base := filepath.Join(t.TempDir(), "graph_0_005")

	path, err := graphs.JSON{}.RenderToFile(testDoc(), base)
	require.NoError(t, err)
	assert.Equal(t, base+".json", path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{\n  \"threshold\": 0.005,\n  \"nodes\": [\n    {\n      \"id\": \"a\""))

	var got simgraph.Document
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, *testDoc(), got)
}

func TestDirCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	dest, err := graphs.NewDir(dir, graphs.JSON{}).Render(context.Background(), testDoc())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "graph_0_005.json"), dest)
	assert.FileExists(t, dest)
}

func TestMultiStopsAtFirstError(t *testing.T) {
	errFull := errors.New("disk full")
	calls := 0
	counting := graphs.RendererFunc(func(_ context.Context, doc *simgraph.Document) (string, error) {
		calls++
		return "first:" + doc.Name(), nil
	})
	failing := graphs.RendererFunc(func(context.Context, *simgraph.Document) (string, error) {
		return "", errFull
	})

	dest, err := graphs.Multi{counting, counting}.Render(context.Background(), testDoc())
	require.NoError(t, err)
	assert.Equal(t, "first:graph_0_005, first:graph_0_005", dest)

	_, err = graphs.Multi{counting, failing, counting}.Render(context.Background(), testDoc())
	assert.ErrorIs(t, err, errFull)
	assert.Equal(t, 3, calls)
}

func TestMultiNotifiers(t *testing.T) {
	plain := graphs.NewDir(t.TempDir(), graphs.JSON{})
	assert.Empty(t, graphs.Multi{plain}.Notifiers())
}

type fakePutter struct {
	runID, path string
	content     []byte
	err         error
}

func (p *fakePutter) Put(_ context.Context, runID, path string, content []byte) error {
	p.runID, p.path, p.content = runID, path, content
	return p.err
}

func TestUpload(t *testing.T) {
	store := &fakePutter{}

	dest, err := graphs.NewUpload(store, "run-1").Render(context.Background(), testDoc())
	require.NoError(t, err)
	assert.Equal(t, "run-1/graph_0_005.json", dest)
	assert.Equal(t, "run-1", store.runID)
	assert.Equal(t, "graph_0_005.json", store.path)

	var got simgraph.Document
	require.NoError(t, json.Unmarshal(store.content, &got))
	assert.Equal(t, *testDoc(), got)

	store.err = errors.New("denied")
	_, err = graphs.NewUpload(store, "run-1").Render(context.Background(), testDoc())
	assert.ErrorIs(t, err, store.err)
	assert.Contains(t, err.Error(), "graph_0_005.json")
}

type fakeSnapshotter struct {
	html, image string
}

func (s *fakeSnapshotter) Capture(_ context.Context, htmlPath, imagePath string) error {
	s.html, s.image = htmlPath, imagePath
	return os.WriteFile(imagePath, []byte("png"), 0o644)
}

// scripts returns the text of every inline script in the HTML document at path.
func scripts(t *testing.T, path string) []string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	root, err := html.Parse(f)
	require.NoError(t, err)

	var found []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "script" && n.FirstChild != nil {
			found = append(found, n.FirstChild.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return found
}

func TestEChartsRenderToFile(t *testing.T) {
	base := filepath.Join(t.TempDir(), "graph_0_005")

	path, err := graphs.NewECharts(nil).RenderToFile(testDoc(), base)
	require.NoError(t, err)
	assert.Equal(t, base+".html", path)

	inline := strings.Join(scripts(t, path), "\n")
	for _, id := range []string{`"name":"a"`, `"name":"b"`, `"name":"c"`} {
		assert.Contains(t, inline, id)
	}
	assert.Contains(t, inline, simgraph.Color(1))
	assert.Contains(t, inline, "threshold 0.005")
}

func TestEChartsSnapshot(t *testing.T) {
	base := filepath.Join(t.TempDir(), "graph_0_005")
	snap := &fakeSnapshotter{}

	dest, err := graphs.NewECharts(snap).RenderToFile(testDoc(), base)
	require.NoError(t, err)
	assert.Equal(t, base+".html, "+base+".png", dest)
	assert.Equal(t, base+".html", snap.html)
	assert.FileExists(t, base+".png")
}
