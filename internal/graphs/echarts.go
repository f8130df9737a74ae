package graphs

import (
	"context"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/psidex/simgraph/internal/simgraph"
)

// Snapshotter captures a rendered HTML page as an image.
type Snapshotter interface {
	Capture(ctx context.Context, htmlPath, imagePath string) error
}

// ECharts defines a FileRenderer that renders a go-echarts HTML page of the graph,
// using the document's layout and community colours as-is.
type ECharts struct {
	// nodeScale converts layout units to chart pixels.
	nodeScale float64
	snap      Snapshotter
}

var _ FileRenderer = (*ECharts)(nil)

func NewECharts(snap Snapshotter) *ECharts {
	return &ECharts{
		nodeScale: 500,
		snap:      snap,
	}
}

func (e ECharts) RenderToFile(doc *simgraph.Document, filename string) (string, error) {
	htmlFile := filename + ".html"

	page := components.NewPage()
	page.AddCharts(e.graphBase(doc))

	f, err := os.Create(htmlFile)
	if err != nil {
		return "", err
	}

	if err := page.Render(f); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	if e.snap == nil {
		return htmlFile, nil
	}

	pngFile := filename + ".png"
	if err := e.snap.Capture(context.Background(), htmlFile, pngFile); err != nil {
		return "", err
	}
	return htmlFile + ", " + pngFile, nil
}

func (e ECharts) graphBase(doc *simgraph.Document) *charts.Graph {
	nodes := make([]opts.GraphNode, 0, len(doc.Nodes))
	for _, n := range doc.Nodes {
		nodes = append(nodes, opts.GraphNode{
			Name:      n.ID,
			X:         float32(n.X * e.nodeScale),
			Y:         float32(n.Y * e.nodeScale),
			Value:     float32(n.Community),
			ItemStyle: &opts.ItemStyle{Color: n.Color},
		})
	}

	links := make([]opts.GraphLink, 0, len(doc.Edges))
	for _, edge := range doc.Edges {
		links = append(links, opts.GraphLink{
			Source: edge.Source,
			Target: edge.Target,
			Value:  float32(edge.Weight),
		})
	}

	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "threshold " + simgraph.FormatThreshold(doc.Threshold),
			Height:    "100vh",
			Width:     "100vw",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "threshold " + simgraph.FormatThreshold(doc.Threshold),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
	)
	graph.AddSeries(
		"graph",
		nodes,
		links,
		charts.WithGraphChartOpts(
			opts.GraphChart{
				Layout:    "none",
				Draggable: opts.Bool(true),
				Roam:      opts.Bool(true),
			},
		),
		charts.WithLabelOpts(opts.Label{
			Show:     opts.Bool(true),
			Color:    "black",
			Position: "top",
		}),
	)
	return graph
}
