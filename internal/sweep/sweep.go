// Package sweep builds, clusters, lays out and renders one similarity graph per
// threshold, one threshold at a time.
package sweep

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/psidex/simgraph/internal/graphs"
	"github.com/psidex/simgraph/internal/metrics"
	"github.com/psidex/simgraph/internal/simgraph"
)

// Partitioner assigns every node of a graph to a community.
type Partitioner interface {
	Partition(g *simgraph.Graph) (simgraph.Partition, error)
}

// Layouter gives every node of a graph a position.
type Layouter interface {
	Layout(g *simgraph.Graph) (simgraph.Layout, error)
}

// modularityScorer is implemented by partitioners that can score their result.
type modularityScorer interface {
	Modularity(g *simgraph.Graph, partition simgraph.Partition) float64
}

type Config struct {
	// Thresholds are processed in order, each independently.
	Thresholds []float64
	// Color defaults to simgraph.Color.
	Color simgraph.ColorFunc
	// Metrics may be nil.
	Metrics *metrics.Metrics
}

// Input is the data shared, read-only, by every threshold.
type Input struct {
	Matrix      mat.Matrix
	Identifiers []string
}

// Written describes a threshold that produced a document.
type Written struct {
	Threshold   float64
	Dest        string
	Nodes       int
	Edges       int
	Communities int
}

type Result struct {
	Written []Written
	Skipped []float64
}

type Sweep struct {
	cfg         Config
	in          Input
	partitioner Partitioner
	layouter    Layouter
	renderer    graphs.Renderer
	logger      *slog.Logger
}

// NewSweep checks that the identifiers label the matrix axes one to one before
// anything is built.
func NewSweep(cfg Config, in Input, p Partitioner, l Layouter, r graphs.Renderer, logger *slog.Logger) (*Sweep, error) {
	rows, cols := in.Matrix.Dims()
	if rows != cols {
		return nil, fmt.Errorf("%w: matrix is %dx%d", simgraph.ErrShapeMismatch, rows, cols)
	}
	if err := simgraph.CheckAligned(in.Identifiers, rows); err != nil {
		return nil, err
	}
	if cfg.Color == nil {
		cfg.Color = simgraph.Color
	}

	return &Sweep{
		cfg:         cfg,
		in:          in,
		partitioner: p,
		layouter:    l,
		renderer:    r,
		logger:      logger,
	}, nil
}

// Run processes every threshold. Thresholds whose graph has no edges are skipped and
// reported; any other failure stops the sweep and is returned together with what
// was done so far.
func (s *Sweep) Run(ctx context.Context) (Result, error) {
	var res Result

	notifiers := notifiersOf(s.renderer)
	for _, n := range notifiers {
		n.NotifyStart(s.cfg.Thresholds)
	}
	defer func() {
		for _, n := range notifiers {
			n.NotifyEnd()
		}
	}()

	for _, threshold := range s.cfg.Thresholds {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		written, err := s.runThreshold(ctx, threshold)
		if err != nil {
			return res, fmt.Errorf("threshold %s: %w", simgraph.FormatThreshold(threshold), err)
		}

		if written == nil {
			res.Skipped = append(res.Skipped, threshold)
			for _, n := range notifiers {
				n.NotifySkip(threshold)
			}
			continue
		}
		res.Written = append(res.Written, *written)
	}

	return res, nil
}

// runThreshold returns nil, nil when the threshold is skipped.
func (s *Sweep) runThreshold(ctx context.Context, threshold float64) (*Written, error) {
	m := s.cfg.Metrics
	label := simgraph.FormatThreshold(threshold)

	start := time.Now()
	g := simgraph.Build(s.in.Matrix, s.in.Identifiers, threshold)
	m.Time("build", start)
	m.ObserveGraph(g)

	if g.Degenerate() {
		s.logger.Warn("Skipping threshold, no edges", "threshold", label)
		m.ObserveSkipped()
		return nil, nil
	}

	start = time.Now()
	partition, err := s.partitioner.Partition(g)
	if err != nil {
		return nil, fmt.Errorf("partition: %w", err)
	}
	m.Time("partition", start)

	start = time.Now()
	layout, err := s.layouter.Layout(g)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	m.Time("layout", start)

	doc, err := simgraph.Assemble(g, partition, layout, s.cfg.Color)
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}

	start = time.Now()
	dest, err := s.renderer.Render(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	m.Time("render", start)

	modularity := 0.0
	if scorer, ok := s.partitioner.(modularityScorer); ok {
		modularity = scorer.Modularity(g, partition)
	}
	m.ObserveWritten(doc, modularity)

	written := &Written{
		Threshold:   threshold,
		Dest:        dest,
		Nodes:       g.NodeCount(),
		Edges:       g.EdgeCount(),
		Communities: doc.Communities(),
	}
	s.logger.Info("Saved",
		"threshold", label,
		"dest", written.Dest,
		"nodes", written.Nodes,
		"edges", written.Edges,
		"communities", written.Communities,
		"modularity", modularity,
	)

	return written, nil
}

func notifiersOf(r graphs.Renderer) []graphs.SweepNotifier {
	switch r := r.(type) {
	case graphs.Multi:
		return r.Notifiers()
	case graphs.SweepNotifier:
		return []graphs.SweepNotifier{r}
	default:
		return nil
	}
}
