// Package metrics records sweep progress in a prometheus registry, written out as a
// node-exporter textfile when the batch finishes.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/psidex/simgraph/internal/simgraph"
)

const namespace = "simgraph"

// Metrics is safe to use as a nil pointer, every method is then a no-op.
type Metrics struct {
	reg *prometheus.Registry

	Written     prometheus.Counter
	Skipped     prometheus.Counter
	Nodes       *prometheus.GaugeVec
	Edges       *prometheus.GaugeVec
	Communities *prometheus.GaugeVec
	Modularity  *prometheus.GaugeVec
	Stage       *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		reg: reg,
		Written: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "thresholds_written_total",
			Help:      "Thresholds that produced a document.",
		}),
		Skipped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "thresholds_skipped_total",
			Help:      "Thresholds skipped because their graph had no edges.",
		}),
		Nodes: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_nodes",
			Help:      "Nodes in the graph built for a threshold.",
		}, []string{"threshold"}),
		Edges: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_edges",
			Help:      "Edges in the graph built for a threshold.",
		}, []string{"threshold"}),
		Communities: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_communities",
			Help:      "Communities detected for a threshold.",
		}, []string{"threshold"}),
		Modularity: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_modularity",
			Help:      "Modularity of the detected partition for a threshold.",
		}, []string{"threshold"}),
		Stage: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Time spent in each pipeline stage per threshold.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}, []string{"stage"}),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.reg
}

func (m *Metrics) ObserveGraph(g *simgraph.Graph) {
	if m == nil {
		return
	}
	label := simgraph.FormatThreshold(g.Threshold)
	m.Nodes.WithLabelValues(label).Set(float64(g.NodeCount()))
	m.Edges.WithLabelValues(label).Set(float64(g.EdgeCount()))
}

func (m *Metrics) ObserveSkipped() {
	if m == nil {
		return
	}
	m.Skipped.Inc()
}

func (m *Metrics) ObserveWritten(doc *simgraph.Document, modularity float64) {
	if m == nil {
		return
	}
	label := simgraph.FormatThreshold(doc.Threshold)
	m.Written.Inc()
	m.Communities.WithLabelValues(label).Set(float64(doc.Communities()))
	m.Modularity.WithLabelValues(label).Set(modularity)
}

// Time observes the time since start for stage.
func (m *Metrics) Time(stage string, start time.Time) {
	if m == nil {
		return
	}
	m.Stage.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}

// WriteTextfile writes every metric to path in the text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.reg)
}
