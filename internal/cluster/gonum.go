package cluster

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/psidex/simgraph/internal/simgraph"
)

// ordered is a gonum view of a simgraph.Graph. Node ids are the graph's insertion
// indexes and node iterators always yield ascending ids, since the seeded
// algorithms consume randomness in iteration order.
type ordered struct {
	*simple.WeightedUndirectedGraph
}

var _ graph.WeightedUndirected = ordered{}

func newOrdered(g *simgraph.Graph) ordered {
	wg := simple.NewWeightedUndirectedGraph(0, 0)
	for i := range g.Nodes() {
		wg.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges() {
		u, _ := g.Index(e.Source)
		v, _ := g.Index(e.Target)
		wg.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(u), T: simple.Node(v), W: e.Weight})
	}
	return ordered{wg}
}

func (g ordered) Nodes() graph.Nodes {
	return sortedNodes(g.WeightedUndirectedGraph.Nodes())
}

func (g ordered) From(id int64) graph.Nodes {
	return sortedNodes(g.WeightedUndirectedGraph.From(id))
}

func sortedNodes(it graph.Nodes) graph.Nodes {
	nodes := graph.NodesOf(it)
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })
	return iterator.NewOrderedNodes(nodes)
}
