package simgraph

import (
	"gonum.org/v1/gonum/mat"
)

// Edge is an undirected similarity edge. Source is always the identifier with the
// lower matrix index.
type Edge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
}

// Graph is the similarity graph for a single threshold. Nodes and edges are kept in
// insertion order, which is the order they are reported in.
type Graph struct {
	Threshold float64

	nodes  []string
	index  map[string]int
	edges  []Edge
	degree []int
}

func NewGraph(threshold float64) *Graph {
	return &Graph{
		Threshold: threshold,
		index:     make(map[string]int),
	}
}

// AddNode adds id if it isn't already present.
func (g *Graph) AddNode(id string) {
	if _, ok := g.index[id]; ok {
		return
	}
	g.index[id] = len(g.nodes)
	g.nodes = append(g.nodes, id)
	g.degree = append(g.degree, 0)
}

// AddEdge adds an edge between u and v, adding either node if needed.
func (g *Graph) AddEdge(u, v string, weight float64) {
	g.AddNode(u)
	g.AddNode(v)
	g.edges = append(g.edges, Edge{Source: u, Target: v, Weight: weight})
	g.degree[g.index[u]]++
	g.degree[g.index[v]]++
}

func (g *Graph) Nodes() []string { return g.nodes }
func (g *Graph) Edges() []Edge   { return g.edges }

func (g *Graph) NodeCount() int { return len(g.nodes) }
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Index returns the insertion position of id.
func (g *Graph) Index(id string) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// Degree returns the number of edges touching id, or 0 if id isn't in the graph.
func (g *Graph) Degree(id string) int {
	i, ok := g.index[id]
	if !ok {
		return 0
	}
	return g.degree[i]
}

// Degenerate reports whether the graph has no edges. Degenerate graphs are skipped
// by the sweep.
func (g *Graph) Degenerate() bool {
	return len(g.edges) == 0
}

// Build creates the graph for threshold. Every identifier becomes a node, and each
// pair i<j whose similarity is strictly greater than threshold becomes an edge
// weighted by that similarity. Only the strict upper triangle of m is read.
//
// ids must hold one identifier per row of m; see CheckAligned.
func Build(m mat.Matrix, ids []string, threshold float64) *Graph {
	g := NewGraph(threshold)
	for _, id := range ids {
		g.AddNode(id)
	}

	n, _ := m.Dims()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if w := m.At(i, j); w > threshold {
				g.AddEdge(ids[i], ids[j], w)
			}
		}
	}

	return g
}
