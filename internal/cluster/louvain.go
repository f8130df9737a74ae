package cluster

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/community"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/psidex/simgraph/internal/simgraph"
)

// Louvain partitions a graph by maximising weighted modularity.
type Louvain struct {
	// Resolution is the modularity resolution, 1 is standard modularity.
	Resolution float64
	Seed       uint64
}

// Partition assigns every node of g a community id. Ids are numbered by first
// appearance in g's node order, so the first node is always in community 0.
func (l Louvain) Partition(g *simgraph.Graph) (simgraph.Partition, error) {
	og := newOrdered(g)
	reduced := community.Modularize(og, l.Resolution, rand.NewPCG(l.Seed, l.Seed))

	communities := make([][]int64, 0)
	for _, members := range reduced.Communities() {
		if len(members) == 0 {
			continue
		}
		ids := make([]int64, len(members))
		for i, n := range members {
			ids[i] = n.ID()
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		communities = append(communities, ids)
	}
	sort.Slice(communities, func(i, j int) bool { return communities[i][0] < communities[j][0] })

	nodes := g.Nodes()
	partition := make(simgraph.Partition, len(nodes))
	for c, ids := range communities {
		for _, id := range ids {
			partition[nodes[id]] = c
		}
	}

	for _, id := range nodes {
		if _, ok := partition[id]; !ok {
			return nil, fmt.Errorf("louvain: %w: %q", simgraph.ErrMissingCommunity, id)
		}
	}

	return partition, nil
}

// Modularity is the weighted modularity Q of partition over g at l's resolution.
func (l Louvain) Modularity(g *simgraph.Graph, partition simgraph.Partition) float64 {
	og := newOrdered(g)

	byCommunity := make(map[int][]graph.Node)
	for i, id := range g.Nodes() {
		c := partition[id]
		byCommunity[c] = append(byCommunity[c], simple.Node(i))
	}

	keys := make([]int, 0, len(byCommunity))
	for c := range byCommunity {
		keys = append(keys, c)
	}
	sort.Ints(keys)

	communities := make([][]graph.Node, 0, len(keys))
	for _, c := range keys {
		communities = append(communities, byCommunity[c])
	}

	return community.Q(og, communities, l.Resolution)
}
