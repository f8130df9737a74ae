package config

import "github.com/psidex/simgraph/internal/cluster"

// Louvain returns the community detector for c, seeded with seed.
func (c CommunityConfig) Louvain(seed uint64) cluster.Louvain {
	return cluster.Louvain{Resolution: c.Resolution, Seed: seed}
}

// Spring returns the layout for l, seeded with seed.
func (l LayoutConfig) Spring(seed uint64) cluster.Spring {
	return cluster.Spring{
		Repulsion: l.Repulsion,
		Rate:      l.Rate,
		Updates:   l.Updates,
		Theta:     l.Theta,
		Scale:     l.Scale,
		Seed:      seed,
	}
}
