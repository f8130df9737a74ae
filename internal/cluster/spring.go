package cluster

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/graph/layout"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/psidex/simgraph/internal/simgraph"
)

// Spring is an Eades force-directed layout. The result is centred on the origin and
// scaled so the furthest coordinate from it on either axis is Scale.
type Spring struct {
	Repulsion float64
	Rate      float64
	Updates   int
	Theta     float64
	Scale     float64
	Seed      uint64
}

func (s Spring) Layout(g *simgraph.Graph) (simgraph.Layout, error) {
	og := newOrdered(g)
	eades := &layout.EadesR2{
		Repulsion: s.Repulsion,
		Rate:      s.Rate,
		Updates:   s.Updates,
		Theta:     s.Theta,
		Src:       rand.NewPCG(s.Seed, s.Seed),
	}
	optimizer := layout.NewOptimizerR2(og, eades.Update)
	for optimizer.Update() {
	}

	nodes := g.Nodes()
	coords := make([]r2.Vec, len(nodes))
	for i := range nodes {
		coords[i] = optimizer.Coord2(int64(i))
		if math.IsNaN(coords[i].X) || math.IsNaN(coords[i].Y) {
			return nil, fmt.Errorf("spring: no finite position for %q", nodes[i])
		}
	}
	rescale(coords, s.Scale)

	positions := make(simgraph.Layout, len(nodes))
	for i, id := range nodes {
		positions[id] = simgraph.Position{X: coords[i].X, Y: coords[i].Y}
	}
	return positions, nil
}

// rescale centres coords on their mean and scales them so the largest absolute
// coordinate is scale.
func rescale(coords []r2.Vec, scale float64) {
	if len(coords) == 0 {
		return
	}

	var mean r2.Vec
	for _, c := range coords {
		mean = r2.Add(mean, c)
	}
	mean = r2.Scale(1/float64(len(coords)), mean)

	lim := 0.0
	for i := range coords {
		coords[i] = r2.Sub(coords[i], mean)
		lim = math.Max(lim, math.Max(math.Abs(coords[i].X), math.Abs(coords[i].Y)))
	}
	if lim == 0 {
		return
	}

	for i := range coords {
		coords[i] = r2.Scale(scale/lim, coords[i])
	}
}
