package layout

import (
	"math"

	"github.com/diagramd/diagramd/pkg/graph"
)

// radial places the n nodes at angle 2π·i/n around a circle anchored at the
// configured center, with radius max(RadialMinRadius, n·RadialPerNode). It
// reads no edges: this is a static placement, not a force simulation, and
// for a fixed node order the output is bit-identical across calls.
//
// A single node sits at angle 0, offset from the anchor by the full radius -
// it is intentionally not collapsed onto the anchor.
func radial(g graph.Graph, cfg Config) []graph.Node {
	out := g.CloneNodes()
	n := len(out)
	if n == 0 {
		return out
	}

	radius := math.Max(cfg.RadialMinRadius, float64(n)*cfg.RadialPerNode)
	step := 2 * math.Pi / float64(n)
	for i := range out {
		angle := float64(i) * step
		out[i].X = cfg.RadialCenterX + radius*math.Cos(angle)
		out[i].Y = cfg.RadialCenterY + radius*math.Sin(angle)
	}
	return out
}
