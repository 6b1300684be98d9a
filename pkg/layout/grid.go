package layout

import (
	"math"

	"github.com/diagramd/diagramd/pkg/graph"
)

// grid tiles the n nodes row-major into ceil(sqrt(n)) columns, with the
// single GridSpacing constant governing both axes. It reads no edges.
func grid(g graph.Graph, cfg Config) []graph.Node {
	out := g.CloneNodes()
	n := len(out)
	if n == 0 {
		return out
	}

	columns := int(math.Ceil(math.Sqrt(float64(n))))
	for i := range out {
		out[i].X = float64(i%columns) * cfg.GridSpacing
		out[i].Y = float64(i/columns) * cfg.GridSpacing
	}
	return out
}
