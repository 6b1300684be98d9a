package layout

import "github.com/diagramd/diagramd/pkg/graph"

// hierarchical implements the topological-level layout.
//
// Levels are computed with a breadth-first variant of Kahn's algorithm that
// processes the queue in waves: the seed wave holds every in-degree-zero
// node, and a node whose remaining in-degree drops to zero is enqueued for
// the next wave, never the current one. Each wave becomes one level, so a
// node's level is its edge-hop distance from its furthest in-degree-zero
// ancestor.
//
// Nodes never visited by the waves - cycle members and anything reachable
// only through a cycle - are collected into a single residual level appended
// after the last wave, in node input order. Cyclic residue is deliberately
// not given a proper topological treatment; it is dumped together at the
// bottom, preserved as-is for compatibility with existing diagrams.
//
// Positioning: a node at level L, position P within a level of W nodes gets
//
//	y = L · LevelSpacing
//	x = (P − (W−1)/2) · LevelNodeSpacing
//
// which centers each level horizontally around x = 0. The spacing constants
// come from [Config], independent of [Options.Spacing].
func hierarchical(g graph.Graph, cfg Config) []graph.Node {
	ids := g.NodeIDs()
	children := g.Outgoing()
	remaining := g.InDegrees()

	visited := make(map[string]bool, len(ids))
	wave := make([]string, 0, len(ids))
	for _, id := range ids {
		if remaining[id] == 0 {
			wave = append(wave, id)
		}
	}

	var levels [][]string
	for len(wave) > 0 {
		levels = append(levels, wave)
		var next []string
		for _, id := range wave {
			visited[id] = true
			for _, target := range children[id] {
				if visited[target] {
					continue
				}
				remaining[target]--
				if remaining[target] == 0 {
					next = append(next, target)
				}
			}
		}
		wave = next
	}

	var residual []string
	for _, id := range ids {
		if !visited[id] {
			residual = append(residual, id)
		}
	}
	if len(residual) > 0 {
		levels = append(levels, residual)
	}

	out := g.CloneNodes()
	index := graph.PosMap(ids)
	for level, members := range levels {
		width := len(members)
		for pos, id := range members {
			n := &out[index[id]]
			n.Y = float64(level) * cfg.LevelSpacing
			n.X = (float64(pos) - float64(width-1)/2) * cfg.LevelNodeSpacing
		}
	}
	return out
}
