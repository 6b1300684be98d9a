package layout

import (
	"slices"

	"github.com/diagramd/diagramd/pkg/graph"
)

// layered implements the Sugiyama-style ranked layout.
//
// Ranking uses a longest-path topological traversal (Kahn's algorithm): each
// node lands one rank below the deepest of its parents, so for every edge
// (u, v) in an acyclic graph rank(u) < rank(v). Nodes on cycles never reach
// in-degree zero and keep their default rank of 0 - ties and local rank
// violations on cyclic input are accepted, not corrected. A fully
// disconnected node set collapses into a single rank 0.
//
// Within a rank, nodes are ordered with alternating barycenter sweeps to
// reduce edge crossings. The heuristic is not optimal; it only has to keep
// the rank-monotonicity guarantee intact, which ordering cannot affect.
//
// Coordinates put ranks spacing.Rank apart along the ranking axis and nodes
// spacing.Node apart along the cross axis, then shift each node by half its
// box dimension on the cross axis so boxes, not centers, align to the grid.
// The two reverse directions rank the reversed edges instead of negating
// coordinates.
func layered(g graph.Graph, opts Options) []graph.Node {
	ids := g.NodeIDs()

	children := make(map[string][]string, len(ids))
	parents := make(map[string][]string, len(ids))
	inDegree := make(map[string]int, len(ids))
	for _, id := range ids {
		inDegree[id] = 0
	}
	for _, e := range g.Edges {
		src, dst := e.Source, e.Target
		if opts.Direction.reversed() {
			src, dst = dst, src
		}
		children[src] = append(children[src], dst)
		parents[dst] = append(parents[dst], src)
		inDegree[dst]++
	}

	ranks := assignRanks(ids, children, inDegree)
	rows := groupByRank(ids, ranks)
	orderRows(rows, parents, children)

	cfg := opts.Config
	horizontal := opts.Direction.horizontal()

	out := g.CloneNodes()
	index := graph.PosMap(ids)
	for rank, row := range rows {
		primary := float64(rank) * opts.Spacing.Rank
		for pos, id := range row {
			cross := float64(pos) * opts.Spacing.Node
			n := &out[index[id]]
			width, height := n.Width, n.Height
			if width <= 0 {
				width = cfg.NodeWidth
			}
			if height <= 0 {
				height = cfg.NodeHeight
			}
			if horizontal {
				n.X = primary
				n.Y = cross - height/2
			} else {
				n.X = cross - width/2
				n.Y = primary
			}
		}
	}
	return out
}

// assignRanks computes longest-path ranks via Kahn's algorithm.
// Nodes that never reach in-degree zero (cycle members and their dependents)
// keep the default rank 0. The inDegree map is consumed.
func assignRanks(ids []string, children map[string][]string, inDegree map[string]int) map[string]int {
	ranks := make(map[string]int, len(ids))
	queue := make([]string, 0, len(ids))
	for _, id := range ids {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, child := range children[curr] {
			if rank := ranks[curr] + 1; rank > ranks[child] {
				ranks[child] = rank
			}
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}
	return ranks
}

// groupByRank buckets node IDs by rank, preserving input order within each
// rank. Longest-path ranks are contiguous from 0, so the result has no empty
// rows.
func groupByRank(ids []string, ranks map[string]int) [][]string {
	maxRank := 0
	for _, id := range ids {
		if ranks[id] > maxRank {
			maxRank = ranks[id]
		}
	}
	rows := make([][]string, maxRank+1)
	for _, id := range ids {
		rows[ranks[id]] = append(rows[ranks[id]], id)
	}
	return rows
}

// orderSweeps is the number of down+up barycenter passes. Two round trips
// are enough for the heuristic to settle on typical diagram sizes.
const orderSweeps = 2

// orderRows reorders each row in place to reduce edge crossings, sweeping
// downward (ordering by parent positions) and upward (by child positions).
func orderRows(rows [][]string, parents, children map[string][]string) {
	for sweep := 0; sweep < orderSweeps; sweep++ {
		for r := 1; r < len(rows); r++ {
			sortByBarycenter(rows[r], rows[r-1], parents)
		}
		for r := len(rows) - 2; r >= 0; r-- {
			sortByBarycenter(rows[r], rows[r+1], children)
		}
	}
}

// sortByBarycenter stably sorts row by the mean position of each node's
// neighbors in the adjacent row. Nodes without neighbors there keep their
// current position as their barycenter, so they stay put relative to the
// rest of the row.
func sortByBarycenter(row, adjacent []string, neighbors map[string][]string) {
	adjPos := graph.PosMap(adjacent)
	bary := make(map[string]float64, len(row))
	for i, id := range row {
		sum, count := 0.0, 0
		for _, nbr := range neighbors[id] {
			if pos, ok := adjPos[nbr]; ok {
				sum += float64(pos)
				count++
			}
		}
		if count == 0 {
			bary[id] = float64(i)
		} else {
			bary[id] = sum / float64(count)
		}
	}
	slices.SortStableFunc(row, func(a, b string) int {
		switch {
		case bary[a] < bary[b]:
			return -1
		case bary[a] > bary[b]:
			return 1
		default:
			return 0
		}
	})
}
