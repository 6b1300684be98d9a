package layout

import (
	"math"
	"testing"
)

func TestGridFourNodes(t *testing.T) {
	out, err := Apply(manyNodes(4), Options{Algorithm: AlgorithmGrid})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	s := DefaultConfig().GridSpacing
	want := [][2]float64{{0, 0}, {s, 0}, {0, s}, {s, s}}
	for i, n := range out.Nodes {
		if n.X != want[i][0] || n.Y != want[i][1] {
			t.Errorf("node %d at (%v,%v), want (%v,%v)", i, n.X, n.Y, want[i][0], want[i][1])
		}
	}
}

func TestGridColumnBound(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 7, 10, 16, 17} {
		out, err := Apply(manyNodes(n), Options{Algorithm: AlgorithmGrid})
		if err != nil {
			t.Fatalf("Apply(%d nodes) error = %v", n, err)
		}

		s := DefaultConfig().GridSpacing
		columns := int(math.Ceil(math.Sqrt(float64(n))))
		for _, node := range out.Nodes {
			if col := int(node.X / s); col >= columns {
				t.Errorf("%d nodes: node %s in column %d, want < %d", n, node.ID, col, columns)
			}
		}
	}
}

func TestGridSingleNode(t *testing.T) {
	out, err := Apply(manyNodes(1), Options{Algorithm: AlgorithmGrid})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if n := out.Nodes[0]; n.X != 0 || n.Y != 0 {
		t.Errorf("single node at (%v,%v), want (0,0)", n.X, n.Y)
	}
}

func TestGridCustomSpacing(t *testing.T) {
	opts := Options{Algorithm: AlgorithmGrid, Config: Config{GridSpacing: 50}}
	out, err := Apply(manyNodes(2), opts)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got := out.Nodes[1].X; got != 50 {
		t.Errorf("X = %v, want 50", got)
	}
}
