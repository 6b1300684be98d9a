package layout

import (
	"math"
	"reflect"
	"testing"

	"github.com/diagramd/diagramd/pkg/graph"
)

const coordEpsilon = 1e-6

func manyNodes(n int) graph.Graph {
	g := graph.Graph{Nodes: make([]graph.Node, n)}
	for i := range g.Nodes {
		g.Nodes[i].ID = string(rune('a' + i))
	}
	return g
}

func TestRadialEquidistantFromCenter(t *testing.T) {
	out, err := Apply(manyNodes(5), Options{Algorithm: AlgorithmRadial})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	cfg := DefaultConfig()
	wantRadius := cfg.RadialMinRadius // 5*RadialPerNode is below the minimum
	for _, n := range out.Nodes {
		r := math.Hypot(n.X-cfg.RadialCenterX, n.Y-cfg.RadialCenterY)
		if math.Abs(r-wantRadius) > coordEpsilon {
			t.Errorf("node %s: distance from center = %v, want %v", n.ID, r, wantRadius)
		}
	}
}

func TestRadialRadiusGrowsWithNodeCount(t *testing.T) {
	out, err := Apply(manyNodes(10), Options{Algorithm: AlgorithmRadial})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	cfg := DefaultConfig()
	wantRadius := 10 * cfg.RadialPerNode
	r := math.Hypot(out.Nodes[0].X-cfg.RadialCenterX, out.Nodes[0].Y-cfg.RadialCenterY)
	if math.Abs(r-wantRadius) > coordEpsilon {
		t.Errorf("radius = %v, want %v", r, wantRadius)
	}
}

func TestRadialSingleNode(t *testing.T) {
	out, err := Apply(manyNodes(1), Options{Algorithm: AlgorithmRadial})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	// A lone node sits at angle 0, one radius right of the anchor. It is not
	// collapsed onto the anchor itself.
	cfg := DefaultConfig()
	n := out.Nodes[0]
	if math.Abs(n.X-(cfg.RadialCenterX+cfg.RadialMinRadius)) > coordEpsilon {
		t.Errorf("X = %v, want %v", n.X, cfg.RadialCenterX+cfg.RadialMinRadius)
	}
	if math.Abs(n.Y-cfg.RadialCenterY) > coordEpsilon {
		t.Errorf("Y = %v, want %v", n.Y, cfg.RadialCenterY)
	}
}

func TestRadialDeterministic(t *testing.T) {
	g := manyNodes(7)
	first, err := Apply(g, Options{Algorithm: AlgorithmRadial})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	second, err := Apply(g, Options{Algorithm: AlgorithmRadial})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if !reflect.DeepEqual(first.Nodes, second.Nodes) {
		t.Error("repeated radial layouts differ; placement must be bit-identical")
	}
}

func TestRadialIgnoresEdges(t *testing.T) {
	bare := manyNodes(4)
	wired := manyNodes(4)
	wired.Edges = []graph.Edge{{Source: "a", Target: "b"}, {Source: "c", Target: "d"}}

	out1, err := Apply(bare, Options{Algorithm: AlgorithmRadial})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	out2, err := Apply(wired, Options{Algorithm: AlgorithmRadial})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if !reflect.DeepEqual(out1.Nodes, out2.Nodes) {
		t.Error("edges changed radial positions; the layout reads nodes only")
	}
}
