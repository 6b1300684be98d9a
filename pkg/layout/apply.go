package layout

import "github.com/diagramd/diagramd/pkg/graph"

// Apply computes new positions for every node in g using the configured
// algorithm and returns a graph with a fresh node slice and the input edge
// slice unchanged. The input graph is never mutated, and every invocation is
// independent: the engine holds no state between calls.
//
// Apply validates the graph first and returns the *graph.InvalidGraphError
// unchanged when an edge references an unknown node ID - layout never runs
// over a dangling edge. Beyond that the engine is total: empty graphs,
// disconnected graphs, self-loops, and cycles all produce finite coordinates
// rather than errors.
//
// The algorithm switch keeps a deliberate default arm: Algorithm is a closed
// enum, but an out-of-range value still lands on the layered layout instead
// of panicking, mirroring the string-level fallback in ParseAlgorithm.
func Apply(g graph.Graph, opts Options) (graph.Graph, error) {
	if err := g.Validate(); err != nil {
		return graph.Graph{}, err
	}
	opts = opts.withDefaults()

	if len(g.Nodes) == 0 {
		return graph.Graph{Nodes: []graph.Node{}, Edges: g.Edges}, nil
	}

	var nodes []graph.Node
	switch opts.Algorithm {
	case AlgorithmRadial:
		nodes = radial(g, opts.Config)
	case AlgorithmGrid:
		nodes = grid(g, opts.Config)
	case AlgorithmHierarchical:
		nodes = hierarchical(g, opts.Config)
	default:
		nodes = layered(g, opts)
	}
	return graph.Graph{Nodes: nodes, Edges: g.Edges}, nil
}

// Auto lays out g with the default options for the given diagram category
// (see [OptionsFor]). It is a convenience wrapper around [Apply].
func Auto(g graph.Graph, category Category) (graph.Graph, error) {
	return Apply(g, OptionsFor(category))
}
