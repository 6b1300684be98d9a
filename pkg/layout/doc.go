// Package layout implements the diagram auto-layout engine: pure,
// deterministic algorithms that compute 2D positions for the nodes of a
// directed node-link diagram.
//
// # Overview
//
// Four algorithms are available behind the single entry point [Apply]:
//
//   - [AlgorithmLayered]: Sugiyama-style ranked layout. Ranks nodes with a
//     longest-path topological traversal, orders each rank with barycenter
//     sweeps to reduce crossings, and spaces ranks/nodes by the configured
//     gaps along the chosen [Direction].
//   - [AlgorithmRadial]: places nodes evenly on a circle whose radius grows
//     linearly with node count. Edges are ignored.
//   - [AlgorithmGrid]: tiles nodes row-major into a near-square grid. Edges
//     are ignored.
//   - [AlgorithmHierarchical]: breadth-first topological leveling with an
//     explicit residual level for cyclic or unreachable nodes.
//
// [Auto] picks an algorithm and direction from a diagram [Category]:
// workflow → layered top-bottom, requirements → hierarchical top-bottom,
// architecture → radial, mixed → layered left-right.
//
// # Purity and Concurrency
//
// Every algorithm is a stateless function of (graph, options): inputs are
// never mutated, outputs are freshly allocated, and identical inputs produce
// bit-identical outputs. The engine is therefore trivially safe for
// concurrent use; cancellation and "last request wins" supersession are the
// caller's concern (see github.com/diagramd/diagramd/pkg/pipeline).
//
// # Guarantees
//
// For every valid graph and every algorithm:
//
//   - the output node set equals the input node set by ID
//   - the edge slice is returned unchanged
//   - every output coordinate is a finite number
//   - the empty graph yields an empty node list, without error
//
// Unrecognized algorithm or direction identifiers never fail a layout: the
// Parse functions return the documented fallback (layered / top-bottom)
// along with a coded error the caller can log as a diagnostic.
package layout
