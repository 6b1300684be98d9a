// Package graph provides the in-memory node-link model consumed by the
// layout engine.
//
// # Overview
//
// A [Graph] is an immutable view over a node list and an edge list. Nodes
// carry an opaque unique ID, a fixed box size, and a position that layout
// algorithms fill in. Edges reference nodes by ID and are pure pass-through
// data.
//
// # Validation
//
// [Graph.Validate] checks referential integrity: every edge endpoint must
// name a node present in the node set, and node IDs must be unique. The
// returned [InvalidGraphError] identifies every offending edge, not just the
// first, so callers can surface a complete message to the user.
//
// Validation deliberately does not reject self-loops, cycles, or
// disconnected components - the layout algorithms in
// github.com/diagramd/diagramd/pkg/layout are total over those and produce
// documented degenerate output instead of errors.
//
// # Serialization
//
// The JSON format mirrors the wire shape used by diagram canvases:
//
//	{
//	  "nodes": [{"id": "a", "width": 172, "height": 36, "x": 0, "y": 0}],
//	  "edges": [{"source": "a", "target": "b"}]
//	}
//
// Use [Marshal]/[Unmarshal] for in-memory data and [ReadFile]/[WriteFile]
// for files. Deserialized graphs are not validated automatically.
package graph
