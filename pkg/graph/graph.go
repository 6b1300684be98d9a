package graph

import (
	"fmt"
	"slices"
	"strings"
)

// =============================================================================
// Node - Diagram Node
// =============================================================================

// Node is a diagram node with a fixed box size and a computed position.
// Width and Height describe the node's box and are read by layout algorithms
// for spacing only. X and Y are layout output: algorithms never read a node's
// prior position when computing a new one.
type Node struct {
	ID     string  `json:"id"`
	Label  string  `json:"label,omitempty"` // Display label (defaults to ID)
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`

	Meta map[string]any `json:"meta,omitempty"`
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n *Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// =============================================================================
// Edge - Directed Connection
// =============================================================================

// Edge is a directed connection between two nodes, identified by their IDs.
// Edges are pass-through data: layout algorithms never add, remove, or
// rewrite an edge.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// =============================================================================
// Graph - Immutable Node/Edge View
// =============================================================================

// Graph is an ordered collection of nodes and edges.
//
// Graph values are treated as immutable by everything in this module: layout
// algorithms allocate fresh node slices and return the input edge slice
// untouched. The zero value is a valid empty graph.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// NodeCount returns the number of nodes in the graph.
func (g Graph) NodeCount() int { return len(g.Nodes) }

// EdgeCount returns the number of edges in the graph.
func (g Graph) EdgeCount() int { return len(g.Edges) }

// NodeIDs returns the node IDs in input order.
func (g Graph) NodeIDs() []string {
	ids := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		ids[i] = n.ID
	}
	return ids
}

// CloneNodes returns a copy of the node slice.
// Layout algorithms use this to produce output records without mutating
// their input.
func (g Graph) CloneNodes() []Node { return slices.Clone(g.Nodes) }

// InDegrees returns the number of incoming edges for every node.
// Every node has an entry, including nodes with degree zero. Edges that
// reference unknown IDs are counted under those IDs; run Validate first if
// that matters.
func (g Graph) InDegrees() map[string]int {
	degrees := make(map[string]int, len(g.Nodes))
	for _, n := range g.Nodes {
		degrees[n.ID] = 0
	}
	for _, e := range g.Edges {
		degrees[e.Target]++
	}
	return degrees
}

// OutDegrees returns the number of outgoing edges for every node.
// Every node has an entry, including nodes with degree zero.
func (g Graph) OutDegrees() map[string]int {
	degrees := make(map[string]int, len(g.Nodes))
	for _, n := range g.Nodes {
		degrees[n.ID] = 0
	}
	for _, e := range g.Edges {
		degrees[e.Source]++
	}
	return degrees
}

// Outgoing returns the adjacency list of the graph: for each source node ID,
// the target IDs of its outgoing edges in edge input order. Nodes without
// outgoing edges have no entry.
func (g Graph) Outgoing() map[string][]string {
	adj := make(map[string][]string, len(g.Nodes))
	for _, e := range g.Edges {
		adj[e.Source] = append(adj[e.Source], e.Target)
	}
	return adj
}

// Incoming returns the reverse adjacency list: for each target node ID, the
// source IDs of its incoming edges in edge input order.
func (g Graph) Incoming() map[string][]string {
	adj := make(map[string][]string, len(g.Nodes))
	for _, e := range g.Edges {
		adj[e.Target] = append(adj[e.Target], e.Source)
	}
	return adj
}

// PosMap creates a position lookup map from a slice of node IDs.
// The returned map maps each ID to its index in the slice. This is commonly
// used to convert orderings into fast position lookups for crossing and
// barycenter calculations.
func PosMap(ids []string) map[string]int {
	m := make(map[string]int, len(ids))
	for i, id := range ids {
		m[id] = i
	}
	return m
}

// =============================================================================
// Validation
// =============================================================================

// DanglingEdge records an edge endpoint that references a missing node.
type DanglingEdge struct {
	Edge    Edge
	Missing string // the endpoint ID absent from the node set
}

// InvalidGraphError reports every referential-integrity violation found in a
// graph: edges whose source or target is not a known node ID, and duplicated
// node IDs. Producing a layout for such a graph would be misleading, so
// callers are expected to reject it instead.
type InvalidGraphError struct {
	Dangling   []DanglingEdge
	Duplicates []string
}

// Error implements the error interface.
func (e *InvalidGraphError) Error() string {
	var parts []string
	for _, d := range e.Dangling {
		parts = append(parts, fmt.Sprintf("edge %s→%s references unknown node %q", d.Edge.Source, d.Edge.Target, d.Missing))
	}
	for _, id := range e.Duplicates {
		parts = append(parts, fmt.Sprintf("duplicate node ID %q", id))
	}
	return "invalid graph: " + strings.Join(parts, "; ")
}

// Validate checks referential integrity and returns nil if the graph is valid.
// It reports every edge whose source or target is missing from the node set
// (not just the first), plus any duplicated node IDs, via *InvalidGraphError.
//
// A valid graph may still contain self-loops, cycles, and disconnected
// components - layout algorithms are total over those.
func (g Graph) Validate() error {
	known := make(map[string]bool, len(g.Nodes))
	var duplicates []string
	for _, n := range g.Nodes {
		if known[n.ID] {
			duplicates = append(duplicates, n.ID)
		}
		known[n.ID] = true
	}

	var dangling []DanglingEdge
	for _, e := range g.Edges {
		if !known[e.Source] {
			dangling = append(dangling, DanglingEdge{Edge: e, Missing: e.Source})
		}
		if !known[e.Target] {
			dangling = append(dangling, DanglingEdge{Edge: e, Missing: e.Target})
		}
	}

	if len(dangling) > 0 || len(duplicates) > 0 {
		return &InvalidGraphError{Dangling: dangling, Duplicates: duplicates}
	}
	return nil
}
