// Package graph holds the document hierarchy: a rooted tree of heading
// nodes built from the classified element sequence.
package graph

import "strings"

// Node is one heading (or the synthetic root) in the hierarchy.
type Node struct {
	ID           string
	Level        int
	Content      string
	FontSize     float64
	IsUnderlined bool
}

// Edge is a parent-to-child link between two nodes.
type Edge struct {
	From string
	To   string
}

// Graph is a directed tree keyed by node ID. Node identity is the raw
// heading text, so two headings with identical text collapse into one
// node; see the builder documentation for the consequences.
//
// Insertion order of nodes and edges is preserved so that serialization
// is deterministic.
type Graph struct {
	nodes map[string]*Node
	order []string
	edges []Edge
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}

// AddNode inserts a node. Adding an ID that already exists replaces the
// stored attributes but keeps the node's original position in insertion
// order, matching directed-graph semantics where add is an upsert.
func (g *Graph) AddNode(n *Node) {
	if _, exists := g.nodes[n.ID]; !exists {
		g.order = append(g.order, n.ID)
	}
	g.nodes[n.ID] = n
}

// AddEdge links parent to child. Duplicate identical edges are ignored.
func (g *Graph) AddEdge(from, to string) {
	for _, e := range g.edges {
		if e.From == from && e.To == to {
			return
		}
	}
	g.edges = append(g.edges, Edge{From: from, To: to})
}

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}
	return out
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []Edge {
	return g.edges
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Children returns the IDs of the direct children of a node, in edge
// insertion order.
func (g *Graph) Children(id string) []string {
	var out []string
	for _, e := range g.edges {
		if e.From == id {
			out = append(out, e.To)
		}
	}
	return out
}

// Parents returns the IDs of nodes with an edge into the given node.
// A well-formed hierarchy has exactly one parent per non-root node.
func (g *Graph) Parents(id string) []string {
	var out []string
	for _, e := range g.edges {
		if e.To == id {
			out = append(out, e.From)
		}
	}
	return out
}

// Outline renders the hierarchy as an indented text outline, two spaces
// per level, in insertion order.
func (g *Graph) Outline() string {
	var sb strings.Builder
	for _, id := range g.order {
		n := g.nodes[id]
		sb.WriteString(strings.Repeat("  ", n.Level))
		sb.WriteString(n.ID)
		sb.WriteString("\n")
	}
	return sb.String()
}
