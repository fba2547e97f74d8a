// Package render turns a finished hierarchy into its two sink formats:
// an interactive HTML visualization and a JSON interchange document.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/docmap-io/pdf2graph/internal/graph"
)

type nodeJSON struct {
	ID           string  `json:"id"`
	Level        int     `json:"level"`
	Content      string  `json:"content"`
	FontSize     float64 `json:"font_size"`
	IsUnderlined bool    `json:"is_underlined"`
}

type edgeJSON struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type graphJSON struct {
	Nodes []nodeJSON `json:"nodes"`
	Edges []edgeJSON `json:"edges"`
}

// MarshalGraph serializes the hierarchy as the interchange document: two
// ordered collections, nodes and edges, in insertion order. The field
// names are a stable contract; downstream consumers reconstruct the tree
// from them.
func MarshalGraph(g *graph.Graph) ([]byte, error) {
	doc := graphJSON{
		Nodes: make([]nodeJSON, 0, g.NodeCount()),
		Edges: make([]edgeJSON, 0, g.EdgeCount()),
	}

	for _, n := range g.Nodes() {
		doc.Nodes = append(doc.Nodes, nodeJSON{
			ID:           n.ID,
			Level:        n.Level,
			Content:      n.Content,
			FontSize:     n.FontSize,
			IsUnderlined: n.IsUnderlined,
		})
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, edgeJSON{From: e.From, To: e.To})
	}

	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("marshaling graph JSON: %w", err)
	}
	return data, nil
}

// UnmarshalGraph reconstructs a hierarchy from an interchange document.
func UnmarshalGraph(data []byte) (*graph.Graph, error) {
	var doc graphJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing graph JSON: %w", err)
	}

	g := graph.New()
	for _, n := range doc.Nodes {
		g.AddNode(&graph.Node{
			ID:           n.ID,
			Level:        n.Level,
			Content:      n.Content,
			FontSize:     n.FontSize,
			IsUnderlined: n.IsUnderlined,
		})
	}
	for _, e := range doc.Edges {
		g.AddEdge(e.From, e.To)
	}
	return g, nil
}
