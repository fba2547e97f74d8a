package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/docmap-io/pdf2graph/internal/graph"
)

// HTMLOptions controls the visual rendering.
type HTMLOptions struct {
	// Height and Width size the network canvas (CSS values).
	Height string
	Width  string

	// LabelLimit truncates node labels beyond this many characters; the
	// full text stays available in the hover title.
	LabelLimit int
}

// DefaultHTMLOptions returns the standard canvas size and label limit.
func DefaultHTMLOptions() HTMLOptions {
	return HTMLOptions{
		Height:     "750px",
		Width:      "100%",
		LabelLimit: 30,
	}
}

// levelColors is the fixed palette applied by tree depth.
var levelColors = map[int]string{
	0: "#ff0000", // root
	1: "#00cc00",
	2: "#0099ff",
	3: "#9933ff",
	4: "#ff9900",
}

const (
	fallbackColor  = "#cccccc" // levels past the palette
	underlineColor = "#FFD700" // underlined headings, any level
)

// HTMLRenderer produces the interactive hierarchical network page.
type HTMLRenderer struct {
	opts HTMLOptions
}

// NewHTMLRenderer creates a renderer with the given options.
func NewHTMLRenderer(opts HTMLOptions) *HTMLRenderer {
	return &HTMLRenderer{opts: opts}
}

type visNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Title string `json:"title"`
	Color string `json:"color"`
}

type visEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Render builds the self-contained HTML page for the hierarchy.
func (r *HTMLRenderer) Render(g *graph.Graph) ([]byte, error) {
	nodes := make([]visNode, 0, g.NodeCount())
	for _, n := range g.Nodes() {
		color, ok := levelColors[n.Level]
		if !ok {
			color = fallbackColor
		}
		if n.IsUnderlined {
			color = underlineColor
		}

		title := n.ID
		if n.Content != "" {
			title = n.ID + "\n\n" + n.Content
		}

		nodes = append(nodes, visNode{
			ID:    n.ID,
			Label: truncate(n.ID, r.opts.LabelLimit),
			Title: title,
			Color: color,
		})
	}

	edges := make([]visEdge, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		edges = append(edges, visEdge{From: e.From, To: e.To})
	}

	nodeData, err := json.Marshal(nodes)
	if err != nil {
		return nil, fmt.Errorf("marshaling nodes: %w", err)
	}
	edgeData, err := json.Marshal(edges)
	if err != nil {
		return nil, fmt.Errorf("marshaling edges: %w", err)
	}

	var buf bytes.Buffer
	err = pageTemplate.Execute(&buf, pageData{
		Height: r.opts.Height,
		Width:  r.opts.Width,
		Nodes:  template.JS(nodeData),
		Edges:  template.JS(edgeData),
	})
	if err != nil {
		return nil, fmt.Errorf("rendering HTML: %w", err)
	}
	return buf.Bytes(), nil
}

// truncate shortens s to limit characters, appending "..." when cut.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if limit <= 0 || len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

type pageData struct {
	Height string
	Width  string
	Nodes  template.JS
	Edges  template.JS
}

var pageTemplate = template.Must(template.New("network").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <script src="https://unpkg.com/vis-network@9.1.9/standalone/umd/vis-network.min.js"></script>
  <style>
    #network {
      height: {{.Height}};
      width: {{.Width}};
      border: 1px solid #ddd;
    }
  </style>
</head>
<body>
  <div id="network"></div>
  <script>
    var nodes = new vis.DataSet({{.Nodes}});
    var edges = new vis.DataSet({{.Edges}});
    var container = document.getElementById("network");
    var options = {
      physics: {
        hierarchicalRepulsion: {
          centralGravity: 0.0,
          springLength: 150,
          springConstant: 0.01,
          nodeDistance: 120
        },
        solver: "hierarchicalRepulsion",
        stabilization: {
          iterations: 1000
        }
      },
      layout: {
        hierarchical: {
          enabled: true,
          direction: "UD",
          sortMethod: "directed",
          levelSeparation: 150
        }
      },
      edges: {
        arrows: "to"
      }
    };
    new vis.Network(container, {nodes: nodes, edges: edges}, options);
  </script>
</body>
</html>
`))
