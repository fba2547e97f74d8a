package graph

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/docmap-io/pdf2graph/internal/element"
)

// numberedItem matches standalone list numbering such as "3." — digits,
// a period, and nothing but whitespace after it.
var numberedItem = regexp.MustCompile(`^\d+\.\s*$`)

// Options controls hierarchy construction.
type Options struct {
	// RootFontSize is the synthetic font size stored on the root node. It
	// must exceed any real heading size so the root always wins parent
	// selection.
	RootFontSize float64

	// FallbackRegularFontSize is used as the body-text reference when the
	// document has no non-bold element at all.
	FallbackRegularFontSize float64

	// Placeholder replaces empty node content after construction.
	Placeholder string
}

// DefaultOptions returns the construction defaults.
func DefaultOptions() Options {
	return Options{
		RootFontSize:            100,
		FallbackRegularFontSize: 8.0,
		Placeholder:             "(No description)",
	}
}

// Builder converts an ordered element sequence into a rooted hierarchy.
//
// Heading ranking, in stack-walk order:
//   - a strictly larger font size outranks a smaller one;
//   - at equal font size, an underlined heading outranks a non-underlined
//     one as a nesting boundary;
//   - at equal font size and equal underlining, headings become siblings.
type Builder struct {
	opts Options
}

// NewBuilder creates a builder with the given options.
func NewBuilder(opts Options) *Builder {
	return &Builder{opts: opts}
}

// Build runs the single forward pass over elements and returns the tree.
// docName (typically the source file path) names the root node after its
// basename with the extension stripped.
//
// Node identity is the raw heading text: distinct headings with identical
// text merge into one node. The merge is inherited behavior and is left
// in place rather than papered over with a disambiguation scheme.
func (b *Builder) Build(elements []element.Element, docName string) (*Graph, error) {
	root := strings.TrimSuffix(filepath.Base(docName), filepath.Ext(docName))

	g := New()
	g.AddNode(&Node{ID: root, Level: 0, FontSize: b.opts.RootFontSize})

	current := root
	stack := []string{root}

	// The body-text reference: font size of the first non-bold element in
	// the whole sequence.
	regularFontSize := b.opts.FallbackRegularFontSize
	for _, el := range elements {
		if !el.IsBold {
			regularFontSize = el.FontSize
			break
		}
	}

	firstBoldSkipped := false

	for i, el := range elements {
		// Lookahead: does the next element start with a colon? Only a
		// non-bold follower can qualify the current element this way.
		nextStartsWithColon := false
		if i < len(elements)-1 && !elements[i+1].IsBold {
			nextStartsWithColon = strings.HasPrefix(elements[i+1].Text, ":")
		}

		// The very first bold element is the document title; drop it once.
		if el.IsBold && !firstBoldSkipped {
			firstBoldSkipped = true
			continue
		}

		// Standalone list numbering is an artifact, not content.
		if numberedItem.MatchString(el.Text) {
			continue
		}

		if !el.IsBold {
			appendContent(g, current, el.Text)
			continue
		}

		isHeading := el.FontSize > regularFontSize ||
			strings.HasSuffix(el.Text, ":") ||
			nextStartsWithColon
		if !isHeading {
			appendContent(g, current, el.Text)
			continue
		}

		// Parent selection: walk the stack of open ancestors from the top.
	walk:
		for len(stack) > 0 {
			cand, ok := g.Node(stack[len(stack)-1])
			if !ok {
				return nil, fmt.Errorf("hierarchy state corrupted: open ancestor %q missing from graph", stack[len(stack)-1])
			}

			// The root, or any strictly larger heading, is an acceptable
			// parent.
			if cand.ID == root || cand.FontSize > el.FontSize {
				break walk
			}

			if cand.FontSize == el.FontSize {
				switch {
				case cand.IsUnderlined == el.IsUnderlined:
					// Same rank: the new heading is a sibling, so the top
					// closes and the parent is found one level up.
					stack = stack[:len(stack)-1]
					continue walk
				case cand.IsUnderlined && !el.IsUnderlined:
					// Underlined outranks plain at equal size.
					break walk
				default:
					// Plain yields to underlined at equal size.
					stack = stack[:len(stack)-1]
					continue walk
				}
			}

			// A heading never nests under a strictly smaller one.
			stack = stack[:len(stack)-1]
		}

		var parent string
		if len(stack) == 0 {
			parent = root
			stack = append(stack, root)
		} else {
			parent = stack[len(stack)-1]
		}

		// Level is the stack depth at insertion time, before the push.
		g.AddNode(&Node{
			ID:           el.Text,
			Level:        len(stack),
			FontSize:     el.FontSize,
			IsUnderlined: el.IsUnderlined,
		})
		g.AddEdge(parent, el.Text)

		current = el.Text
		stack = append(stack, el.Text)
	}

	// Trim accumulated content; empty nodes get the placeholder.
	for _, n := range g.Nodes() {
		n.Content = strings.TrimSpace(n.Content)
		if n.Content == "" {
			n.Content = b.opts.Placeholder
		}
	}

	return g, nil
}

func appendContent(g *Graph, id, text string) {
	if n, ok := g.Node(id); ok {
		n.Content += " " + text
	}
}
