package element

import "strings"

// Classifier turns raw per-page geometry into the ordered element sequence.
type Classifier struct {
	opts Options
}

// Options contains classifier thresholds, in layout units.
type Options struct {
	// UnderlineMaxHeight is the maximum height of a filled rectangle for it
	// to count as an underline stroke. Taller rectangles (boxes, highlights,
	// borders) are ignored.
	UnderlineMaxHeight float64

	// UnderlineMaxGap is the maximum vertical distance between a rectangle's
	// top edge and a line's bottom edge for the rectangle to be judged as
	// underlining that line.
	UnderlineMaxGap float64
}

// DefaultOptions returns the thresholds the heuristics were tuned with.
func DefaultOptions() Options {
	return Options{
		UnderlineMaxHeight: 5.0,
		UnderlineMaxGap:    5.0,
	}
}

// NewClassifier creates a classifier with the given options.
func NewClassifier(opts Options) *Classifier {
	return &Classifier{opts: opts}
}

// Classify converts pages into the ordered element sequence: pages in
// document order, lines in the order the source reports them. Lines that
// are empty after trimming are dropped. The ordering is significant; the
// hierarchy builder is order-dependent.
func (c *Classifier) Classify(pages []Page) []Element {
	var elements []Element

	for _, page := range pages {
		underlines := c.underlineCandidates(page.Rects)

		for _, line := range page.Lines {
			text := line.Text()
			if text == "" {
				continue
			}

			elem := Element{
				Text: text,
				Page: page.Number,
			}
			for _, run := range line.Runs {
				if IsBoldFont(run.FontName) {
					elem.IsBold = true
				}
				if run.FontSize > elem.FontSize {
					elem.FontSize = run.FontSize
				}
				// The last run's font labels the whole line.
				elem.FontName = run.FontName
			}

			if box, ok := line.BBox(); ok {
				elem.IsUnderlined = c.isUnderlined(box, underlines)
			}

			elements = append(elements, elem)
		}
	}

	return elements
}

// underlineCandidates keeps only rectangles thin enough to be strokes.
func (c *Classifier) underlineCandidates(rects []BBox) []BBox {
	var out []BBox
	for _, r := range rects {
		if r.Height() < c.opts.UnderlineMaxHeight {
			out = append(out, r)
		}
	}
	return out
}

// isUnderlined reports whether any candidate rectangle sits under the
// line: positive horizontal overlap and a top edge within UnderlineMaxGap
// of the line's bottom edge. The first qualifying rectangle wins.
func (c *Classifier) isUnderlined(line BBox, candidates []BBox) bool {
	for _, r := range candidates {
		if line.HorizontalOverlap(r) > 0 && abs(r.Y0-line.Y1) < c.opts.UnderlineMaxGap {
			return true
		}
	}
	return false
}

// IsBoldFont reports whether a font name marks its text as bold. This is a
// name-inspection heuristic: fonts named descriptively ("Boldoni") can be
// misclassified, and true font-weight metadata is not consulted.
func IsBoldFont(name string) bool {
	return strings.Contains(strings.ToLower(name), "bold")
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
