// Package element defines the classified text element model and the
// classifier that produces it from raw page geometry. Elements are the
// output of Stage 1 (classification) and the input for Stage 2 (hierarchy
// building).
package element

import "strings"

// BBox is an axis-aligned bounding box in layout units. The coordinate
// system has its origin at the top-left of the page with Y growing
// downward, so Y0 is the top edge and Y1 the bottom edge.
type BBox struct {
	X0, Y0, X1, Y1 float64
}

// Width returns the horizontal extent of the box.
func (b BBox) Width() float64 { return b.X1 - b.X0 }

// Height returns the vertical extent of the box.
func (b BBox) Height() float64 { return b.Y1 - b.Y0 }

// Union returns the smallest box covering both b and other.
func (b BBox) Union(other BBox) BBox {
	return BBox{
		X0: min(b.X0, other.X0),
		Y0: min(b.Y0, other.Y0),
		X1: max(b.X1, other.X1),
		Y1: max(b.Y1, other.Y1),
	}
}

// HorizontalOverlap returns the length of the horizontal span shared by
// b and other. Negative values mean the boxes are horizontally disjoint.
func (b BBox) HorizontalOverlap(other BBox) float64 {
	return min(b.X1, other.X1) - max(b.X0, other.X0)
}

// Run is a style-homogeneous piece of text within a line, as reported by
// the document layout source.
type Run struct {
	Text     string
	FontName string
	FontSize float64
	BBox     BBox
}

// Line is one visual text line composed of one or more runs.
type Line struct {
	Runs []Run
}

// Text joins the run texts with single spaces, mirroring how the layout
// source splits a physical line into spans.
func (l Line) Text() string {
	parts := make([]string, 0, len(l.Runs))
	for _, r := range l.Runs {
		parts = append(parts, r.Text)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// BBox returns the union bounding box of all runs in the line.
// The zero box is returned for a line without runs.
func (l Line) BBox() (BBox, bool) {
	if len(l.Runs) == 0 {
		return BBox{}, false
	}
	box := l.Runs[0].BBox
	for _, r := range l.Runs[1:] {
		box = box.Union(r.BBox)
	}
	return box, true
}

// Page carries everything the classifier needs from one document page:
// text lines in source order plus the filled rectangle primitives that are
// candidates for underline strokes.
type Page struct {
	Number int // 1-based
	Lines  []Line
	Rects  []BBox
}

// Element is one classified line of text with its visual attributes.
type Element struct {
	Text         string  `json:"text"`
	FontName     string  `json:"font"`
	FontSize     float64 `json:"font_size"`
	IsBold       bool    `json:"is_bold"`
	IsUnderlined bool    `json:"is_underlined"`
	Page         int     `json:"page"`
}
