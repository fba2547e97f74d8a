// Package pdf adapts a PDF file into the page geometry consumed by the
// element classifier: text lines grouped into style-homogeneous runs plus
// the filled rectangle primitives that may be underline strokes.
package pdf

import (
	"fmt"
	"os"
	"sort"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/docmap-io/pdf2graph/internal/element"
)

// Layout tolerances in points. lineTolerance is the maximum baseline
// difference for two glyphs to share a visual line; gapRatio (times the
// font size) is the horizontal gap treated as a missing word space.
const (
	lineTolerance = 2.0
	gapRatio      = 0.25
)

// defaultPageHeight is the US Letter height, used when a page carries no
// resolvable MediaBox.
const defaultPageHeight = 792.0

// estimatedAdvanceRatio approximates a glyph's horizontal advance as a
// fraction of its font size when the font reports no width data.
const estimatedAdvanceRatio = 0.5

// Reader reads page geometry from a PDF file.
type Reader struct {
	path string
	file *os.File
	pdf  *pdflib.Reader
}

// Open opens the PDF at path.
func Open(path string) (*Reader, error) {
	f, r, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	return &Reader{path: path, file: f, pdf: r}, nil
}

// Close releases the underlying file.
func (r *Reader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// NumPages returns the page count.
func (r *Reader) NumPages() int {
	return r.pdf.NumPage()
}

// Pages reads every page into the classifier's contract: lines of runs and
// rectangle primitives, all in a top-left-origin coordinate system (the
// PDF's bottom-up coordinates are flipped using the page height). Any
// failure while decoding content aborts the whole read; no partial result
// is returned.
func (r *Reader) Pages() (pages []element.Page, err error) {
	// The underlying content-stream interpreter reports malformed input by
	// panicking; convert that into the fatal error the pipeline expects.
	defer func() {
		if rec := recover(); rec != nil {
			pages = nil
			err = fmt.Errorf("failed to decode PDF content: %v", rec)
		}
	}()

	for num := 1; num <= r.pdf.NumPage(); num++ {
		page := r.pdf.Page(num)
		if page.V.IsNull() {
			continue
		}

		height := pageHeight(page)
		content := page.Content()

		p := element.Page{Number: num}
		p.Lines = groupLines(content.Text, height)
		for _, rect := range content.Rect {
			// A rectangle operator may carry negative extents; normalize
			// before flipping so Y0 is always the top edge.
			loX, hiX := minMax(rect.Min.X, rect.Max.X)
			loY, hiY := minMax(rect.Min.Y, rect.Max.Y)
			p.Rects = append(p.Rects, element.BBox{
				X0: loX,
				Y0: height - hiY,
				X1: hiX,
				Y1: height - loY,
			})
		}

		pages = append(pages, p)
	}

	return pages, nil
}

// groupLines assembles per-glyph text into visual lines of runs. Glyphs
// are emitted in content-stream order; glyphs whose baselines agree within
// lineTolerance belong to the same line, and within a line consecutive
// glyphs of the same font and size merge into one run. Lines are then
// ordered top to bottom, keeping stream order for equal baselines.
func groupLines(texts []pdflib.Text, height float64) []element.Line {
	type rawLine struct {
		y     float64 // baseline, PDF coordinates
		texts []pdflib.Text
	}

	var lines []*rawLine
	var cur *rawLine
	for _, t := range texts {
		if cur == nil || abs(t.Y-cur.y) > lineTolerance {
			cur = &rawLine{y: t.Y}
			lines = append(lines, cur)
		}
		cur.texts = append(cur.texts, t)
	}

	sort.SliceStable(lines, func(i, j int) bool {
		// Larger Y is higher on the page in PDF coordinates.
		return lines[i].y > lines[j].y
	})

	out := make([]element.Line, 0, len(lines))
	for _, ln := range lines {
		line := mergeRuns(ln.texts, height)
		if len(line.Runs) > 0 {
			out = append(out, line)
		}
	}
	return out
}

// mergeRuns concatenates same-style glyphs into runs. A horizontal jump
// larger than gapRatio of the font size inserts a space, recovering word
// breaks that the content stream encodes as positioning instead of space
// glyphs.
func mergeRuns(texts []pdflib.Text, height float64) element.Line {
	var line element.Line
	var cur *element.Run
	var endX float64 // right edge of the previous glyph

	for i, t := range texts {
		adv := glyphAdvance(texts, i)
		box := glyphBBox(t, adv, height)

		if cur != nil && cur.FontName == t.Font && cur.FontSize == t.FontSize {
			if t.X-endX > gapRatio*t.FontSize {
				cur.Text += " "
			}
			cur.Text += t.S
			cur.BBox = cur.BBox.Union(box)
		} else {
			line.Runs = append(line.Runs, element.Run{
				Text:     t.S,
				FontName: t.Font,
				FontSize: t.FontSize,
				BBox:     box,
			})
			cur = &line.Runs[len(line.Runs)-1]
		}
		endX = t.X + adv
	}

	return line
}

// glyphAdvance resolves a glyph's horizontal advance. Fonts without width
// data (core fonts lacking a /Widths array) come through with W=0 and a
// position that may not advance either; fall back to the next glyph's
// position when it moves, then to an estimate from the font size, so line
// boxes always have positive width and can overlap underline rectangles.
func glyphAdvance(texts []pdflib.Text, i int) float64 {
	t := texts[i]
	if t.W > 0 {
		return t.W
	}
	if i+1 < len(texts) && texts[i+1].X > t.X {
		return texts[i+1].X - t.X
	}
	return estimatedAdvanceRatio * t.FontSize
}

// glyphBBox approximates a glyph's box from its baseline position, advance
// and font size, flipped into top-left-origin coordinates. The bottom edge
// is the baseline, which is where underline strokes are measured from.
func glyphBBox(t pdflib.Text, advance, height float64) element.BBox {
	return element.BBox{
		X0: t.X,
		Y0: height - (t.Y + t.FontSize),
		X1: t.X + advance,
		Y1: height - t.Y,
	}
}

// pageHeight resolves the page's MediaBox height, walking up the page tree
// for inherited values.
func pageHeight(page pdflib.Page) float64 {
	v := page.V
	for !v.IsNull() {
		if box := v.Key("MediaBox"); !box.IsNull() && box.Len() == 4 {
			return box.Index(3).Float64() - box.Index(1).Float64()
		}
		v = v.Key("Parent")
	}
	return defaultPageHeight
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func minMax(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}
	return a, b
}
