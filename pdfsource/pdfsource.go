// Package pdfsource adapts PDFs read via the ledongthuc/pdf library into
// the page-run provider interface consumed by the highlight engine.
package pdfsource

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/takahere/dropletter-sub001/highlight"
)

// Fallback viewport for pages with a missing or malformed MediaBox
// (US Letter in PDF points). A damaged page should still satisfy the
// provider contract rather than fail the whole search.
const (
	fallbackWidth  = 612.0
	fallbackHeight = 792.0
)

// Document is a highlight.DocumentProvider backed by a parsed PDF.
// It is safe for concurrent page reads.
type Document struct {
	reader *pdf.Reader
	closer io.Closer
}

// Open parses the PDF at path. Close must be called when done.
func Open(path string) (*Document, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF %s: %w", path, err)
	}
	return &Document{reader: reader, closer: f}, nil
}

// NewDocument parses a PDF from an in-memory or seekable source.
func NewDocument(r io.ReaderAt, size int64) (*Document, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF: %w", err)
	}
	return &Document{reader: reader}, nil
}

// Close releases the underlying file, if any.
func (d *Document) Close() error {
	if d.closer == nil {
		return nil
	}
	return d.closer.Close()
}

// NumPages returns the document's page count.
func (d *Document) NumPages(_ context.Context) (int, error) {
	return d.reader.NumPage(), nil
}

// Page extracts one page's glyph runs and viewport. Pages with a missing
// page dictionary return an error; the caller decides whether that aborts
// anything (the highlight searcher skips such pages).
func (d *Document) Page(_ context.Context, pageNumber int) ([]highlight.TextRun, highlight.Viewport, error) {
	if pageNumber < 1 || pageNumber > d.reader.NumPage() {
		return nil, highlight.Viewport{}, fmt.Errorf("page %d out of range 1..%d", pageNumber, d.reader.NumPage())
	}

	p := d.reader.Page(pageNumber)
	if p.V.IsNull() {
		return nil, highlight.Viewport{}, fmt.Errorf("page %d has no page dictionary", pageNumber)
	}

	return runsFromTexts(p.Content().Text), viewportFromPage(p), nil
}

// runsFromTexts converts extracted glyphs to text runs, dropping
// whitespace-only glyphs that carry no match surface.
func runsFromTexts(texts []pdf.Text) []highlight.TextRun {
	runs := make([]highlight.TextRun, 0, len(texts))
	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		runs = append(runs, runFromText(t))
	}
	return runs
}

// runFromText maps one glyph to a TextRun. The library reports positions in
// bottom-left-origin page points with W already scaled, while TextRun.Width
// is defined in unscaled text units multiplied out by the transform's
// horizontal scale, so W is divided back down here.
func runFromText(t pdf.Text) highlight.TextRun {
	scale := t.FontSize
	if scale == 0 {
		scale = 1
	}
	return highlight.TextRun{
		Text:      t.S,
		Transform: []float64{scale, 0, 0, scale, t.X, t.Y},
		Width:     t.W / scale,
		Height:    t.FontSize,
	}
}

// viewportFromPage derives the render surface from the page MediaBox,
// falling back to US Letter when the box is absent or degenerate.
func viewportFromPage(p pdf.Page) highlight.Viewport {
	box := p.V.Key("MediaBox")
	if box.IsNull() || box.Len() < 4 {
		return highlight.Viewport{Width: fallbackWidth, Height: fallbackHeight}
	}

	width := box.Index(2).Float64() - box.Index(0).Float64()
	height := box.Index(3).Float64() - box.Index(1).Float64()
	if width <= 0 || height <= 0 {
		return highlight.Viewport{Width: fallbackWidth, Height: fallbackHeight}
	}
	return highlight.Viewport{Width: width, Height: height}
}

// FromBytes parses PDF content already loaded in memory.
func FromBytes(content []byte) (*Document, error) {
	return NewDocument(bytes.NewReader(content), int64(len(content)))
}

var _ highlight.DocumentProvider = (*Document)(nil)
