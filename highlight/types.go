package highlight

import "context"

// TextRun is one positioned glyph run as emitted by text extraction: a
// contiguous string rendered with a single font/layout state. Transform is
// the 6-value affine matrix [a b c d e f] placing the run on the page in
// bottom-left-origin page space. Width is the run's advance in unscaled text
// units; Height may be zero when the extraction backend omits glyph metrics.
type TextRun struct {
	Text      string    `json:"text"`
	Transform []float64 `json:"transform"`
	Width     float64   `json:"width"`
	Height    float64   `json:"height"`
}

// Viewport is the rendering surface of one page at scale 1, top-left origin.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rect is an axis-aligned rectangle in viewport coordinates with X1 <= X2
// and Y1 <= Y2. Width and Height are the dimensions of the containing page's
// viewport, not of the rectangle itself; the consumer scales all six values
// by the same factor when rendering at a different zoom level.
type Rect struct {
	X1     float64 `json:"x1"`
	Y1     float64 `json:"y1"`
	X2     float64 `json:"x2"`
	Y2     float64 `json:"y2"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// MatchPosition is one occurrence of the query on one page. Rects holds the
// per-run rectangles in run order; BoundingRect is their minimal cover.
type MatchPosition struct {
	PageNumber   int    `json:"page_number"`
	BoundingRect Rect   `json:"bounding_rect"`
	Rects        []Rect `json:"rects"`
}

// DocumentProvider supplies per-page extraction output for one document.
// Page numbers are 1-based. Implementations may be called concurrently for
// different pages.
type DocumentProvider interface {
	// NumPages returns the page count of the document.
	NumPages(ctx context.Context) (int, error)

	// Page returns the ordered glyph runs and the viewport of one page.
	Page(ctx context.Context, pageNumber int) ([]TextRun, Viewport, error)
}
