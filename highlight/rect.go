package highlight

import "math"

// defaultRunHeight is the highlight height, in page units, assumed for runs
// whose extraction backend reported neither a glyph height nor a usable
// vertical scale. Roughly one line of 12pt text.
const defaultRunHeight = 12.0

// runRect converts one run's position into a viewport-space rectangle, or
// nil when the run's transform is unusable. The run lives in
// bottom-left-origin page space with origin (e, f) taken from the transform;
// the result is flipped into the viewport's top-left-origin space.
//
// Height resolution order matters for sizing parity with the UI: explicit
// run height, then the vertical scale |d|, then defaultRunHeight. Some
// extraction paths omit height entirely and must still produce a visible
// highlight.
func runRect(run TextRun, vp Viewport) *Rect {
	if len(run.Transform) < 6 {
		return nil
	}

	a := run.Transform[0]
	d := run.Transform[3]
	e := run.Transform[4]
	f := run.Transform[5]

	width := run.Width * math.Abs(a)

	height := math.Abs(run.Height)
	if height == 0 {
		height = math.Abs(d)
	}
	if height == 0 {
		height = defaultRunHeight
	}

	r := Rect{
		X1:     e,
		Y1:     vp.Height - f - height,
		X2:     e + width,
		Y2:     vp.Height - f,
		Width:  vp.Width,
		Height: vp.Height,
	}
	if r.X2 < r.X1 {
		r.X1, r.X2 = r.X2, r.X1
	}
	if r.Y2 < r.Y1 {
		r.Y1, r.Y2 = r.Y2, r.Y1
	}
	return &r
}

// spanRects produces the per-run rectangles for one occurrence covering the
// inclusive rune range [startChar, endChar] of a page's concatenated text.
// Every run from the first to the last touched is included whole; no
// sub-run clipping is attempted, so a boundary run may over-highlight a few
// glyphs. Runs without a usable transform are skipped.
func spanRects(runs []TextRun, charRunMap []int, startChar, endChar int, vp Viewport) []Rect {
	firstRun := charRunMap[startChar]
	lastRun := charRunMap[endChar]

	rects := make([]Rect, 0, lastRun-firstRun+1)
	for i := firstRun; i <= lastRun; i++ {
		if r := runRect(runs[i], vp); r != nil {
			rects = append(rects, *r)
		}
	}
	return rects
}

// boundingRect is the minimal rectangle covering all rects. An empty input
// yields a zero rectangle still carrying the viewport dimensions.
func boundingRect(rects []Rect, vp Viewport) Rect {
	if len(rects) == 0 {
		return Rect{Width: vp.Width, Height: vp.Height}
	}

	out := rects[0]
	for _, r := range rects[1:] {
		out.X1 = math.Min(out.X1, r.X1)
		out.Y1 = math.Min(out.Y1, r.Y1)
		out.X2 = math.Max(out.X2, r.X2)
		out.Y2 = math.Max(out.Y2, r.Y2)
	}
	out.Width = vp.Width
	out.Height = vp.Height
	return out
}
