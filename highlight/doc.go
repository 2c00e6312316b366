// Package highlight locates a text query inside a paginated document whose
// extracted text arrives as positioned glyph runs, and converts every match
// into viewport-space highlight rectangles.
//
// The engine is deliberately tolerant of messy extraction output: runs may
// split a phrase mid-word (common with CJK typesetting), insert whitespace
// that carries no meaning, or omit glyph metrics entirely. Matching happens
// on a normalized, whitespace-insensitive view of each page's text while
// geometry is computed from the original run positions.
//
// Text extraction itself is out of scope; a DocumentProvider supplies runs
// and viewports per page. See the pdfsource package for a PDF-backed
// provider.
package highlight
