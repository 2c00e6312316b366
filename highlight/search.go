package highlight

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Searcher runs whole-document searches against a DocumentProvider.
// A zero-configured Searcher is valid: no logging, no metrics, pages
// fetched one at a time.
type Searcher struct {
	logger   *zap.Logger
	metrics  *Metrics
	prefetch int
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithLogger sets the logger used for page-level warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Searcher) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics enables search instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(s *Searcher) {
		s.metrics = m
	}
}

// WithPrefetch fetches up to n pages from the provider concurrently.
// Results are buffered and consumed in page order, so the ordering of the
// returned matches is unaffected. n <= 1 keeps fetching sequential.
func WithPrefetch(n int) Option {
	return func(s *Searcher) {
		if n > 1 {
			s.prefetch = n
		}
	}
}

// NewSearcher creates a Searcher.
func NewSearcher(opts ...Option) *Searcher {
	s := &Searcher{
		logger:   zap.NewNop(),
		prefetch: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// page holds one fetched page, or the error that prevented fetching it.
type page struct {
	runs []TextRun
	vp   Viewport
	err  error
}

// Search finds every occurrence of query in the document and returns its
// highlight geometry, ordered by ascending page number and then by
// occurrence offset within the page. Downstream UI numbers highlights
// sequentially, so this ordering is part of the contract.
//
// An empty or whitespace-only query yields no matches and no error. A page
// that fails to fetch contributes zero matches and is skipped; the only
// error path is the provider failing to report a page count, or ctx being
// cancelled (checked between pages, never mid-page).
func (s *Searcher) Search(ctx context.Context, doc DocumentProvider, query string) ([]MatchPosition, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	needle := []rune(NormalizeText(query))
	if len(needle) == 0 {
		return nil, nil
	}

	var matches []MatchPosition
	_, err := s.scanPages(ctx, doc, func(pageNum int, idx *pageIndex, vp Viewport) int {
		found := matchesOnPage(pageNum, idx, vp, needle)
		matches = append(matches, found...)
		return len(found)
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// scanPages fetches every page (sequentially, or concurrently when prefetch
// is enabled) and invokes scan per successfully fetched page in ascending
// page order, passing the freshly built index. scan returns the number of
// matches it produced on that page, for instrumentation. Pages that fail to
// fetch are logged and skipped. Returns the page count.
func (s *Searcher) scanPages(ctx context.Context, doc DocumentProvider, scan func(pageNum int, idx *pageIndex, vp Viewport) int) (int, error) {
	numPages, err := doc.NumPages(ctx)
	if err != nil {
		return 0, fmt.Errorf("getting page count: %w", err)
	}

	var buffered []page
	if s.prefetch > 1 {
		buffered, err = s.fetchAll(ctx, doc, numPages)
		if err != nil {
			return 0, err
		}
	}

	for pageNum := 1; pageNum <= numPages; pageNum++ {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		var p page
		if buffered != nil {
			p = buffered[pageNum-1]
		} else {
			p.runs, p.vp, p.err = doc.Page(ctx, pageNum)
		}
		if p.err != nil {
			s.logger.Warn("skipping page",
				zap.Int("page", pageNum),
				zap.Error(p.err),
			)
			s.metrics.pageSkipped()
			continue
		}

		found := scan(pageNum, newPageIndex(p.runs), p.vp)
		s.metrics.pageScanned()
		s.metrics.matchesFound(found)
	}

	return numPages, nil
}

// fetchAll retrieves every page concurrently, bounded by the prefetch
// limit, into a slice indexed by page position so later processing stays in
// page order. Per-page failures are recorded in place rather than failing
// the group; only cancellation aborts the fetch.
func (s *Searcher) fetchAll(ctx context.Context, doc DocumentProvider, numPages int) ([]page, error) {
	pages := make([]page, numPages)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.prefetch)

	for i := 0; i < numPages; i++ {
		i := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			pages[i].runs, pages[i].vp, pages[i].err = doc.Page(ctx, i+1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pages, nil
}

// matchesOnPage locates all occurrences of needle on one indexed page and
// converts each into a MatchPosition. Occurrences whose runs all lack
// usable geometry are dropped. Pure; safe to call from multiple goroutines.
func matchesOnPage(pageNum int, idx *pageIndex, vp Viewport, needle []rune) []MatchPosition {
	offsets := locateAll(idx.normText, needle)
	if len(offsets) == 0 {
		return nil
	}

	matches := make([]MatchPosition, 0, len(offsets))
	for _, off := range offsets {
		start, end := idx.originalSpan(off, len(needle))
		rects := spanRects(idx.runs, idx.charRunMap, start, end, vp)
		if len(rects) == 0 {
			continue
		}
		matches = append(matches, MatchPosition{
			PageNumber:   pageNum,
			BoundingRect: boundingRect(rects, vp),
			Rects:        rects,
		})
	}
	return matches
}
