package highlight

import "context"

// BatchItem is one query in a batch search. ID is an opaque caller-supplied
// key echoed back in the result so the consumer can join matches to
// whatever produced the query; any further per-item metadata stays on the
// caller's side of that join.
type BatchItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// ItemMatches is the highlight geometry found for one batch item.
type ItemMatches struct {
	ID        string          `json:"id"`
	Text      string          `json:"text"`
	Positions []MatchPosition `json:"positions"`
}

// BatchResult is the outcome of one batch search. Highlights holds the
// items with at least one match, in input order; NotFound lists the query
// texts that matched nowhere, also in input order. PageCount is the
// document's page count, reported even when nothing matched so the consumer
// can size its viewer.
type BatchResult struct {
	Highlights []ItemMatches `json:"highlights"`
	NotFound   []string      `json:"not_found"`
	PageCount  int           `json:"page_count"`
}

// SearchAll finds every occurrence of every item's text in one pass over
// the document: each page is fetched and indexed once and scanned for all
// items, rather than once per item. Per-item match ordering follows the
// Search contract (ascending page, then occurrence offset). Items whose
// text is empty after normalization, or yields no match with usable
// geometry, land in NotFound.
//
// Page-level failures are skipped exactly as in Search; the error paths
// are the same (page count failure, cancellation).
func (s *Searcher) SearchAll(ctx context.Context, doc DocumentProvider, items []BatchItem) (*BatchResult, error) {
	needles := make([][]rune, len(items))
	for i, item := range items {
		needles[i] = []rune(NormalizeText(item.Text))
	}

	positions := make([][]MatchPosition, len(items))
	numPages, err := s.scanPages(ctx, doc, func(pageNum int, idx *pageIndex, vp Viewport) int {
		total := 0
		for i, needle := range needles {
			if len(needle) == 0 {
				continue
			}
			found := matchesOnPage(pageNum, idx, vp, needle)
			positions[i] = append(positions[i], found...)
			total += len(found)
		}
		return total
	})
	if err != nil {
		return nil, err
	}

	result := &BatchResult{PageCount: numPages}
	for i, item := range items {
		if len(positions[i]) == 0 {
			result.NotFound = append(result.NotFound, item.Text)
			continue
		}
		result.Highlights = append(result.Highlights, ItemMatches{
			ID:        item.ID,
			Text:      item.Text,
			Positions: positions[i],
		})
	}
	return result, nil
}
