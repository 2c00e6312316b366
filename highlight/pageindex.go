package highlight

// pageIndex is the per-page search index: the concatenation of all run
// texts, a rune-to-run ownership map, and the normalized view with its
// mapping back to original rune offsets. All maps are plain int slices,
// rebuilt for each page and discarded with it.
type pageIndex struct {
	runs []TextRun

	// fullText is every run's text concatenated in run order, as runes.
	fullText []rune

	// charRunMap[i] is the index of the run owning fullText[i].
	// len(charRunMap) == len(fullText); values are non-decreasing.
	charRunMap []int

	// normText is fullText with ignored runes dropped and the rest
	// lower-cased. normToOriginal[i] is the offset into fullText of the
	// rune normText[i] was derived from; strictly increasing and the same
	// length as normText.
	normText       []rune
	normToOriginal []int
}

// newPageIndex builds the index for one page's run list in a single pass
// over the concatenated text.
func newPageIndex(runs []TextRun) *pageIndex {
	idx := &pageIndex{runs: runs}

	total := 0
	for _, run := range runs {
		total += len(run.Text)
	}
	idx.fullText = make([]rune, 0, total)
	idx.charRunMap = make([]int, 0, total)

	for runIdx, run := range runs {
		for _, r := range run.Text {
			idx.fullText = append(idx.fullText, r)
			idx.charRunMap = append(idx.charRunMap, runIdx)
		}
	}

	idx.normText = make([]rune, 0, len(idx.fullText))
	idx.normToOriginal = make([]int, 0, len(idx.fullText))
	for i, r := range idx.fullText {
		if isIgnoredRune(r) {
			continue
		}
		idx.normText = append(idx.normText, toLowerRune(r))
		idx.normToOriginal = append(idx.normToOriginal, i)
	}

	return idx
}

// originalSpan maps an occurrence in normalized space back to the inclusive
// [start, end] rune range it covers in fullText. length must be >= 1 and the
// occurrence must lie within normText.
func (idx *pageIndex) originalSpan(normStart, length int) (start, end int) {
	start = idx.normToOriginal[normStart]
	end = idx.normToOriginal[normStart+length-1]
	return start, end
}
