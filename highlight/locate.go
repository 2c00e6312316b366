package highlight

// locateAll returns the start offsets of every occurrence of needle in
// haystack, both in normalized rune space. The scan resumes one rune past
// the start of the previous match rather than past its end, so overlapping
// occurrences of a repeating pattern are all reported ("aa" in "aaa" yields
// offsets 0 and 1). Duplicated highlight spans are the consumer's problem;
// completeness wins here. Both sides were already case-folded upstream, so
// comparison is exact.
func locateAll(haystack, needle []rune) []int {
	if len(needle) == 0 {
		return nil
	}

	var offsets []int
	for from := 0; from+len(needle) <= len(haystack); {
		at := indexRunes(haystack[from:], needle)
		if at < 0 {
			break
		}
		offsets = append(offsets, from+at)
		from += at + 1
	}
	return offsets
}

// indexRunes is strings.Index over rune slices.
func indexRunes(haystack, needle []rune) int {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j, r := range needle {
			if haystack[i+j] != r {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
