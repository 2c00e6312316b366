package highlight

import (
	"strings"
	"unicode"
)

// isIgnoredRune reports whether normalization drops r. Beyond ordinary
// whitespace this covers the invisible code points PDF extraction likes to
// leave behind: zero-width space/joiner/non-joiner and the BOM. NBSP and
// the ideographic space U+3000 are already covered by unicode.IsSpace.
func isIgnoredRune(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case '\u200B', // zero-width space
		'\u200C', // zero-width non-joiner
		'\u200D', // zero-width joiner
		'\uFEFF': // byte order mark
		return true
	}
	return false
}

// toLowerRune is the folding used for matching. Per-rune simple folding
// only: multi-rune expansions (e.g. German sharp s) would break the
// one-to-one normalized-to-original index mapping.
func toLowerRune(r rune) rune {
	return unicode.ToLower(r)
}

// NormalizeText collapses s into the canonical comparison form used for
// matching: ignored runes removed, the rest lower-cased rune by rune.
// Folding stays strictly per-rune so a normalized string never grows and
// every kept rune maps back to exactly one original rune.
func NormalizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isIgnoredRune(r) {
			continue
		}
		b.WriteRune(toLowerRune(r))
	}
	return b.String()
}
