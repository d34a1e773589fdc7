package runekit

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	xwidth "golang.org/x/text/width"
)

const (
	runeZWJ           = 0x200D
	runeKeycapCombine = 0x20E3
	runeVS16          = 0xFE0F
	runeTagTerminator = 0xE007F
)

// StringWidth returns the display width of s in terminal columns, summed per
// grapheme cluster. Complete escape sequences contribute zero columns; the
// function never fails and unrecognized scalars default to width 1.
func StringWidth(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}
	total := 0
	state := -1
	for len(s) > 0 {
		if s[0] == 0x1b {
			s = skipEscape(s)
			state = -1
			continue
		}
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		total += ClusterWidth(cluster)
	}
	return total
}

// isPlainASCII reports whether s contains only printable ASCII bytes or TAB,
// allowing the byte-count fast path.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if b := s[i]; (b < 0x20 || b > 0x7E) && b != '\t' {
			return false
		}
	}
	return true
}

// ClusterWidth returns the display width of a single grapheme cluster.
//
// Emoji sequences (ZWJ, flag, keycap, modifier, tag) are always 2 columns
// regardless of how many scalars compose them. Other multi-scalar clusters
// sum their non-combining scalars.
func ClusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	runes := []rune(cluster)
	if len(runes) == 1 {
		return RuneWidth(runes[0])
	}
	if isEmojiSequence(runes) {
		return 2
	}

	sum := 0
	combining := 0
	for _, r := range runes {
		if IsCombiningMark(r) {
			combining++
			continue
		}
		sum += RuneWidth(r)
	}
	if combining == len(runes) {
		// Degenerate cluster of only marks: fall back to raw scalar widths.
		for _, r := range runes {
			sum += RuneWidth(r)
		}
	}
	return sum
}

// RuneWidth returns the display width of a single scalar. Control characters
// are zero columns except TAB, East Asian Fullwidth/Wide characters are two,
// and everything else defers to the wcwidth tables.
func RuneWidth(r rune) int {
	if r == '\t' {
		return 1
	}
	if r < 0x20 || (r >= 0x7F && r <= 0x9F) {
		return 0
	}
	switch xwidth.LookupRune(r).Kind() {
	case xwidth.EastAsianFullwidth, xwidth.EastAsianWide:
		return 2
	}
	return runewidth.RuneWidth(r)
}

// isEmojiSequence reports whether the scalars form one of the multi-scalar
// emoji shapes that render as a single two-column glyph. First match wins.
func isEmojiSequence(rs []rune) bool {
	return isZWJSequence(rs) ||
		isFlagSequence(rs) ||
		isKeycapSequence(rs) ||
		isModifierSequence(rs) ||
		isTagSequence(rs)
}

// isZWJSequence matches joined emoji such as family sequences: at least three
// scalars containing U+200D and at least one pictographic, where every scalar
// that is not a joiner or variation selector is pictographic (skin-tone
// modifiers included). Requiring a pictographic base keeps degenerate
// joiner-only clusters out of the emoji path.
func isZWJSequence(rs []rune) bool {
	if len(rs) < 3 {
		return false
	}
	hasZWJ := false
	hasPictographic := false
	for _, r := range rs {
		switch {
		case r == runeZWJ:
			hasZWJ = true
		case isVariationSelector(r):
		case isSkinToneModifier(r):
		case IsPictographic(r):
			hasPictographic = true
		default:
			return false
		}
	}
	return hasZWJ && hasPictographic
}

// isFlagSequence matches exactly two regional indicators.
func isFlagSequence(rs []rune) bool {
	return len(rs) == 2 && isRegionalIndicator(rs[0]) && isRegionalIndicator(rs[1])
}

// isKeycapSequence matches base + U+FE0F + U+20E3, e.g. "1️⃣".
func isKeycapSequence(rs []rune) bool {
	if len(rs) != 3 {
		return false
	}
	base := rs[0]
	if base != '*' && base != '#' && (base < '0' || base > '9') {
		return false
	}
	return rs[1] == runeVS16 && rs[2] == runeKeycapCombine
}

// isModifierSequence matches a pictographic base directly followed by a
// skin-tone modifier.
func isModifierSequence(rs []rune) bool {
	return len(rs) == 2 && IsPictographic(rs[0]) && isSkinToneModifier(rs[1])
}

// isTagSequence matches tag-based emoji such as subdivision flags: a
// pictographic base, tag characters, and the tag terminator.
func isTagSequence(rs []rune) bool {
	if len(rs) < 3 || !IsPictographic(rs[0]) || rs[len(rs)-1] != runeTagTerminator {
		return false
	}
	for _, r := range rs[1 : len(rs)-1] {
		if r < 0xE0020 || r > 0xE007E {
			return false
		}
	}
	return true
}

func isRegionalIndicator(r rune) bool {
	return r >= 0x1F1E6 && r <= 0x1F1FF
}

func isSkinToneModifier(r rune) bool {
	return r >= 0x1F3FB && r <= 0x1F3FF
}

func isVariationSelector(r rune) bool {
	return r >= 0xFE00 && r <= 0xFE0F
}
