package runekit

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Span is a run of plain text with the style state active for that run.
type Span struct {
	Text  string
	Style Style
}

// StyledText is an ordered sequence of spans. Together with Tokenize and
// Encode it forms a lossless round-trip pair with raw escape-laden text:
// the rendered appearance survives the round trip, though the emitted
// escapes are canonical rather than byte-identical.
type StyledText []Span

// TokensToStyledText folds a token stream into styled spans, maintaining
// cumulative SGR state across escapes. Non-SGR escapes are dropped.
func TokensToStyledText(tokens []Token) StyledText {
	var st StyledText
	state := Style{}
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenEscape:
			state = applySGR(state, tok.Value)
		case TokenText:
			st = st.append(tok.Value, state)
		}
	}
	return st
}

// append adds a run of text, merging with the previous span when the style
// is unchanged.
func (st StyledText) append(text string, style Style) StyledText {
	if text == "" {
		return st
	}
	if n := len(st); n > 0 && st[n-1].Style == style {
		st[n-1].Text += text
		return st
	}
	return append(st, Span{Text: text, Style: style})
}

// Tokens converts spans back into a token stream, emitting an escape only
// where the style state changes at a span boundary. A trailing reset is
// emitted if the final span leaves a non-default state active, so encoded
// output never bleeds style into following text.
func (st StyledText) Tokens() []Token {
	var tokens []Token
	state := Style{}
	for _, span := range st {
		if span.Text == "" {
			continue
		}
		if span.Style != state {
			tokens = append(tokens, Token{Kind: TokenEscape, Value: sgrString(span.Style)})
			state = span.Style
		}
		tokens = append(tokens, Token{Kind: TokenText, Value: span.Text})
	}
	if state != (Style{}) {
		tokens = append(tokens, Token{Kind: TokenEscape, Value: sgrString(Style{})})
	}
	return tokens
}

// Encode renders the styled text back to a raw escape-laden string.
func (st StyledText) Encode() string {
	return EncodeTokens(st.Tokens())
}

// Width returns the total display width of the styled text.
func (st StyledText) Width() int {
	w := 0
	for _, span := range st {
		w += StringWidth(span.Text)
	}
	return w
}

// SliceByDisplayColumns returns the spans covering exactly the display
// columns [from, to). Clipping happens at grapheme cluster granularity: a
// cluster that is not fully inside the range is dropped whole, never split,
// so the result's width can be smaller than to-from but never larger.
func SliceByDisplayColumns(st StyledText, from, to int) StyledText {
	if to <= from {
		return nil
	}
	var out StyledText
	col := 0
	for _, span := range st {
		rest := span.Text
		state := -1
		var keep strings.Builder
		for len(rest) > 0 {
			var cluster string
			cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
			w := ClusterWidth(cluster)
			if col >= from && col+w <= to {
				keep.WriteString(cluster)
			}
			col += w
		}
		out = out.append(keep.String(), span.Style)
		if col >= to {
			break
		}
	}
	return out
}

// TruncateToDisplayWidth cuts raw escape-laden text down to at most maxWidth
// display columns without splitting escapes or wide clusters: a two-column
// cluster that would leave a single column is omitted entirely.
func TruncateToDisplayWidth(raw string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if isPlainASCII(raw) && len(raw) <= maxWidth {
		return raw
	}
	st := TokensToStyledText(Tokenize(raw))
	return SliceByDisplayColumns(st, 0, maxWidth).Encode()
}

// PadToDisplayWidth extends raw with trailing spaces until it occupies the
// given number of display columns. Text already at or beyond that width is
// returned unchanged.
func PadToDisplayWidth(raw string, width int) string {
	w := StringWidth(raw)
	if w >= width {
		return raw
	}
	return raw + strings.Repeat(" ", width-w)
}

// sliceColumns is the raw-string form of SliceByDisplayColumns.
func sliceColumns(raw string, from, to int) string {
	if to <= from {
		return ""
	}
	st := TokensToStyledText(Tokenize(raw))
	return SliceByDisplayColumns(st, from, to).Encode()
}
