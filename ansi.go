package runekit

import "strings"

// TokenKind distinguishes plain text runs from escape sequences.
type TokenKind uint8

const (
	// TokenText is a run of visible characters.
	TokenText TokenKind = iota
	// TokenEscape is one complete terminal escape sequence, ESC included.
	TokenEscape
)

// Token is one lexical unit of escape-laden terminal text.
type Token struct {
	Kind  TokenKind
	Value string
}

// Tokenize splits raw into plain-text runs and complete escape sequences.
// The parse is forgiving: an unterminated escape at the end of input is
// dropped from the output rather than kept as literal bytes. Adjacent text
// is always coalesced into a single token, so the result round-trips through
// EncodeTokens.
func Tokenize(raw string) []Token {
	var tokens []Token
	var text strings.Builder

	flush := func() {
		if text.Len() > 0 {
			tokens = append(tokens, Token{Kind: TokenText, Value: text.String()})
			text.Reset()
		}
	}

	for len(raw) > 0 {
		if raw[0] != 0x1b {
			i := strings.IndexByte(raw, 0x1b)
			if i < 0 {
				i = len(raw)
			}
			text.WriteString(raw[:i])
			raw = raw[i:]
			continue
		}
		esc, rest, ok := parseEscape(raw)
		raw = rest
		if !ok {
			continue
		}
		flush()
		tokens = append(tokens, Token{Kind: TokenEscape, Value: esc})
	}
	flush()
	return tokens
}

// EncodeTokens is the inverse of Tokenize.
func EncodeTokens(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Value)
	}
	return b.String()
}

// parseEscape consumes one escape sequence from the front of s, which must
// start with ESC. It returns the full sequence, the remaining input, and
// whether the sequence was complete. Incomplete sequences consume the rest
// of the input and report ok=false.
func parseEscape(s string) (esc, rest string, ok bool) {
	if len(s) < 2 {
		return "", "", false
	}
	switch s[1] {
	case '[':
		// CSI: parameter and intermediate bytes, then a final byte 0x40-0x7E.
		for i := 2; i < len(s); i++ {
			if b := s[i]; b >= 0x40 && b <= 0x7E {
				return s[:i+1], s[i+1:], true
			}
		}
		return "", "", false
	case ']':
		// OSC: terminated by BEL or ST (ESC \).
		for i := 2; i < len(s); i++ {
			if s[i] == 0x07 {
				return s[:i+1], s[i+1:], true
			}
			if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '\\' {
				return s[:i+2], s[i+2:], true
			}
		}
		return "", "", false
	default:
		// Two-byte escape.
		return s[:2], s[2:], true
	}
}

// skipEscape drops one leading escape sequence from s, complete or not.
func skipEscape(s string) string {
	_, rest, _ := parseEscape(s)
	return rest
}

// isSGR reports whether a complete escape sequence is a style (SGR) escape.
func isSGR(esc string) bool {
	return len(esc) >= 3 && esc[1] == '[' && esc[len(esc)-1] == 'm'
}
