package runekit

import (
	"strconv"
	"strings"
)

// applySGR folds one SGR escape sequence into the given style state and
// returns the result. Code 0 (or an empty parameter) resets to the zero
// style; unknown codes are ignored. Non-SGR escapes leave the state as is.
func applySGR(state Style, esc string) Style {
	if !isSGR(esc) {
		return state
	}
	params := strings.Split(esc[2:len(esc)-1], ";")
	for i := 0; i < len(params); i++ {
		code := 0
		if params[i] != "" {
			n, err := strconv.Atoi(params[i])
			if err != nil {
				continue
			}
			code = n
		}
		switch {
		case code == 0:
			state = Style{}
		case code == 1:
			state.Attrs |= AttrBold
		case code == 2:
			state.Attrs |= AttrDim
		case code == 3:
			state.Attrs |= AttrItalic
		case code == 4:
			state.Attrs |= AttrUnderline
		case code == 5:
			state.Attrs |= AttrBlink
		case code == 7:
			state.Attrs |= AttrReverse
		case code == 9:
			state.Attrs |= AttrStrikethrough
		case code == 22:
			state.Attrs &^= AttrBold | AttrDim
		case code == 23:
			state.Attrs &^= AttrItalic
		case code == 24:
			state.Attrs &^= AttrUnderline
		case code == 25:
			state.Attrs &^= AttrBlink
		case code == 27:
			state.Attrs &^= AttrReverse
		case code == 29:
			state.Attrs &^= AttrStrikethrough
		case code >= 30 && code <= 37:
			state.Fg = ANSIColor(uint8(code - 30))
		case code == 38:
			var c Color
			c, i = parseExtendedColor(params, i)
			state.Fg = c
		case code == 39:
			state.Fg = DefaultColor()
		case code >= 40 && code <= 47:
			state.Bg = ANSIColor(uint8(code - 40))
		case code == 48:
			var c Color
			c, i = parseExtendedColor(params, i)
			state.Bg = c
		case code == 49:
			state.Bg = DefaultColor()
		case code >= 90 && code <= 97:
			state.Fg = ANSIColor(uint8(code - 90 + 8))
		case code >= 100 && code <= 107:
			state.Bg = ANSIColor(uint8(code - 100 + 8))
		}
	}
	return state
}

// parseExtendedColor consumes the arguments of a 38/48 extended color code
// starting at params[i] and returns the color plus the last index consumed.
// Malformed arguments yield the default color.
func parseExtendedColor(params []string, i int) (Color, int) {
	atoi := func(s string) (int, bool) {
		n, err := strconv.Atoi(s)
		return n, err == nil && n >= 0 && n <= 255
	}
	if i+1 >= len(params) {
		return DefaultColor(), i
	}
	switch params[i+1] {
	case "5":
		if i+2 < len(params) {
			if n, ok := atoi(params[i+2]); ok {
				return ANSIColor(uint8(n)), i + 2
			}
		}
		return DefaultColor(), i + 2
	case "2":
		if i+4 < len(params) {
			r, okR := atoi(params[i+2])
			g, okG := atoi(params[i+3])
			b, okB := atoi(params[i+4])
			if okR && okG && okB {
				return RGBColor(uint8(r), uint8(g), uint8(b)), i + 4
			}
		}
		return DefaultColor(), i + 4
	default:
		return DefaultColor(), i + 1
	}
}

// sgrString returns the escape sequence that switches the terminal from any
// prior state to exactly the given style: a reset followed by the style's
// codes. The zero style yields a bare reset.
func sgrString(s Style) string {
	if s == (Style{}) {
		return "\x1b[0m"
	}
	parts := []string{"0"}
	if s.Attrs&AttrBold != 0 {
		parts = append(parts, "1")
	}
	if s.Attrs&AttrDim != 0 {
		parts = append(parts, "2")
	}
	if s.Attrs&AttrItalic != 0 {
		parts = append(parts, "3")
	}
	if s.Attrs&AttrUnderline != 0 {
		parts = append(parts, "4")
	}
	if s.Attrs&AttrBlink != 0 {
		parts = append(parts, "5")
	}
	if s.Attrs&AttrReverse != 0 {
		parts = append(parts, "7")
	}
	if s.Attrs&AttrStrikethrough != 0 {
		parts = append(parts, "9")
	}
	parts = appendColorCodes(parts, s.Fg, false)
	parts = appendColorCodes(parts, s.Bg, true)
	return "\x1b[" + strings.Join(parts, ";") + "m"
}

// appendColorCodes appends the SGR codes selecting c as the foreground or
// background color. Default colors emit nothing; the leading reset already
// restored them.
func appendColorCodes(parts []string, c Color, background bool) []string {
	base := 30
	extended := "38"
	if background {
		base = 40
		extended = "48"
	}
	switch c.Type() {
	case ColorANSI:
		idx := c.ANSI()
		switch {
		case idx < 8:
			return append(parts, strconv.Itoa(base+int(idx)))
		case idx < 16:
			return append(parts, strconv.Itoa(base+60+int(idx)-8))
		default:
			return append(parts, extended, "5", strconv.Itoa(int(idx)))
		}
	case ColorRGB:
		r, g, b := c.RGB()
		return append(parts, extended, "2",
			strconv.Itoa(int(r)), strconv.Itoa(int(g)), strconv.Itoa(int(b)))
	default:
		return parts
	}
}
