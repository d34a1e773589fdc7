package runekit

import (
	"slices"
	"strings"
)

// Renderer is the single capability the box compositor consumes from a
// child: paint yourself into the given rect and return one string per row.
// Implementations may return fewer rows than rect.Height; the compositor
// fills the remainder. Returned rows may contain escape sequences but must
// not exceed rect.Width display columns.
type Renderer interface {
	Render(rect Rect) []string
}

// IntrinsicSizer is an optional capability for auto-dimensioned children:
// the natural content size in cells, used by layout when a dimension is Auto.
type IntrinsicSizer interface {
	IntrinsicSize() (width, height int)
}

// LayoutStyler is an optional capability for children that carry flexbox
// item properties (fixed sizes, grow/shrink, align-self, margin).
type LayoutStyler interface {
	LayoutStyle() LayoutStyle
}

// RenderContext records the tree path of every node rendered during a
// compositing pass, for downstream reconciliation. The compositor only ever
// writes to it; no width or layout computation reads it back.
type RenderContext struct {
	// Paths holds one child-index path per rendered node, in render order.
	Paths [][]int

	path []int
}

func (c *RenderContext) enter(index int) {
	if c == nil {
		return
	}
	c.path = append(c.path, index)
	c.Paths = append(c.Paths, slices.Clone(c.path))
}

func (c *RenderContext) leave() {
	if c == nil {
		return
	}
	c.path = c.path[:len(c.path)-1]
}

// contextRenderer is implemented by nodes that thread a RenderContext
// through their own children.
type contextRenderer interface {
	renderWithContext(rect Rect, ctx *RenderContext) []string
}

// Text is a leaf renderer for styled (possibly multi-line) text.
type Text struct {
	content string
	style   Style
	layout  LayoutStyle
}

// NewText creates a text node rendering the given content.
func NewText(content string) *Text {
	return &Text{content: content, layout: DefaultLayoutStyle()}
}

// Styled returns a copy of t with the given style.
func (t *Text) Styled(s Style) *Text {
	out := *t
	out.style = s
	return &out
}

// WithLayout returns a copy of t with the given layout style.
func (t *Text) WithLayout(ls LayoutStyle) *Text {
	out := *t
	out.layout = ls
	return &out
}

// Content returns the raw text content.
func (t *Text) Content() string {
	return t.content
}

// Render paints the text into rect, truncating each line to the rect width
// at cluster granularity. Styled lines carry their own escape sequences and
// a trailing reset.
func (t *Text) Render(rect Rect) []string {
	if rect.Width <= 0 || rect.Height <= 0 {
		return nil
	}
	lines := strings.Split(t.content, "\n")
	if len(lines) > rect.Height {
		lines = lines[:rect.Height]
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		line = TruncateToDisplayWidth(line, rect.Width)
		if !t.style.IsZero() && line != "" {
			line = t.style.SGR() + line + Style{}.SGR()
		}
		out[i] = line
	}
	return out
}

// IntrinsicSize returns the widest line's display width and the line count.
func (t *Text) IntrinsicSize() (int, int) {
	w := 0
	lines := strings.Split(t.content, "\n")
	for _, line := range lines {
		w = max(w, StringWidth(line))
	}
	return w, len(lines)
}

// LayoutStyle returns the node's flexbox item properties.
func (t *Text) LayoutStyle() LayoutStyle {
	return t.layout
}

// Spacer is a blank leaf occupying a fixed number of cells.
type Spacer struct {
	Width  int
	Height int
}

// NewSpacer creates a spacer of the given size.
func NewSpacer(width, height int) *Spacer {
	return &Spacer{Width: width, Height: height}
}

// Render returns empty rows; the compositor pads them as needed.
func (s *Spacer) Render(rect Rect) []string {
	if rect.Width <= 0 || rect.Height <= 0 {
		return nil
	}
	return make([]string, rect.Height)
}

// IntrinsicSize returns the configured size.
func (s *Spacer) IntrinsicSize() (int, int) {
	return s.Width, s.Height
}

// LayoutStyle pins the spacer to its configured size.
func (s *Spacer) LayoutStyle() LayoutStyle {
	ls := DefaultLayoutStyle()
	ls.Width = Fixed(s.Width)
	ls.Height = Fixed(s.Height)
	ls.FlexShrink = 0
	return ls
}

// Lines is a pre-rendered child: an opaque producer of already-painted rows.
type Lines []string

// Render clips the stored rows to the rect.
func (l Lines) Render(rect Rect) []string {
	if rect.Width <= 0 || rect.Height <= 0 {
		return nil
	}
	rows := []string(l)
	if len(rows) > rect.Height {
		rows = rows[:rect.Height]
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = TruncateToDisplayWidth(row, rect.Width)
	}
	return out
}

// IntrinsicSize returns the widest row's display width and the row count.
func (l Lines) IntrinsicSize() (int, int) {
	w := 0
	for _, row := range l {
		w = max(w, StringWidth(row))
	}
	return w, len(l)
}
