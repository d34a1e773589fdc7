package runekit

import (
	"math"
	"strings"

	"github.com/jacobwarren/runekit/internal/layout"
)

// EdgeSpacing is four-sided spacing in fractional cells. Values are rounded
// to whole cells (round half up) and clamped at zero when applied.
type EdgeSpacing struct {
	Top, Right, Bottom, Left float64
}

// SpacingAll creates EdgeSpacing with the same value on all sides.
func SpacingAll(v float64) EdgeSpacing {
	return EdgeSpacing{Top: v, Right: v, Bottom: v, Left: v}
}

// SpacingTRBL creates EdgeSpacing following CSS order: top, right, bottom, left.
func SpacingTRBL(t, r, b, l float64) EdgeSpacing {
	return EdgeSpacing{Top: t, Right: r, Bottom: b, Left: l}
}

// roundCells converts fractional spacing to whole cells.
func (e EdgeSpacing) roundCells() Edges {
	return Edges{
		Top:    roundCell(e.Top),
		Right:  roundCell(e.Right),
		Bottom: roundCell(e.Bottom),
		Left:   roundCell(e.Left),
	}
}

func roundCell(v float64) int {
	n := int(math.Floor(v + 0.5))
	if n < 0 {
		return 0
	}
	return n
}

// BoxConfig is the immutable per-render configuration of a box.
type BoxConfig struct {
	Border      BorderStyle
	BorderColor Color
	Background  Color
	Padding     EdgeSpacing
	Margin      EdgeSpacing
}

// BoxLayout is the geometry plan for one box render: the container it was
// given, its border box after margin, its content area after border and
// padding, and one rect per child. All rects share the container's
// coordinate frame.
type BoxLayout struct {
	ContainerRect Rect
	BoxRect       Rect
	ContentRect   Rect
	ChildRects    []Rect
}

// Box composites zero or more rendered children into a bordered, padded,
// optionally colored rectangular buffer. Rendering is a pure function of the
// target rect, the config, and the children's output.
type Box struct {
	config   BoxConfig
	layout   LayoutStyle
	children []Renderer
}

// BoxOption configures a Box.
type BoxOption func(*Box)

// NewBox creates a box with the given options.
func NewBox(opts ...BoxOption) *Box {
	b := &Box{layout: DefaultLayoutStyle()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// WithBorder sets the border style.
func WithBorder(style BorderStyle) BoxOption {
	return func(b *Box) { b.config.Border = style }
}

// WithBorderColor sets the border color.
func WithBorderColor(c Color) BoxOption {
	return func(b *Box) { b.config.BorderColor = c }
}

// WithBackground fills the box interior with the given background color.
func WithBackground(c Color) BoxOption {
	return func(b *Box) { b.config.Background = c }
}

// WithPadding sets uniform padding in cells.
func WithPadding(v float64) BoxOption {
	return func(b *Box) { b.config.Padding = SpacingAll(v) }
}

// WithPaddingEdges sets per-side padding.
func WithPaddingEdges(e EdgeSpacing) BoxOption {
	return func(b *Box) { b.config.Padding = e }
}

// WithMargin sets uniform margin in cells.
func WithMargin(v float64) BoxOption {
	return func(b *Box) { b.config.Margin = SpacingAll(v) }
}

// WithMarginEdges sets per-side margin.
func WithMarginEdges(e EdgeSpacing) BoxOption {
	return func(b *Box) { b.config.Margin = e }
}

// WithChildren appends child renderers. Children composite in order;
// overlapping rects resolve last-write-wins per cell.
func WithChildren(children ...Renderer) BoxOption {
	return func(b *Box) { b.children = append(b.children, children...) }
}

// WithDirection sets the main axis for child layout.
func WithDirection(d Direction) BoxOption {
	return func(b *Box) { b.layout.Direction = d }
}

// WithJustify sets main-axis child distribution.
func WithJustify(j Justify) BoxOption {
	return func(b *Box) { b.layout.JustifyContent = j }
}

// WithAlign sets cross-axis child alignment.
func WithAlign(a Align) BoxOption {
	return func(b *Box) { b.layout.AlignItems = a }
}

// WithGap sets the space between children along the main axis.
func WithGap(n int) BoxOption {
	return func(b *Box) { b.layout.Gap = n }
}

// WithWidth sets a fixed width in cells.
func WithWidth(n int) BoxOption {
	return func(b *Box) { b.layout.Width = Fixed(n) }
}

// WithHeight sets a fixed height in cells.
func WithHeight(n int) BoxOption {
	return func(b *Box) { b.layout.Height = Fixed(n) }
}

// WithFlexGrow sets how much the box grows relative to siblings.
func WithFlexGrow(f float64) BoxOption {
	return func(b *Box) { b.layout.FlexGrow = f }
}

// WithLayoutStyle replaces the box's entire layout style.
func WithLayoutStyle(ls LayoutStyle) BoxOption {
	return func(b *Box) { b.layout = ls }
}

// Config returns the box's render configuration.
func (b *Box) Config() BoxConfig {
	return b.config
}

// LayoutStyle returns the box's flexbox item properties.
func (b *Box) LayoutStyle() LayoutStyle {
	return b.layout
}

// IntrinsicSize aggregates the children's intrinsic sizes along the box's
// direction, plus gap, padding, and border.
func (b *Box) IntrinsicSize() (int, int) {
	var w, h int
	for i, child := range b.children {
		cw, ch := childIntrinsic(child)
		if b.layout.Direction == Row {
			w += cw
			if i > 0 {
				w += b.layout.Gap
			}
			h = max(h, ch)
		} else {
			h += ch
			if i > 0 {
				h += b.layout.Gap
			}
			w = max(w, cw)
		}
	}
	pad := b.config.Padding.roundCells()
	t := 2 * b.config.Border.Thickness()
	return w + pad.Horizontal() + t, h + pad.Vertical() + t
}

func childIntrinsic(child Renderer) (int, int) {
	if is, ok := child.(IntrinsicSizer); ok {
		return is.IntrinsicSize()
	}
	return 0, 0
}

// PlanLayout computes the geometry for rendering into rect without painting
// anything: the border box after margin, the content rect after border and
// padding, and a pre-clipped rect per child. Child rects cannot exceed the
// content rect.
func (b *Box) PlanLayout(rect Rect) BoxLayout {
	plan := BoxLayout{ContainerRect: rect}
	if rect.Width <= 0 || rect.Height <= 0 {
		return plan
	}
	box := rect.Inset(b.config.Margin.roundCells())
	plan.BoxRect = box
	if box.IsEmpty() {
		return plan
	}
	t := b.borderThickness(box)
	content := insetPaddingClamped(box.Inset(EdgeAll(t)), b.config.Padding.roundCells())
	plan.ContentRect = content
	plan.ChildRects = b.childRects(content)
	return plan
}

// borderThickness returns the effective border thickness for a box rect.
// Boxes too small to carry a frame degrade to borderless.
func (b *Box) borderThickness(box Rect) int {
	if box.Width < 2 || box.Height < 2 {
		return 0
	}
	return b.config.Border.Thickness()
}

// insetPaddingClamped shrinks the interior by padding, reducing the padding
// itself when it would consume the entire interior so that at least one
// content cell survives on each axis.
func insetPaddingClamped(interior Rect, pad Edges) Rect {
	pad.Left, pad.Right = clampPair(pad.Left, pad.Right, interior.Width)
	pad.Top, pad.Bottom = clampPair(pad.Top, pad.Bottom, interior.Height)
	return interior.Inset(pad)
}

// clampPair reduces (start, end) spacing, end first, until at least one cell
// of avail remains.
func clampPair(start, end, avail int) (int, int) {
	if avail <= 0 {
		return 0, 0
	}
	if start+end >= avail {
		end = avail - 1 - start
		if end < 0 {
			end = 0
		}
		if start+end >= avail {
			start = avail - 1 - end
			if start < 0 {
				start = 0
			}
		}
	}
	return start, end
}

// childRects asks the layout engine for one rect per child within the
// content rect. A single child without layout properties takes the whole
// content rect directly.
func (b *Box) childRects(content Rect) []Rect {
	if len(b.children) == 0 || content.IsEmpty() {
		return nil
	}
	if len(b.children) == 1 {
		if _, ok := b.children[0].(LayoutStyler); !ok {
			return []Rect{content}
		}
	}

	kids := make([]layout.Layoutable, len(b.children))
	nodes := make([]*flexNode, len(b.children))
	for i, child := range b.children {
		style := layout.DefaultStyle()
		if ls, ok := child.(LayoutStyler); ok {
			style = ls.LayoutStyle()
		}
		n := &flexNode{renderer: child, style: style, dirty: true}
		nodes[i] = n
		kids[i] = n
	}

	rootStyle := b.layout
	rootStyle.Width = Fixed(content.Width)
	rootStyle.Height = Fixed(content.Height)
	rootStyle.Padding = Edges{}
	rootStyle.Margin = Edges{}
	root := &flexNode{style: rootStyle, children: kids, dirty: true}

	layout.Calculate(root, content.Width, content.Height)

	rects := make([]Rect, len(nodes))
	for i, n := range nodes {
		rects[i] = n.GetLayout().Rect.Translate(content.X, content.Y).Intersect(content)
	}
	return rects
}

// flexNode adapts a Renderer into the layout engine's Layoutable interface
// for one planning pass.
type flexNode struct {
	renderer Renderer
	style    layout.Style
	children []layout.Layoutable
	result   layout.Layout
	dirty    bool
}

func (n *flexNode) LayoutStyle() layout.Style            { return n.style }
func (n *flexNode) LayoutChildren() []layout.Layoutable  { return n.children }
func (n *flexNode) SetLayout(l layout.Layout)            { n.result = l }
func (n *flexNode) GetLayout() layout.Layout             { return n.result }
func (n *flexNode) IsDirty() bool                        { return n.dirty }
func (n *flexNode) SetDirty(d bool)                      { n.dirty = d }

func (n *flexNode) IntrinsicSize() (int, int) {
	if n.renderer != nil {
		return childIntrinsic(n.renderer)
	}
	return 0, 0
}

// Render paints the box and its children into rect and returns rect.Height
// rows. Bordered rows always span exactly the border box width in display
// columns; rows outside the border box (margin) are empty.
func (b *Box) Render(rect Rect) []string {
	return b.renderWithContext(rect, nil)
}

// RenderWithContext is Render with a reconciliation context threaded through
// the child render chain.
func (b *Box) RenderWithContext(rect Rect, ctx *RenderContext) []string {
	return b.renderWithContext(rect, ctx)
}

func (b *Box) renderWithContext(rect Rect, ctx *RenderContext) []string {
	if rect.Width <= 0 || rect.Height <= 0 {
		return nil
	}
	local := NewRect(0, 0, rect.Width, rect.Height)
	plan := b.PlanLayout(local)
	rows := make([]string, rect.Height)
	box := plan.BoxRect
	if box.IsEmpty() {
		return rows
	}

	t := b.borderThickness(box)
	bordered := t > 0
	interiorW := box.Width - 2*t
	inTop := box.Y + t
	inBottom := box.Bottom() - t
	interior := make([]string, max(0, inBottom-inTop))
	if bordered || !b.config.Background.IsDefault() {
		blank := strings.Repeat(" ", interiorW)
		for i := range interior {
			interior[i] = blank
		}
	}

	// composite children into the interior, in order (last write wins)
	content := plan.ContentRect
	if !content.IsEmpty() {
		for i, child := range b.children {
			crect := plan.ChildRects[i]
			if crect.IsEmpty() {
				continue
			}
			lines := b.renderChild(child, i, NewRect(0, 0, crect.Width, crect.Height), ctx)
			maxW := content.Right() - crect.X
			for li, line := range lines {
				y := crect.Y + li
				if y < content.Y || y >= content.Bottom() {
					continue
				}
				row := y - inTop
				if row < 0 || row >= len(interior) {
					continue
				}
				col := crect.X - (box.X + t)
				interior[row] = spliceColumns(interior[row], line, col, maxW, interiorW)
			}
		}
	}

	// safety pass: renormalize every interior row to the exact width so the
	// frame stays rectangular even if compositing left gaps
	if bordered {
		for i := range interior {
			interior[i] = PadToDisplayWidth(TruncateToDisplayWidth(interior[i], interiorW), interiorW)
		}
	}

	chars := b.config.Border.Chars()
	borderOn, borderOff := "", ""
	if bordered && !b.config.BorderColor.IsDefault() {
		borderOn = NewStyle().Foreground(b.config.BorderColor).SGR()
		borderOff = Style{}.SGR()
	}
	bgOn, bgOff := "", ""
	if !b.config.Background.IsDefault() {
		bgOn = NewStyle().Background(b.config.Background).SGR()
		bgOff = Style{}.SGR()
	}
	marginPrefix := strings.Repeat(" ", box.X)

	for y := box.Y; y < box.Bottom(); y++ {
		switch {
		case bordered && y == box.Y:
			run := string(chars.TopLeft) + strings.Repeat(string(chars.Top), interiorW) + string(chars.TopRight)
			rows[y] = marginPrefix + borderOn + run + borderOff
		case bordered && y == box.Bottom()-1:
			run := string(chars.BottomLeft) + strings.Repeat(string(chars.Bottom), interiorW) + string(chars.BottomRight)
			rows[y] = marginPrefix + borderOn + run + borderOff
		default:
			core := interior[y-inTop]
			if bordered {
				rows[y] = marginPrefix +
					borderOn + string(chars.Left) + borderOff +
					bgOn + core + bgOff +
					borderOn + string(chars.Right) + borderOff
			} else if core != "" || bgOn != "" {
				rows[y] = marginPrefix + bgOn + core + bgOff
			}
		}
	}
	return rows
}

// renderChild renders one child at local origin, threading the context and
// recording the child's tree path.
func (b *Box) renderChild(child Renderer, index int, rect Rect, ctx *RenderContext) []string {
	ctx.enter(index)
	defer ctx.leave()
	if cr, ok := child.(contextRenderer); ok {
		return cr.renderWithContext(rect, ctx)
	}
	return child.Render(rect)
}

// spliceColumns overwrites the columns of row starting at col with line,
// truncated to at most maxW columns and clipped to the row width. Out of
// bounds placement is silently clipped.
func spliceColumns(row, line string, col, maxW, rowWidth int) string {
	if col < 0 {
		line = sliceColumns(line, -col, maxW)
		maxW += col
		col = 0
	}
	if col >= rowWidth || maxW <= 0 {
		return row
	}
	line = TruncateToDisplayWidth(line, min(maxW, rowWidth-col))
	w := StringWidth(line)
	left := PadToDisplayWidth(sliceColumns(row, 0, col), col)
	right := sliceColumns(row, col+w, rowWidth)
	return left + line + right
}
