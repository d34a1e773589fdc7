package layout

// testNode is a minimal Layoutable implementation for exercising the engine.
// Its fields are accessed directly by tests.
type testNode struct {
	style        Style
	layout       Layout
	children     []*testNode
	parent       *testNode
	dirty        bool
	intrinsicW   int
	intrinsicH   int
	hasIntrinsic bool
}

func newTestNode(style Style) *testNode {
	return &testNode{style: style, dirty: true}
}

// AddChild appends children and marks the tree dirty.
func (n *testNode) AddChild(children ...*testNode) {
	for _, c := range children {
		c.parent = n
		n.children = append(n.children, c)
	}
	n.markDirty()
}

// SetIntrinsicSize gives the node an explicit natural size, simulating a
// leaf with content such as text.
func (n *testNode) SetIntrinsicSize(w, h int) {
	n.intrinsicW, n.intrinsicH = w, h
	n.hasIntrinsic = true
	n.markDirty()
}

// SetStyle replaces the node's style and marks it dirty.
func (n *testNode) SetStyle(s Style) {
	n.style = s
	n.markDirty()
}

// markDirty marks this node and all ancestors as needing recalculation.
func (n *testNode) markDirty() {
	for node := n; node != nil; node = node.parent {
		node.dirty = true
	}
}

func (n *testNode) LayoutStyle() Style { return n.style }

func (n *testNode) LayoutChildren() []Layoutable {
	out := make([]Layoutable, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *testNode) SetLayout(l Layout) { n.layout = l }
func (n *testNode) GetLayout() Layout  { return n.layout }
func (n *testNode) IsDirty() bool      { return n.dirty }
func (n *testNode) SetDirty(d bool)    { n.dirty = d }

// IntrinsicSize returns the explicit intrinsic size if set, otherwise
// aggregates children along the flex direction plus padding.
func (n *testNode) IntrinsicSize() (int, int) {
	if n.hasIntrinsic {
		return n.intrinsicW, n.intrinsicH
	}
	if len(n.children) == 0 {
		return 0, 0
	}
	var w, h int
	for i, c := range n.children {
		cw, ch := c.IntrinsicSize()
		if n.style.Direction == Row {
			w += cw
			if i > 0 {
				w += n.style.Gap
			}
			h = max(h, ch)
		} else {
			h += ch
			if i > 0 {
				h += n.style.Gap
			}
			w = max(w, cw)
		}
	}
	return w + n.style.Padding.Horizontal(), h + n.style.Padding.Vertical()
}
