package layout

import "math"

// Calculate computes layout for the tree rooted at root, positioning it at
// (0, 0) within the given available space. If the root is clean the whole
// pass is skipped and every node keeps its previously computed layout.
//
// The algorithm is a single-pass flexbox: resolve base main sizes, distribute
// free space by FlexGrow (or deficit by FlexShrink), clamp to min/max, then
// position children along the main axis per JustifyContent and the cross axis
// per AlignItems/AlignSelf. All computed rects are in absolute coordinates.
func Calculate(root Layoutable, availableWidth, availableHeight int) {
	if root == nil || !root.IsDirty() {
		return
	}
	style := root.LayoutStyle()
	w := style.Width.Resolve(availableWidth, availableWidth)
	h := style.Height.Resolve(availableHeight, availableHeight)
	w = clampDim(w, style.MinWidth, style.MaxWidth, availableWidth)
	h = clampDim(h, style.MinHeight, style.MaxHeight, availableHeight)

	rect := NewRect(0, 0, w, h)
	store(root, style, rect)
	layoutChildren(root, style, rect.Inset(style.Padding))
}

// store records the computed border box on a node and marks it clean.
func store(node Layoutable, style Style, rect Rect) {
	node.SetLayout(Layout{
		Rect:        rect,
		ContentRect: rect.Inset(style.Padding),
		AbsoluteX:   float64(rect.X),
		AbsoluteY:   float64(rect.Y),
	})
	node.SetDirty(false)
}

// clampDim applies min/max constraints to a dimension. Min wins over max,
// matching CSS behavior.
func clampDim(size int, minV, maxV Value, available int) int {
	if !maxV.IsAuto() {
		if m := maxV.Resolve(available, size); size > m {
			size = m
		}
	}
	if m := minV.Resolve(available, 0); size < m {
		size = m
	}
	if size < 0 {
		size = 0
	}
	return size
}

// layoutChildren performs flexbox layout of children within the parent's
// content rect, recursing into each child.
func layoutChildren(parent Layoutable, style Style, content Rect) {
	children := parent.LayoutChildren()
	if len(children) == 0 {
		return
	}

	horizontal := style.Direction == Row
	mainAvail, crossAvail := content.Width, content.Height
	if !horizontal {
		mainAvail, crossAvail = content.Height, content.Width
	}

	n := len(children)
	sizes := make([]int, n)
	var totalGrow, totalShrink float64
	used := style.Gap * (n - 1)
	for i, child := range children {
		cs := child.LayoutStyle()
		sizes[i] = baseMainSize(child, cs, horizontal, mainAvail)
		used += sizes[i] + mainMargin(cs.Margin, horizontal)
		totalGrow += cs.FlexGrow
		totalShrink += cs.FlexShrink
	}

	// Distribute free space or deficit proportionally to flex factors.
	// Sizes are clamped afterward without redistribution.
	free := mainAvail - used
	if free > 0 && totalGrow > 0 {
		for i, child := range children {
			if g := child.LayoutStyle().FlexGrow; g > 0 {
				sizes[i] += int(math.Round(float64(free) * g / totalGrow))
			}
		}
	} else if free < 0 && totalShrink > 0 {
		deficit := float64(-free)
		for i, child := range children {
			if s := child.LayoutStyle().FlexShrink; s > 0 {
				sizes[i] -= int(math.Round(deficit * s / totalShrink))
			}
		}
	}

	for i, child := range children {
		cs := child.LayoutStyle()
		if horizontal {
			sizes[i] = clampDim(sizes[i], cs.MinWidth, cs.MaxWidth, mainAvail)
		} else {
			sizes[i] = clampDim(sizes[i], cs.MinHeight, cs.MaxHeight, mainAvail)
		}
	}

	finalUsed := style.Gap * (n - 1)
	for i, child := range children {
		finalUsed += sizes[i] + mainMargin(child.LayoutStyle().Margin, horizontal)
	}
	lead, between := justifyOffsets(style.JustifyContent, mainAvail-finalUsed, n)

	mainStart, crossStart := content.X, content.Y
	if !horizontal {
		mainStart, crossStart = content.Y, content.X
	}

	pos := mainStart + lead
	for i, child := range children {
		cs := child.LayoutStyle()
		align := style.AlignItems
		if cs.AlignSelf != nil {
			align = *cs.AlignSelf
		}

		crossSize := crossSizeFor(child, cs, horizontal, crossAvail, align)
		crossPos := crossStart + crossOffset(align, cs.Margin, horizontal, crossAvail, crossSize)

		var rect Rect
		if horizontal {
			rect = NewRect(pos+cs.Margin.Left, crossPos, sizes[i], crossSize)
		} else {
			rect = NewRect(crossPos, pos+cs.Margin.Top, crossSize, sizes[i])
		}
		store(child, cs, rect)
		layoutChildren(child, cs, rect.Inset(cs.Padding))

		pos += sizes[i] + mainMargin(cs.Margin, horizontal) + style.Gap + between
	}
}

// baseMainSize resolves a child's main-axis size before flex distribution.
// Auto sizes fall back to the child's intrinsic size.
func baseMainSize(child Layoutable, cs Style, horizontal bool, mainAvail int) int {
	v := cs.Width
	if !horizontal {
		v = cs.Height
	}
	if !v.IsAuto() {
		return v.Resolve(mainAvail, 0)
	}
	iw, ih := child.IntrinsicSize()
	if horizontal {
		return iw
	}
	return ih
}

// crossSizeFor resolves a child's cross-axis size. Auto sizes stretch to fill
// the container under AlignStretch, otherwise fall back to intrinsic.
func crossSizeFor(child Layoutable, cs Style, horizontal bool, crossAvail int, align Align) int {
	v, minV, maxV := cs.Height, cs.MinHeight, cs.MaxHeight
	marginSum := cs.Margin.Vertical()
	if !horizontal {
		v, minV, maxV = cs.Width, cs.MinWidth, cs.MaxWidth
		marginSum = cs.Margin.Horizontal()
	}

	var size int
	switch {
	case !v.IsAuto():
		size = v.Resolve(crossAvail, 0)
	case align == AlignStretch:
		size = crossAvail - marginSum
	default:
		iw, ih := child.IntrinsicSize()
		if horizontal {
			size = ih
		} else {
			size = iw
		}
	}
	return clampDim(size, minV, maxV, crossAvail)
}

// crossOffset returns the child's offset from the start of the cross axis.
func crossOffset(align Align, margin Edges, horizontal bool, crossAvail, crossSize int) int {
	marginStart, marginEnd := margin.Top, margin.Bottom
	if !horizontal {
		marginStart, marginEnd = margin.Left, margin.Right
	}
	switch align {
	case AlignEnd:
		return crossAvail - crossSize - marginEnd
	case AlignCenter:
		return (crossAvail - crossSize) / 2
	default: // AlignStart, AlignStretch
		return marginStart
	}
}

// justifyOffsets returns the leading offset and the extra spacing inserted
// between children for the given justify mode. Overflow (negative free space)
// packs children at the start.
func justifyOffsets(j Justify, free, n int) (lead, between int) {
	if free <= 0 || n == 0 {
		return 0, 0
	}
	switch j {
	case JustifyEnd:
		return free, 0
	case JustifyCenter:
		return int(math.Round(float64(free) / 2)), 0
	case JustifySpaceBetween:
		if n > 1 {
			between = int(math.Round(float64(free) / float64(n-1)))
		}
		return 0, between
	case JustifySpaceAround:
		lead = int(math.Round(float64(free) / float64(2*n)))
		between = int(math.Round(float64(free) / float64(n)))
		return lead, between
	case JustifySpaceEvenly:
		s := int(math.Round(float64(free) / float64(n+1)))
		return s, s
	default: // JustifyStart
		return 0, 0
	}
}

// mainMargin returns the child's total margin along the main axis.
func mainMargin(m Edges, horizontal bool) int {
	if horizontal {
		return m.Horizontal()
	}
	return m.Vertical()
}
