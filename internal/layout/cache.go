package layout

// UpdateCache resolves this node's paddings, scale, max scale and position
// from its intent, then recurses into the children. The parent's cache must
// already be resolved; a root resolves percentages against zero.
func (n *Node) UpdateCache() {
	n.resolveSelf()
	for _, c := range n.children {
		c.UpdateCache()
	}
}

// resolveSelf resolves the node's own cache without touching children.
// Padding is resolved against zero; scale and position against the
// parent's content extent.
func (n *Node) resolveSelf() {
	s := &n.style
	n.layout.Paddings = Spacing{
		Left:   s.PaddingLeft.ToPixels(0),
		Right:  s.PaddingRight.ToPixels(0),
		Top:    s.PaddingTop.ToPixels(0),
		Bottom: s.PaddingBottom.ToPixels(0),
	}

	pw, ph := n.parentContentExtent()
	n.layout.MaxScale = Vec2{X: s.MaxWidth.ToPixels(pw), Y: s.MaxHeight.ToPixels(ph)}
	n.layout.Scale = Vec2{X: s.Width.ToPixels(pw), Y: s.Height.ToPixels(ph)}.Min(n.layout.MaxScale)
	n.resolvePosition()
}

// resolvePosition resolves the explicit offsets against the parent's
// content extent.
func (n *Node) resolvePosition() {
	pw, ph := n.parentContentExtent()
	n.layout.Position = Vec2{X: n.style.Left.ToPixels(pw), Y: n.style.Top.ToPixels(ph)}
}

// contentExtent returns the resolved scale minus padding.
func (n *Node) contentExtent() (width, height float64) {
	return n.layout.Scale.X - n.layout.Paddings.Horizontal(),
		n.layout.Scale.Y - n.layout.Paddings.Vertical()
}

func (n *Node) parentContentExtent() (width, height float64) {
	if n.parent == nil {
		return 0, 0
	}
	return n.parent.contentExtent()
}
