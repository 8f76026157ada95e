package layout

// Snapshot returns the resolved layout of the last pass.
func (n *Node) Snapshot() Layout {
	return n.layout
}

// Scale returns the resolved width and height.
func (n *Node) Scale() Vec2 {
	return n.layout.Scale
}

// MaxScale returns the resolved maximum width and height.
func (n *Node) MaxScale() Vec2 {
	return n.layout.MaxScale
}

// Paddings returns the resolved padding.
func (n *Node) Paddings() Spacing {
	return n.layout.Paddings
}

// LocalPosition returns the position relative to the parent's content origin.
func (n *Node) LocalPosition() Vec2 {
	return n.layout.Position
}

// ContentRect returns the bounds of the participating children in this
// node's content frame.
func (n *Node) ContentRect() Rect {
	return n.layout.ContentRect
}

// GlobalPosition returns the screen position. It is derived from the
// parent chain on every call rather than cached, so it reflects the
// ancestors' current snapshots and scroll offsets. Children that take part
// in layout move with the parent's scroll; ignored children do not.
func (n *Node) GlobalPosition() Vec2 {
	p := n.parent
	if p == nil {
		return n.layout.Position
	}
	origin := p.GlobalPosition().Add(p.layout.Paddings.TopLeft())
	if !n.style.IgnoreLayout {
		origin = origin.Sub(p.scroll)
	}
	return origin.Add(n.layout.Position)
}

// Rect returns the node's screen rectangle.
func (n *Node) Rect() Rect {
	return RectFrom(n.GlobalPosition(), n.layout.Scale)
}

// InnerRect returns the screen rectangle minus padding.
func (n *Node) InnerRect() Rect {
	return n.Rect().Inset(n.layout.Paddings)
}

// ClipRect returns the rectangle this node clips its drawing to, and false
// when the clip mode is ClipNone.
func (n *Node) ClipRect() (Rect, bool) {
	switch n.style.Clip {
	case ClipInner:
		return n.InnerRect(), true
	case ClipOuter:
		return n.Rect(), true
	default:
		return Rect{}, false
	}
}

// VisibleRect returns the part of the node's rect left after every
// clipping ancestor, and false if nothing is left.
func (n *Node) VisibleRect() (Rect, bool) {
	r := n.Rect()
	for p := n.parent; p != nil; p = p.parent {
		if clip, ok := p.ClipRect(); ok {
			r = r.Intersect(clip)
			if r.IsEmpty() {
				return Rect{}, false
			}
		}
	}
	return r, true
}
