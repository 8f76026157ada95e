package layout

// Input is the per-frame pointer state supplied by the host's event
// system. Queries take a screen rectangle so the engine does not need to
// know how the host tracks hover and press state.
type Input interface {
	PointerPosition() Vec2
	PointerDelta() Vec2

	// WheelDelta returns the scroll wheel movement this frame. Positive Y
	// means the wheel moved away from the user.
	WheelDelta() Vec2

	IsHovered(r Rect) bool
	// IsPressed reports a press that started inside r this frame.
	IsPressed(r Rect) bool
	// IsActive reports a press that started inside r and is still held.
	IsActive(r Rect) bool
}

// ApplyScrollInput updates n's scroll offsets from wheel movement over the
// node, dragging a scrollbar thumb, or pressing a track outside its thumb,
// which pages by one viewport. step is the pixel distance per wheel unit.
// Offsets are not clamped here; the next pass clamps them. Reports whether
// the offsets changed.
func ApplyScrollInput(n *Node, in Input, step float64) bool {
	before := n.scroll

	if in.IsHovered(n.Rect()) {
		wheel := in.WheelDelta()
		if n.style.ShowVerticalScrollbar {
			n.scroll.Y -= wheel.Y * step
		}
		if n.style.ShowHorizontalScrollbar {
			n.scroll.X -= wheel.X * step
		}
	}

	maxScroll := n.MaxScroll()
	view := n.ViewportSize()
	if n.vbar != nil {
		n.scroll.Y += trackInput(n.vbar, in, maxScroll.Y, view.Y, func(v Vec2) float64 { return v.Y })
	}
	if n.hbar != nil {
		n.scroll.X += trackInput(n.hbar, in, maxScroll.X, view.X, func(v Vec2) float64 { return v.X })
	}

	return n.scroll != before
}

// trackInput returns the scroll delta produced by a track and its thumb.
func trackInput(track *Node, in Input, maxScroll, page float64, axis func(Vec2) float64) float64 {
	thumb := track.children[0]
	thumbRect := thumb.Rect()

	if in.IsActive(thumbRect) {
		travel := axis(track.layout.Scale) - axis(thumb.layout.Scale)
		if travel <= 0 {
			return 0
		}
		return axis(in.PointerDelta()) * maxScroll / travel
	}

	if in.IsPressed(track.Rect()) && !in.IsPressed(thumbRect) {
		if axis(in.PointerPosition()) < axis(thumbRect.Min()) {
			return -page
		}
		return page
	}
	return 0
}
