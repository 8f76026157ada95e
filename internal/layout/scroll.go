package layout

const (
	// ScrollbarThickness is the cross-axis size of a scrollbar track in pixels.
	ScrollbarThickness = 10.0

	// MinThumbSize is the smallest thumb length in pixels.
	MinThumbSize = 20.0
)

// Keys mixed into the owner's key to identify injected scrollbar nodes.
const (
	verticalTrackKey   = 0x7363726f6c6c5600 // "scrollV\x00"
	horizontalTrackKey = 0x7363726f6c6c4800 // "scrollH\x00"
	thumbKey           = 0x7468756d62000000 // "thumb"
)

// --- Scroll Query Methods ---

// Scroll returns the current scroll offsets.
func (n *Node) Scroll() Vec2 {
	return n.scroll
}

// ViewportSize returns the visible content extent (scale minus padding).
func (n *Node) ViewportSize() Vec2 {
	w, h := n.contentExtent()
	return Vec2{X: w, Y: h}
}

// MaxScroll returns the largest valid scroll offset on each axis.
func (n *Node) MaxScroll() Vec2 {
	w, h := n.contentExtent()
	cr := n.layout.ContentRect
	return Vec2{X: max(0, cr.Width-w), Y: max(0, cr.Height-h)}
}

// VerticalScrollbarVisible reports whether the last pass showed a vertical scrollbar.
func (n *Node) VerticalScrollbarVisible() bool {
	return n.layout.VerticalScrollbar
}

// HorizontalScrollbarVisible reports whether the last pass showed a horizontal scrollbar.
func (n *Node) HorizontalScrollbarVisible() bool {
	return n.layout.HorizontalScrollbar
}

// VerticalScrollbar returns the injected vertical track, or nil when hidden.
// The track's only child is the thumb.
func (n *Node) VerticalScrollbar() *Node {
	return n.vbar
}

// HorizontalScrollbar returns the injected horizontal track, or nil when hidden.
func (n *Node) HorizontalScrollbar() *Node {
	return n.hbar
}

// --- Scroll Control Methods ---

// SetScroll sets the scroll offsets. Out-of-range values are clamped by
// the next pass.
func (n *Node) SetScroll(x, y float64) *Node {
	n.scroll = Vec2{X: x, Y: y}
	return n
}

// ScrollBy adjusts the scroll offsets by a delta.
func (n *Node) ScrollBy(dx, dy float64) *Node {
	n.scroll = n.scroll.Add(Vec2{X: dx, Y: dy})
	return n
}

// ScrollIntoView scrolls minimally so child's rect is inside the viewport,
// using the snapshot of the last pass. Does nothing if child is not a
// direct participant of n.
func (n *Node) ScrollIntoView(child *Node) {
	if child.parent != n || child.style.IgnoreLayout {
		return
	}
	view := n.ViewportSize()
	r := child.localRect()

	if r.Y < n.scroll.Y {
		n.scroll.Y = r.Y
	} else if r.Bottom() > n.scroll.Y+view.Y {
		n.scroll.Y = r.Bottom() - view.Y
	}
	if r.X < n.scroll.X {
		n.scroll.X = r.X
	} else if r.Right() > n.scroll.X+view.X {
		n.scroll.X = r.Right() - view.X
	}
}

// --- Internal Layout ---

// updateScrollbars clamps the scroll offsets and syncs the injected
// scrollbar nodes with the current content and viewport.
func (n *Node) updateScrollbars() {
	maxScroll := n.MaxScroll()
	n.scroll.X = clamp(n.scroll.X, 0, maxScroll.X)
	n.scroll.Y = clamp(n.scroll.Y, 0, maxScroll.Y)

	view := n.ViewportSize()
	cr := n.layout.ContentRect
	n.layout.VerticalScrollbar = n.style.ShowVerticalScrollbar && cr.Height > view.Y
	n.layout.HorizontalScrollbar = n.style.ShowHorizontalScrollbar && cr.Width > view.X

	if n.layout.VerticalScrollbar {
		trackLen := view.Y
		if n.layout.HorizontalScrollbar {
			trackLen -= ScrollbarThickness
		}
		n.vbar = n.syncTrack(n.vbar, verticalTrackKey)
		thumbLen, thumbPos := thumbGeometry(view.Y, cr.Height, trackLen, n.scroll.Y, maxScroll.Y)
		n.vbar.placeTrack(
			NewRect(view.X-ScrollbarThickness, 0, ScrollbarThickness, trackLen),
			NewRect(0, thumbPos, ScrollbarThickness, thumbLen),
		)
	} else if n.vbar != nil {
		n.remove(n.vbar)
	}

	if n.layout.HorizontalScrollbar {
		trackLen := view.X
		if n.layout.VerticalScrollbar {
			trackLen -= ScrollbarThickness
		}
		n.hbar = n.syncTrack(n.hbar, horizontalTrackKey)
		thumbLen, thumbPos := thumbGeometry(view.X, cr.Width, trackLen, n.scroll.X, maxScroll.X)
		n.hbar.placeTrack(
			NewRect(0, view.Y-ScrollbarThickness, trackLen, ScrollbarThickness),
			NewRect(thumbPos, 0, thumbLen, ScrollbarThickness),
		)
	} else if n.hbar != nil {
		n.remove(n.hbar)
	}
}

// syncTrack returns the existing track or injects a new one with its thumb.
func (n *Node) syncTrack(track *Node, key uint64) *Node {
	if track != nil {
		return track
	}
	track = newSynthetic(n.id ^ key)
	track.attach(newSynthetic(n.id ^ key ^ thumbKey))
	n.attach(track)
	return track
}

func newSynthetic(id uint64) *Node {
	n := New(id)
	n.synthetic = true
	n.style.IgnoreLayout = true
	return n
}

// placeTrack writes the track and thumb rects as pixel intent and resolves
// both caches.
func (n *Node) placeTrack(track, thumb Rect) {
	n.setRect(track)
	n.children[0].setRect(thumb)
	n.UpdateCache()
}

func (n *Node) setRect(r Rect) {
	n.style.Left = OffsetPixels(r.X)
	n.style.Top = OffsetPixels(r.Y)
	n.style.Width = Pixels(r.Width)
	n.style.Height = Pixels(r.Height)
}

// thumbGeometry returns the thumb length and its offset along the track.
func thumbGeometry(visible, content, trackLen, scroll, maxScroll float64) (length, offset float64) {
	length = max(MinThumbSize, visible/content*trackLen)
	length = min(length, trackLen)
	if maxScroll > 0 {
		offset = scroll / maxScroll * (trackLen - length)
	}
	return length, offset
}

// clamp restricts v to the range [minVal, maxVal].
func clamp(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
