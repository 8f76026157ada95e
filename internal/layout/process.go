package layout

import (
	"log/slog"
	"time"
)

// Compute runs one layout pass over the tree rooted at root: it resolves
// every cache top-down, then positions and sizes the tree bottom-up.
//
// Compute must not be called concurrently with mutations of the tree or
// from inside another pass.
func Compute(root *Node) {
	if root == nil {
		return
	}
	var start time.Time
	debug := debugEnabled()
	if debug {
		start = time.Now()
	}

	root.UpdateCache()
	root.ProcessLayout()

	if debug {
		count := 0
		Walk(root, func(*Node) bool { count++; return true })
		Logger().Debug("layout pass",
			slog.Uint64("root", root.id),
			slog.Int("nodes", count),
			slog.Duration("elapsed", time.Since(start)),
		)
	}
}

// ProcessLayout computes the subtree rooted at n. Children finish their
// own pass before n places them, measures their bounds and fits itself.
func (n *Node) ProcessLayout() {
	// 1. Stretch children along the controlled axis
	if n.style.ScaleChildren && n.scaleChildren() {
		n.UpdateCache()
	}

	// 2. Children first
	for _, c := range n.children {
		if !c.synthetic {
			c.ProcessLayout()
		}
	}

	// 3. Scaling may have moved our own percent offsets
	n.resolvePosition()

	// 4-5. Place and center children
	participants := n.participants()
	n.arrange(participants)
	if n.style.CenterContent {
		n.center(participants)
	}

	// 6. Bounds of the placed children
	n.layout.ContentRect = measure(participants)

	// 7. Size to content
	if n.fitContent() {
		// 8. Children resolved against the old extent follow the new one
		n.relayoutChildren()
	}

	n.updateScrollbars()
}

// relayoutChildren re-resolves and re-places the children after the node's
// own extent changed. The node does not fit again; content that depends on
// the fitted extent settles on the next pass.
func (n *Node) relayoutChildren() {
	if n.style.ScaleChildren {
		n.scaleChildren()
	}
	for _, c := range n.children {
		if c.synthetic {
			continue
		}
		c.UpdateCache()
		c.ProcessLayout()
	}
	participants := n.participants()
	n.arrange(participants)
	if n.style.CenterContent {
		n.center(participants)
	}
	n.layout.ContentRect = measure(participants)
}

// participants returns the children that take part in placement, in
// placement order.
func (n *Node) participants() []*Node {
	var out []*Node
	for _, c := range n.children {
		if c.synthetic || c.style.IgnoreLayout {
			continue
		}
		out = append(out, c)
	}
	if n.style.Algorithm.reversed() {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// scaleChildren hands out the content extent along the controlled axis.
// Each child in turn gets an equal share of what remains, limited by its
// max scale; the rest carries over. Reports whether any size was assigned.
func (n *Node) scaleChildren() bool {
	alg := n.style.Algorithm
	if !alg.isRow() && !alg.isColumn() {
		return false
	}
	participants := n.participants()
	if len(participants) == 0 {
		return false
	}

	cw, ch := n.contentExtent()
	remaining := cw
	gap := n.style.SpacingX.ToPixels(cw)
	if alg.isColumn() {
		remaining = ch
		gap = n.style.SpacingY.ToPixels(ch)
	}
	remaining -= gap * float64(len(participants)-1)

	for i, c := range participants {
		share := remaining / float64(len(participants)-i)
		if alg.isRow() {
			share = min(share, c.layout.MaxScale.X)
			c.style.Width = Pixels(share)
		} else {
			share = min(share, c.layout.MaxScale.Y)
			c.style.Height = Pixels(share)
		}
		remaining -= share
	}

	if (n.style.FitWidth && alg.isRow()) || (n.style.FitHeight && alg.isColumn()) {
		Logger().Debug("fit-content and scale-children on the same axis",
			slog.Uint64("node", n.id),
			slog.String("layout", alg.String()),
		)
	}
	return true
}

// measure returns the bounding box of the nodes in their parent's content frame.
func measure(nodes []*Node) Rect {
	if len(nodes) == 0 {
		return Rect{}
	}
	rects := make([]Rect, len(nodes))
	for i, c := range nodes {
		rects[i] = c.localRect()
	}
	return Bounds(rects...)
}

// fitContent resizes the node from its content rect on the fitted axes and
// re-resolves its own cache. The fitted size persists as intent. Reports
// whether the content extent changed.
func (n *Node) fitContent() bool {
	s := &n.style
	if !s.FitWidth && !s.FitHeight {
		return false
	}
	oldW, oldH := n.contentExtent()
	cr := n.layout.ContentRect
	pad := n.layout.Paddings
	if s.FitWidth {
		s.Width = Pixels(lerp(0, cr.Width+pad.Horizontal(), s.FitWidthAmount))
	}
	if s.FitHeight {
		s.Height = Pixels(lerp(0, cr.Height+pad.Vertical(), s.FitHeightAmount))
	}
	n.resolveSelf()
	w, h := n.contentExtent()
	return w != oldW || h != oldH
}

func (n *Node) localRect() Rect {
	return RectFrom(n.layout.Position, n.layout.Scale)
}
