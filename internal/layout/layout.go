package layout

// Layout holds the resolved snapshot of a node. It is recomputed by every
// pass and never persisted across frames.
type Layout struct {
	// Scale is the resolved width and height in pixels, already limited
	// by MaxScale.
	Scale    Vec2
	MaxScale Vec2

	// Paddings are the resolved padding distances.
	Paddings Spacing

	// Position is relative to the parent's content origin (the parent's
	// top-left corner plus its padding). Use Node.GlobalPosition for the
	// screen position.
	Position Vec2

	// ContentRect is the bounding box of the children that participate in
	// layout, in this node's content frame. Empty when there are none.
	ContentRect Rect

	// Scrollbar visibility evaluated against the content and visible extents.
	VerticalScrollbar   bool
	HorizontalScrollbar bool
}
