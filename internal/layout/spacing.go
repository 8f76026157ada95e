package layout

// Spacing holds resolved pixel distances for the four sides of a box.
type Spacing struct {
	Left, Right, Top, Bottom float64
}

// SpacingAll creates Spacing with the same value on all sides.
func SpacingAll(px float64) Spacing {
	return Spacing{Left: px, Right: px, Top: px, Bottom: px}
}

// Horizontal returns the sum of Left and Right.
func (s Spacing) Horizontal() float64 {
	return s.Left + s.Right
}

// Vertical returns the sum of Top and Bottom.
func (s Spacing) Vertical() float64 {
	return s.Top + s.Bottom
}

// TopLeft returns the (Left, Top) corner vector.
func (s Spacing) TopLeft() Vec2 {
	return Vec2{X: s.Left, Y: s.Top}
}

// TopRight returns the (Right, Top) corner vector.
func (s Spacing) TopRight() Vec2 {
	return Vec2{X: s.Right, Y: s.Top}
}

// BottomLeft returns the (Left, Bottom) corner vector.
func (s Spacing) BottomLeft() Vec2 {
	return Vec2{X: s.Left, Y: s.Bottom}
}

// BottomRight returns the (Right, Bottom) corner vector.
func (s Spacing) BottomRight() Vec2 {
	return Vec2{X: s.Right, Y: s.Bottom}
}

// IsZero returns true if all sides are zero.
func (s Spacing) IsZero() bool {
	return s.Left == 0 && s.Right == 0 && s.Top == 0 && s.Bottom == 0
}
