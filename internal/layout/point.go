package layout

// Vec2 represents an (X, Y) pair in pixels.
type Vec2 struct {
	X, Y float64
}

// Add returns a new Vec2 offset by other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns a new Vec2 with other subtracted.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns v multiplied by s on both axes.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Min returns the component-wise minimum of v and other.
func (v Vec2) Min(other Vec2) Vec2 {
	return Vec2{X: min(v.X, other.X), Y: min(v.Y, other.Y)}
}

// In returns true if the point is inside the given rectangle.
func (v Vec2) In(r Rect) bool {
	return r.Contains(v.X, v.Y)
}
