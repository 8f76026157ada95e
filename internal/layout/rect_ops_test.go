package layout

import "testing"

func TestRect_Translate(t *testing.T) {
	type tc struct {
		rect     Rect
		dx, dy   float64
		expected Rect
	}

	tests := map[string]tc{
		"positive translation": {
			rect:     NewRect(10, 20, 30, 40),
			dx:       5,
			dy:       15,
			expected: NewRect(15, 35, 30, 40),
		},
		"negative translation": {
			rect:     NewRect(10, 20, 30, 40),
			dx:       -5,
			dy:       -10,
			expected: NewRect(5, 10, 30, 40),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.rect.Translate(tt.dx, tt.dy)
			if got != tt.expected {
				t.Errorf("Translate(%v, %v) = %+v, want %+v", tt.dx, tt.dy, got, tt.expected)
			}
		})
	}
}

func TestRect_Intersect(t *testing.T) {
	type tc struct {
		a, b     Rect
		expected Rect
	}

	tests := map[string]tc{
		"overlapping rects": {
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(10, 10, 20, 20),
			expected: NewRect(10, 10, 10, 10),
		},
		"one inside other": {
			a:        NewRect(0, 0, 100, 100),
			b:        NewRect(20, 20, 30, 30),
			expected: NewRect(20, 20, 30, 30),
		},
		"touching edges": {
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: Rect{},
		},
		"disjoint": {
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(50, 50, 10, 10),
			expected: Rect{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.expected {
				t.Errorf("Intersect() = %+v, want %+v", got, tt.expected)
			}
			if got := tt.b.Intersect(tt.a); got != tt.expected {
				t.Errorf("Intersect() (reversed) = %+v, want %+v", got, tt.expected)
			}
			if got, want := tt.a.Intersects(tt.b), !tt.expected.IsEmpty(); got != want {
				t.Errorf("Intersects() = %v, want %v", got, want)
			}
		})
	}
}

func TestRect_Union(t *testing.T) {
	type tc struct {
		a, b     Rect
		expected Rect
	}

	tests := map[string]tc{
		"overlapping rects": {
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(10, 10, 20, 20),
			expected: NewRect(0, 0, 30, 30),
		},
		"disjoint rects": {
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(20, 20, 10, 10),
			expected: NewRect(0, 0, 30, 30),
		},
		"one empty": {
			a:        NewRect(10, 10, 20, 20),
			b:        Rect{},
			expected: NewRect(10, 10, 20, 20),
		},
		"both empty": {
			a:        Rect{},
			b:        Rect{},
			expected: Rect{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Union(tt.b); got != tt.expected {
				t.Errorf("Union() = %+v, want %+v", got, tt.expected)
			}
			if got := tt.b.Union(tt.a); got != tt.expected {
				t.Errorf("Union() (reversed) = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	type tc struct {
		rects    []Rect
		expected Rect
	}

	tests := map[string]tc{
		"none": {
			rects:    nil,
			expected: Rect{},
		},
		"single": {
			rects:    []Rect{NewRect(5, 5, 10, 10)},
			expected: NewRect(5, 5, 10, 10),
		},
		"zero-area rect still counts": {
			rects:    []Rect{NewRect(0, 0, 10, 10), NewRect(30, 0, 0, 5)},
			expected: NewRect(0, 0, 30, 10),
		},
		"stacked column": {
			rects:    []Rect{NewRect(0, 0, 50, 10), NewRect(0, 10, 40, 20)},
			expected: NewRect(0, 0, 50, 30),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Bounds(tt.rects...); got != tt.expected {
				t.Errorf("Bounds() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestSpacing(t *testing.T) {
	s := Spacing{Left: 1, Right: 2, Top: 3, Bottom: 4}

	if got := s.Horizontal(); got != 3 {
		t.Errorf("Horizontal() = %v, want 3", got)
	}
	if got := s.Vertical(); got != 7 {
		t.Errorf("Vertical() = %v, want 7", got)
	}
	if got := s.TopLeft(); got != (Vec2{X: 1, Y: 3}) {
		t.Errorf("TopLeft() = %+v, want {1 3}", got)
	}
	if got := s.TopRight(); got != (Vec2{X: 2, Y: 3}) {
		t.Errorf("TopRight() = %+v, want {2 3}", got)
	}
	if got := s.BottomLeft(); got != (Vec2{X: 1, Y: 4}) {
		t.Errorf("BottomLeft() = %+v, want {1 4}", got)
	}
	if got := s.BottomRight(); got != (Vec2{X: 2, Y: 4}) {
		t.Errorf("BottomRight() = %+v, want {2 4}", got)
	}
	if s.IsZero() {
		t.Error("IsZero() = true for non-zero spacing")
	}
	if !(Spacing{}).IsZero() {
		t.Error("IsZero() = false for zero spacing")
	}
}

func TestVec2(t *testing.T) {
	p1 := Vec2{X: 10, Y: 20}
	p2 := Vec2{X: 5, Y: 15}

	if sum := p1.Add(p2); sum != (Vec2{X: 15, Y: 35}) {
		t.Errorf("Add() = %+v, want {15 35}", sum)
	}
	if diff := p1.Sub(p2); diff != (Vec2{X: 5, Y: 5}) {
		t.Errorf("Sub() = %+v, want {5 5}", diff)
	}
	if scaled := p2.Scale(2); scaled != (Vec2{X: 10, Y: 30}) {
		t.Errorf("Scale() = %+v, want {10 30}", scaled)
	}
	if m := p1.Min(Vec2{X: 50, Y: 1}); m != (Vec2{X: 10, Y: 1}) {
		t.Errorf("Min() = %+v, want {10 1}", m)
	}

	rect := NewRect(0, 0, 50, 50)
	if !p1.In(rect) {
		t.Error("point should be inside rect")
	}
	if (Vec2{X: 100, Y: 100}).In(rect) {
		t.Error("point should be outside rect")
	}
}
