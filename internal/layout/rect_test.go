package layout

import "testing"

func TestNewRect(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.X != 5 || r.Y != 10 {
		t.Errorf("NewRect() position = (%v, %v), want (5, 10)", r.X, r.Y)
	}
	if r.Width != 20 || r.Height != 15 {
		t.Errorf("NewRect() size = %vx%v, want 20x15", r.Width, r.Height)
	}
}

func TestRect_RightBottomCenter(t *testing.T) {
	type tc struct {
		rect   Rect
		right  float64
		bottom float64
		center Vec2
	}

	tests := map[string]tc{
		"standard rect": {
			rect:   NewRect(5, 10, 20, 15),
			right:  25,
			bottom: 25,
			center: Vec2{X: 15, Y: 17.5},
		},
		"negative position": {
			rect:   NewRect(-5, -5, 10, 10),
			right:  5,
			bottom: 5,
			center: Vec2{},
		},
		"zero size": {
			rect:   NewRect(5, 5, 0, 0),
			right:  5,
			bottom: 5,
			center: Vec2{X: 5, Y: 5},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Right(); got != tt.right {
				t.Errorf("Right() = %v, want %v", got, tt.right)
			}
			if got := tt.rect.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %v, want %v", got, tt.bottom)
			}
			if got := tt.rect.Center(); got != tt.center {
				t.Errorf("Center() = %+v, want %+v", got, tt.center)
			}
		})
	}
}

func TestRect_IsEmpty(t *testing.T) {
	type tc struct {
		rect  Rect
		empty bool
	}

	tests := map[string]tc{
		"positive size":   {rect: NewRect(0, 0, 1, 1), empty: false},
		"zero width":      {rect: NewRect(0, 0, 0, 10), empty: true},
		"zero height":     {rect: NewRect(0, 0, 10, 0), empty: true},
		"negative width":  {rect: NewRect(0, 0, -1, 10), empty: true},
		"fractional size": {rect: NewRect(0, 0, 0.5, 0.5), empty: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.IsEmpty(); got != tt.empty {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.empty)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	type tc struct {
		x, y     float64
		expected bool
	}

	tests := map[string]tc{
		"top-left corner": {x: 10, y: 10, expected: true},
		"center":          {x: 20, y: 20, expected: true},
		"just inside":     {x: 29.9, y: 29.9, expected: true},
		"right edge":      {x: 30, y: 15, expected: false},
		"bottom edge":     {x: 15, y: 30, expected: false},
		"left of rect":    {x: 9.9, y: 15, expected: false},
		"above rect":      {x: 15, y: 9.9, expected: false},
		"far outside":     {x: 100, y: 100, expected: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestRect_ContainsRect(t *testing.T) {
	outer := NewRect(0, 0, 100, 100)

	type tc struct {
		inner    Rect
		expected bool
	}

	tests := map[string]tc{
		"fully inside":     {inner: NewRect(10, 10, 20, 20), expected: true},
		"same rect":        {inner: outer, expected: true},
		"partially out":    {inner: NewRect(90, 90, 20, 20), expected: false},
		"empty is inside":  {inner: Rect{}, expected: true},
		"entirely outside": {inner: NewRect(200, 200, 5, 5), expected: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := outer.ContainsRect(tt.inner); got != tt.expected {
				t.Errorf("ContainsRect(%+v) = %v, want %v", tt.inner, got, tt.expected)
			}
		})
	}
}

func TestRect_InsetOutset(t *testing.T) {
	type tc struct {
		rect    Rect
		spacing Spacing
		inset   Rect
	}

	tests := map[string]tc{
		"uniform": {
			rect:    NewRect(10, 10, 100, 100),
			spacing: SpacingAll(5),
			inset:   NewRect(15, 15, 90, 90),
		},
		"per side": {
			rect:    NewRect(0, 0, 100, 100),
			spacing: Spacing{Left: 40, Right: 20, Top: 10, Bottom: 30},
			inset:   NewRect(40, 10, 40, 60),
		},
		"negative expands": {
			rect:    NewRect(10, 10, 50, 50),
			spacing: SpacingAll(-5),
			inset:   NewRect(5, 5, 60, 60),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.rect.Inset(tt.spacing)
			if got != tt.inset {
				t.Errorf("Inset() = %+v, want %+v", got, tt.inset)
			}
			if back := got.Outset(tt.spacing); back != tt.rect {
				t.Errorf("Outset(Inset()) = %+v, want %+v", back, tt.rect)
			}
		})
	}
}
