package layout

import (
	"math"
	"testing"
)

func TestSize_ToPixels(t *testing.T) {
	type tc struct {
		size     Size
		parent   float64
		expected float64
	}

	tests := map[string]tc{
		"pixels ignore parent": {
			size:     Pixels(50),
			parent:   100,
			expected: 50,
		},
		"pixels with negative parent": {
			size:     Pixels(50),
			parent:   -100,
			expected: 50,
		},
		"half of parent": {
			size:     Percent(0.5),
			parent:   200,
			expected: 100,
		},
		"percent plus offset": {
			size:     PercentOffset(0.25, 10),
			parent:   200,
			expected: 60,
		},
		"percent negative offset": {
			size:     PercentOffset(1, -20),
			parent:   100,
			expected: 80,
		},
		"percent of zero parent is the offset": {
			size:     PercentOffset(1, 7),
			parent:   0,
			expected: 7,
		},
		"percent of negative parent": {
			size:     Percent(0.5),
			parent:   -40,
			expected: -20,
		},
		"negative pixels are not rejected": {
			size:     Pixels(-10),
			parent:   100,
			expected: -10,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.size.ToPixels(tt.parent); got != tt.expected {
				t.Errorf("ToPixels(%v) = %v, want %v", tt.parent, got, tt.expected)
			}
		})
	}
}

func TestSize_PixelsIndependentOfParent(t *testing.T) {
	for _, v := range []float64{0, 1, 12.5, -3, 1000} {
		for _, off := range []float64{0, 4, -2} {
			s := Size{dimension{Value: v, PixelOffset: off, Unit: UnitPixels}}
			for _, p := range []float64{0, 10, -10, 1e6} {
				if got := s.ToPixels(p); got != v+off {
					t.Errorf("Size(%v, %v, px).ToPixels(%v) = %v, want %v", v, off, p, got, v+off)
				}
			}
		}
	}
}

func TestSize_PercentFormula(t *testing.T) {
	for _, v := range []float64{0, 0.25, 1, 1.5} {
		for _, off := range []float64{0, 4, -2} {
			s := PercentOffset(v, off)
			for _, p := range []float64{0, 10, -10, 333} {
				if got, want := s.ToPixels(p), v*p+off; got != want {
					t.Errorf("PercentOffset(%v, %v).ToPixels(%v) = %v, want %v", v, off, p, got, want)
				}
			}
		}
	}
}

func TestSize_Lerp(t *testing.T) {
	type tc struct {
		from, to Size
		t        float64
		parent   float64
		expected float64
	}

	tests := map[string]tc{
		"start": {
			from: Pixels(10), to: Pixels(20), t: 0, parent: 0, expected: 10,
		},
		"end": {
			from: Pixels(10), to: Pixels(20), t: 1, parent: 0, expected: 20,
		},
		"halfway": {
			from: Pixels(10), to: Pixels(20), t: 0.5, parent: 0, expected: 15,
		},
		"mixed units": {
			from: Pixels(0), to: Percent(1), t: 0.25, parent: 200, expected: 50,
		},
		"percent to percent": {
			from: Percent(0.5), to: Percent(1), t: 0.5, parent: 100, expected: 75,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := tt.from.Lerp(tt.to, tt.t)
			if !s.IsBlended() {
				t.Fatal("Lerp() result should be blended")
			}
			if got := s.ToPixels(tt.parent); got != tt.expected {
				t.Errorf("ToPixels(%v) = %v, want %v", tt.parent, got, tt.expected)
			}
		})
	}
}

func TestSize_LerpTwicePanics(t *testing.T) {
	type tc struct {
		blend func()
	}

	blended := Pixels(1).Lerp(Pixels(2), 0.5)
	tests := map[string]tc{
		"blended receiver": {
			blend: func() { blended.Lerp(Pixels(3), 0.5) },
		},
		"blended target": {
			blend: func() { Pixels(3).Lerp(blended, 0.5) },
		},
		"blended offset": {
			blend: func() {
				OffsetPixels(1).Lerp(OffsetPixels(2), 0.5).Lerp(OffsetPixels(3), 0.1)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic when blending a blended value")
				}
			}()
			tt.blend()
		})
	}
}

func TestOffset_ToPixels(t *testing.T) {
	if got := OffsetPixels(12).ToPixels(500); got != 12 {
		t.Errorf("OffsetPixels(12).ToPixels(500) = %v, want 12", got)
	}
	if got := OffsetPercent(0.1).ToPixels(500); got != 50 {
		t.Errorf("OffsetPercent(0.1).ToPixels(500) = %v, want 50", got)
	}
	if got := OffsetPercentPixels(0.5, -5).ToPixels(100); got != 45 {
		t.Errorf("OffsetPercentPixels(0.5, -5).ToPixels(100) = %v, want 45", got)
	}
	if got := OffsetPixels(0).Lerp(OffsetPixels(100), 0.3).ToPixels(0); math.Abs(got-30) > 1e-9 {
		t.Errorf("blended offset = %v, want 30", got)
	}
}

func TestMax(t *testing.T) {
	if got := Max().ToPixels(0); got != math.MaxFloat64 {
		t.Errorf("Max().ToPixels(0) = %v, want MaxFloat64", got)
	}
	if got := min(Pixels(300).ToPixels(0), Max().ToPixels(0)); got != 300 {
		t.Errorf("min(300, Max) = %v, want 300", got)
	}
}

func TestSize_String(t *testing.T) {
	type tc struct {
		size     Size
		expected string
	}

	tests := map[string]tc{
		"pixels":         {size: Pixels(12), expected: "12px"},
		"percent":        {size: Percent(0.5), expected: "50%"},
		"percent offset": {size: PercentOffset(1, -4), expected: "100%-4px"},
		"max":            {size: Max(), expected: "max"},
		"blend":          {size: Pixels(0).Lerp(Pixels(10), 0.5), expected: "0px -> 10px @0.50"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.size.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}
