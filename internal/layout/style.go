package layout

import "fmt"

// Algorithm selects how a node positions its children.
type Algorithm uint8

const (
	None           Algorithm = iota // Children keep their explicit offsets
	Row                             // Children placed left-to-right
	RowReversed                     // Row over the children in reverse order
	Column                          // Children placed top-to-bottom
	ColumnReversed                  // Column over the children in reverse order
	Grid                            // Rows that wrap at the content width
	GridReversed                    // Grid over the children in reverse order
)

var algorithmNames = [...]string{
	None:           "none",
	Row:            "row",
	RowReversed:    "row-reversed",
	Column:         "column",
	ColumnReversed: "column-reversed",
	Grid:           "grid",
	GridReversed:   "grid-reversed",
}

func (a Algorithm) String() string {
	if int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}
	return fmt.Sprintf("Algorithm(%d)", uint8(a))
}

// ParseAlgorithm returns the Algorithm with the given name.
func ParseAlgorithm(name string) (Algorithm, bool) {
	for i, n := range algorithmNames {
		if n == name {
			return Algorithm(i), true
		}
	}
	return None, false
}

func (a Algorithm) isRow() bool    { return a == Row || a == RowReversed }
func (a Algorithm) isColumn() bool { return a == Column || a == ColumnReversed }
func (a Algorithm) isGrid() bool   { return a == Grid || a == GridReversed }

func (a Algorithm) reversed() bool {
	return a == RowReversed || a == ColumnReversed || a == GridReversed
}

// defaultAxes returns which axes an algorithm controls unless overridden.
func (a Algorithm) defaultAxes() (x, y bool) {
	switch {
	case a.isRow():
		return true, false
	case a.isColumn():
		return false, true
	case a.isGrid():
		return true, true
	default:
		return false, false
	}
}

// Clip selects how a node's drawing is clipped.
type Clip uint8

const (
	ClipNone  Clip = iota // No clipping
	ClipInner             // Clip to the padded content area
	ClipOuter             // Clip to the node's rectangle
)

var clipNames = [...]string{ClipNone: "none", ClipInner: "inner", ClipOuter: "outer"}

func (c Clip) String() string {
	if int(c) < len(clipNames) {
		return clipNames[c]
	}
	return fmt.Sprintf("Clip(%d)", uint8(c))
}

// ParseClip returns the Clip with the given name.
func ParseClip(name string) (Clip, bool) {
	for i, n := range clipNames {
		if n == name {
			return Clip(i), true
		}
	}
	return ClipNone, false
}

// Style contains the layout intent of a node. It persists across frames
// until the caller changes it.
type Style struct {
	// Sizing
	Width     Size
	Height    Size
	MaxWidth  Size
	MaxHeight Size

	// Position relative to the parent's content origin
	Left Offset
	Top  Offset

	// Spacing
	PaddingLeft, PaddingRight, PaddingTop, PaddingBottom Offset
	MarginLeft, MarginRight, MarginTop, MarginBottom     Offset // Stored, not used for positioning

	// Child placement
	Algorithm Algorithm
	ControlsX bool // Algorithm writes children's X
	ControlsY bool // Algorithm writes children's Y
	SpacingX  Size // Gap between children on the X axis
	SpacingY  Size // Gap between children on the Y axis

	IgnoreLayout bool // Excluded from the parent's placement and content rect
	Clip         Clip

	// Content fitting; the amounts blend from 0 to the full content size
	FitWidth        bool
	FitHeight       bool
	FitWidthAmount  float64
	FitHeightAmount float64

	CenterContent bool
	ScaleChildren bool

	ShowVerticalScrollbar   bool
	ShowHorizontalScrollbar bool
}

// DefaultStyle returns a Style that fills the parent's content area.
func DefaultStyle() Style {
	return Style{
		Width:           Percent(1),
		Height:          Percent(1),
		MaxWidth:        Max(),
		MaxHeight:       Max(),
		FitWidthAmount:  1,
		FitHeightAmount: 1,
	}
}

func (s *Style) hash(h *hasher) {
	s.Width.hash(h)
	s.Height.hash(h)
	s.MaxWidth.hash(h)
	s.MaxHeight.hash(h)
	s.Left.hash(h)
	s.Top.hash(h)
	for _, o := range [...]Offset{
		s.PaddingLeft, s.PaddingRight, s.PaddingTop, s.PaddingBottom,
		s.MarginLeft, s.MarginRight, s.MarginTop, s.MarginBottom,
	} {
		o.hash(h)
	}
	h.add(uint64(s.Algorithm))
	h.addBool(s.ControlsX)
	h.addBool(s.ControlsY)
	s.SpacingX.hash(h)
	s.SpacingY.hash(h)
	h.addBool(s.IgnoreLayout)
	h.add(uint64(s.Clip))
	h.addBool(s.FitWidth)
	h.addBool(s.FitHeight)
	h.addFloat(s.FitWidthAmount)
	h.addFloat(s.FitHeightAmount)
	h.addBool(s.CenterContent)
	h.addBool(s.ScaleChildren)
	h.addBool(s.ShowVerticalScrollbar)
	h.addBool(s.ShowHorizontalScrollbar)
}
