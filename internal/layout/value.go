package layout

import (
	"fmt"
	"math"
)

// Unit specifies how a Size or Offset is interpreted.
type Unit uint8

const (
	UnitPixels  Unit = iota // Absolute pixels
	UnitPercent             // Fraction of the parent's content extent
)

func (u Unit) String() string {
	switch u {
	case UnitPixels:
		return "px"
	case UnitPercent:
		return "%"
	default:
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}
}

// dimension is the shared model behind Size and Offset.
type dimension struct {
	Value       float64
	PixelOffset float64
	Unit        Unit

	// Blend target, only meaningful when blended is set.
	blended     bool
	toValue     float64
	toOffset    float64
	toUnit      Unit
	blendFactor float64
}

func (d dimension) base() dimension {
	return dimension{Value: d.Value, PixelOffset: d.PixelOffset, Unit: d.Unit}
}

func (d dimension) target() dimension {
	return dimension{Value: d.toValue, PixelOffset: d.toOffset, Unit: d.toUnit}
}

func (d dimension) resolve(parentExtent float64) float64 {
	if d.blended {
		from := d.base().resolve(parentExtent)
		to := d.target().resolve(parentExtent)
		return lerp(from, to, d.blendFactor)
	}
	switch d.Unit {
	case UnitPercent:
		return d.Value*parentExtent + d.PixelOffset
	default:
		return d.Value + d.PixelOffset
	}
}

func (d dimension) blend(to dimension, t float64) dimension {
	if d.blended || to.blended {
		panic("layout: cannot blend a value that is already blended")
	}
	d.blended = true
	d.toValue = to.Value
	d.toOffset = to.PixelOffset
	d.toUnit = to.Unit
	d.blendFactor = t
	return d
}

func (d dimension) hash(h *hasher) {
	h.addFloat(d.Value)
	h.addFloat(d.PixelOffset)
	h.add(uint64(d.Unit))
	h.addBool(d.blended)
	if d.blended {
		h.addFloat(d.toValue)
		h.addFloat(d.toOffset)
		h.add(uint64(d.toUnit))
		h.addFloat(d.blendFactor)
	}
}

func (d dimension) String() string {
	s := formatDimension(d.Value, d.PixelOffset, d.Unit)
	if d.blended {
		s += fmt.Sprintf(" -> %s @%.2f", formatDimension(d.toValue, d.toOffset, d.toUnit), d.blendFactor)
	}
	return s
}

func formatDimension(value, offset float64, unit Unit) string {
	if unit == UnitPercent {
		if offset == 0 {
			return fmt.Sprintf("%g%%", value*100)
		}
		return fmt.Sprintf("%g%%%+gpx", value*100, offset)
	}
	if value >= math.MaxFloat64 {
		return "max"
	}
	return fmt.Sprintf("%gpx", value+offset)
}

// Size is a width or height request. It resolves to pixels against the
// parent's resolved content extent.
type Size struct{ dimension }

// Pixels returns a Size of a fixed number of pixels.
func Pixels(px float64) Size {
	return Size{dimension{Value: px, Unit: UnitPixels}}
}

// Percent returns a Size that is a fraction of the parent's content extent.
// The fraction is on a 0-1 scale (0.5 = 50%).
func Percent(fraction float64) Size {
	return Size{dimension{Value: fraction, Unit: UnitPercent}}
}

// PercentOffset returns a fractional Size plus a constant pixel offset.
func PercentOffset(fraction, px float64) Size {
	return Size{dimension{Value: fraction, PixelOffset: px, Unit: UnitPercent}}
}

// Max returns an unbounded Size, the default for max width and height.
func Max() Size {
	return Pixels(math.MaxFloat64)
}

// ToPixels resolves the size against the parent's content extent.
// Negative extents are not rejected; they resolve arithmetically.
func (s Size) ToPixels(parentExtent float64) float64 {
	return s.resolve(parentExtent)
}

// Lerp returns s blended toward target by factor t.
// It panics if s or target is already blended.
func (s Size) Lerp(target Size, t float64) Size {
	return Size{s.blend(target.dimension, t)}
}

// IsBlended reports whether the size is an active blend of two values.
func (s Size) IsBlended() bool {
	return s.blended
}

// Offset is a position, padding or margin request. It uses the same model
// as Size.
type Offset struct{ dimension }

// OffsetPixels returns an Offset of a fixed number of pixels.
func OffsetPixels(px float64) Offset {
	return Offset{dimension{Value: px, Unit: UnitPixels}}
}

// OffsetPercent returns an Offset that is a fraction of the parent's content extent.
func OffsetPercent(fraction float64) Offset {
	return Offset{dimension{Value: fraction, Unit: UnitPercent}}
}

// OffsetPercentPixels returns a fractional Offset plus a constant pixel offset.
func OffsetPercentPixels(fraction, px float64) Offset {
	return Offset{dimension{Value: fraction, PixelOffset: px, Unit: UnitPercent}}
}

// ToPixels resolves the offset against the parent's content extent.
func (o Offset) ToPixels(parentExtent float64) float64 {
	return o.resolve(parentExtent)
}

// Lerp returns o blended toward target by factor t.
// It panics if o or target is already blended.
func (o Offset) Lerp(target Offset, t float64) Offset {
	return Offset{o.blend(target.dimension, t)}
}

// IsBlended reports whether the offset is an active blend of two values.
func (o Offset) IsBlended() bool {
	return o.blended
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
