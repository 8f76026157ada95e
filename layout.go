// layout.go re-exports the engine from internal/layout.
// Any changes to internal/layout exported API must be mirrored here.
package imlayout

import (
	"log/slog"

	"github.com/grindlemire/go-imlayout/internal/layout"
)

// Node is an element of the layout tree.
type Node = layout.Node

// Option configures a Node at construction.
type Option = layout.Option

// Style holds the layout intent of a node.
type Style = layout.Style

// Layout holds the resolved snapshot of a node.
type Layout = layout.Layout

// Algorithm selects how a node places its children.
type Algorithm = layout.Algorithm

const (
	None           = layout.None
	Row            = layout.Row
	RowReversed    = layout.RowReversed
	Column         = layout.Column
	ColumnReversed = layout.ColumnReversed
	Grid           = layout.Grid
	GridReversed   = layout.GridReversed
)

// Clip selects which rectangle a node clips its drawing to.
type Clip = layout.Clip

const (
	ClipNone  = layout.ClipNone
	ClipInner = layout.ClipInner
	ClipOuter = layout.ClipOuter
)

// Unit specifies how a Size or Offset is interpreted.
type Unit = layout.Unit

const (
	UnitPixels  = layout.UnitPixels
	UnitPercent = layout.UnitPercent
)

// Size is a width or height intent.
type Size = layout.Size

// Offset is a position, padding or margin intent.
type Offset = layout.Offset

// Vec2 is a 2D vector of pixels.
type Vec2 = layout.Vec2

// Rect is an axis-aligned rectangle in pixels.
type Rect = layout.Rect

// Spacing holds a distance per side.
type Spacing = layout.Spacing

// Input is the per-frame pointer state used for scrolling.
type Input = layout.Input

const (
	ScrollbarThickness = layout.ScrollbarThickness
	MinThumbSize       = layout.MinThumbSize
)

// New creates a detached node with the given identity key.
func New(id uint64, opts ...Option) *Node {
	return layout.New(id, opts...)
}

// KeyOf derives an identity key from a name.
func KeyOf(name string) uint64 {
	return layout.KeyOf(name)
}

// KeyIn derives the identity key of a named child of the node keyed parent.
func KeyIn(parent uint64, name string) uint64 {
	return layout.KeyIn(parent, name)
}

// Compute runs one layout pass over the tree rooted at root.
func Compute(root *Node) {
	layout.Compute(root)
}

// Walk visits n and its descendants in pre-order.
func Walk(n *Node, visit func(*Node) bool) {
	layout.Walk(n, visit)
}

// Find returns the first node in n's subtree with the given key, or nil.
func Find(n *Node, id uint64) *Node {
	return layout.Find(n, id)
}

// ApplyScrollInput updates n's scroll offsets from pointer input.
func ApplyScrollInput(n *Node, in Input, step float64) bool {
	return layout.ApplyScrollInput(n, in, step)
}

// SetLogger configures the engine's logger. Pass nil to silence it.
func SetLogger(l *slog.Logger) {
	layout.SetLogger(l)
}

// DefaultStyle returns the style of a freshly created node.
func DefaultStyle() Style {
	return layout.DefaultStyle()
}

// ParseAlgorithm returns the algorithm with the given name.
func ParseAlgorithm(name string) (Algorithm, bool) {
	return layout.ParseAlgorithm(name)
}

// ParseClip returns the clip mode with the given name.
func ParseClip(name string) (Clip, bool) {
	return layout.ParseClip(name)
}

// --- Dimensions ---

// Pixels creates an absolute size.
func Pixels(px float64) Size {
	return layout.Pixels(px)
}

// Percent creates a size that is a fraction of the parent's content
// extent (1 is 100%).
func Percent(f float64) Size {
	return layout.Percent(f)
}

// PercentOffset creates a fractional size plus a pixel offset.
func PercentOffset(f, px float64) Size {
	return layout.PercentOffset(f, px)
}

// Max creates an unbounded size.
func Max() Size {
	return layout.Max()
}

// OffsetPixels creates an absolute offset.
func OffsetPixels(px float64) Offset {
	return layout.OffsetPixels(px)
}

// OffsetPercent creates a fractional offset.
func OffsetPercent(f float64) Offset {
	return layout.OffsetPercent(f)
}

// OffsetPercentPixels creates a fractional offset plus a pixel offset.
func OffsetPercentPixels(f, px float64) Offset {
	return layout.OffsetPercentPixels(f, px)
}

// --- Geometry ---

// NewRect creates a Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// SpacingAll creates Spacing with the same distance on every side.
func SpacingAll(px float64) Spacing {
	return layout.SpacingAll(px)
}

// RectFrom creates a Rect from a position and a size.
func RectFrom(pos, size Vec2) Rect {
	return layout.RectFrom(pos, size)
}

// Bounds returns the smallest Rect containing all of rects.
func Bounds(rects ...Rect) Rect {
	return layout.Bounds(rects...)
}

// --- Options ---

// WithWidth sets the requested width.
func WithWidth(s Size) Option {
	return layout.WithWidth(s)
}

// WithHeight sets the requested height.
func WithHeight(s Size) Option {
	return layout.WithHeight(s)
}

// WithSize sets the requested width and height.
func WithSize(width, height Size) Option {
	return layout.WithSize(width, height)
}

// WithMaxSize sets the maximum width and height.
func WithMaxSize(width, height Size) Option {
	return layout.WithMaxSize(width, height)
}

// WithPosition sets the explicit offsets.
func WithPosition(left, top Offset) Option {
	return layout.WithPosition(left, top)
}

// WithPadding sets the same padding on every side.
func WithPadding(o Offset) Option {
	return layout.WithPadding(o)
}

// WithMargin sets the same margin on every side.
func WithMargin(o Offset) Option {
	return layout.WithMargin(o)
}

// WithLayout selects the child placement algorithm.
func WithLayout(alg Algorithm) Option {
	return layout.WithLayout(alg)
}

// WithSpacing sets the gap between children.
func WithSpacing(x, y Size) Option {
	return layout.WithSpacing(x, y)
}

// WithFitContent sizes the node to its children.
func WithFitContent(width, height bool) Option {
	return layout.WithFitContent(width, height)
}

// WithCenterContent centers the children.
func WithCenterContent() Option {
	return layout.WithCenterContent()
}

// WithScaleChildren stretches children to fill the controlled axis.
func WithScaleChildren() Option {
	return layout.WithScaleChildren()
}

// WithIgnoreLayout excludes the node from its parent's placement.
func WithIgnoreLayout() Option {
	return layout.WithIgnoreLayout()
}

// WithClip sets the clip mode.
func WithClip(c Clip) Option {
	return layout.WithClip(c)
}

// WithScrollbars enables scrollbars per axis.
func WithScrollbars(vertical, horizontal bool) Option {
	return layout.WithScrollbars(vertical, horizontal)
}
