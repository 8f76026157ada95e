package layout

// Option configures a Node at construction.
type Option func(*Node)

// Apply runs opts against the node and returns it for chaining.
func (n *Node) Apply(opts ...Option) *Node {
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// --- Dimension Options ---

// WithWidth sets the requested width.
func WithWidth(s Size) Option {
	return func(n *Node) { n.Width(s) }
}

// WithHeight sets the requested height.
func WithHeight(s Size) Option {
	return func(n *Node) { n.Height(s) }
}

// WithSize sets the requested width and height.
func WithSize(width, height Size) Option {
	return func(n *Node) { n.Size(width, height) }
}

// WithMaxSize sets the maximum width and height.
func WithMaxSize(width, height Size) Option {
	return func(n *Node) { n.MaxWidth(width).MaxHeight(height) }
}

// WithPosition sets the left and top offsets.
func WithPosition(left, top Offset) Option {
	return func(n *Node) { n.Position(left, top) }
}

// --- Spacing Options ---

// WithPadding sets the same padding on all sides.
func WithPadding(o Offset) Option {
	return func(n *Node) { n.Padding(o) }
}

// WithMargin sets the same margin on all sides.
func WithMargin(o Offset) Option {
	return func(n *Node) { n.Margin(o) }
}

// --- Placement Options ---

// WithLayout sets the child placement algorithm.
func WithLayout(alg Algorithm) Option {
	return func(n *Node) { n.Layout(alg) }
}

// WithSpacing sets the gap between children on each axis.
func WithSpacing(x, y Size) Option {
	return func(n *Node) { n.Spacing(x, y) }
}

// WithFitContent sizes the node to its content on the given axes.
func WithFitContent(width, height bool) Option {
	return func(n *Node) { n.FitContent(width, height) }
}

// WithCenterContent centers the node's children.
func WithCenterContent() Option {
	return func(n *Node) { n.CenterContent(true) }
}

// WithScaleChildren stretches children along the controlled axis.
func WithScaleChildren() Option {
	return func(n *Node) { n.ScaleChildren(true) }
}

// WithIgnoreLayout excludes the node from its parent's placement.
func WithIgnoreLayout() Option {
	return func(n *Node) { n.IgnoreLayout(true) }
}

// WithClip sets the clip mode.
func WithClip(c Clip) Option {
	return func(n *Node) { n.Clip(c) }
}

// WithScrollbars enables scrollbars per axis.
func WithScrollbars(vertical, horizontal bool) Option {
	return func(n *Node) { n.Scrollbars(vertical, horizontal) }
}

// --- Fluent setters ---

// Width sets the requested width.
func (n *Node) Width(s Size) *Node {
	n.style.Width = s
	return n
}

// Height sets the requested height.
func (n *Node) Height(s Size) *Node {
	n.style.Height = s
	return n
}

// Size sets the requested width and height.
func (n *Node) Size(width, height Size) *Node {
	n.style.Width = width
	n.style.Height = height
	return n
}

// MaxWidth sets the maximum width.
func (n *Node) MaxWidth(s Size) *Node {
	n.style.MaxWidth = s
	return n
}

// MaxHeight sets the maximum height.
func (n *Node) MaxHeight(s Size) *Node {
	n.style.MaxHeight = s
	return n
}

// Left sets the horizontal offset from the parent's content origin.
func (n *Node) Left(o Offset) *Node {
	n.style.Left = o
	return n
}

// Top sets the vertical offset from the parent's content origin.
func (n *Node) Top(o Offset) *Node {
	n.style.Top = o
	return n
}

// Position sets both offsets.
func (n *Node) Position(left, top Offset) *Node {
	n.style.Left = left
	n.style.Top = top
	return n
}

// Padding sets the same padding on all sides.
func (n *Node) Padding(o Offset) *Node {
	return n.PaddingEdges(o, o, o, o)
}

// PaddingEdges sets padding per side.
func (n *Node) PaddingEdges(left, right, top, bottom Offset) *Node {
	n.style.PaddingLeft = left
	n.style.PaddingRight = right
	n.style.PaddingTop = top
	n.style.PaddingBottom = bottom
	return n
}

// Margin sets the same margin on all sides.
func (n *Node) Margin(o Offset) *Node {
	return n.MarginEdges(o, o, o, o)
}

// MarginEdges sets margin per side. Margins are recorded and hashed but
// placement does not consume them.
func (n *Node) MarginEdges(left, right, top, bottom Offset) *Node {
	n.style.MarginLeft = left
	n.style.MarginRight = right
	n.style.MarginTop = top
	n.style.MarginBottom = bottom
	return n
}

// Layout selects the child placement algorithm and resets the controlled
// axes to the algorithm's main axes (X for rows, Y for columns, both for grids).
func (n *Node) Layout(alg Algorithm) *Node {
	n.style.Algorithm = alg
	n.style.ControlsX, n.style.ControlsY = alg.defaultAxes()
	return n
}

// LayoutAxes overrides which axes the algorithm writes.
func (n *Node) LayoutAxes(x, y bool) *Node {
	n.style.ControlsX = x
	n.style.ControlsY = y
	return n
}

// Spacing sets the gap between children on each axis.
func (n *Node) Spacing(x, y Size) *Node {
	n.style.SpacingX = x
	n.style.SpacingY = y
	return n
}

// FitContent sizes the node to its children on the given axes.
func (n *Node) FitContent(width, height bool) *Node {
	n.style.FitWidth = width
	n.style.FitHeight = height
	return n
}

// FitContentAmount sets how far each fitted axis moves from zero toward the
// full content size (0-1).
func (n *Node) FitContentAmount(width, height float64) *Node {
	n.style.FitWidthAmount = width
	n.style.FitHeightAmount = height
	return n
}

// CenterContent toggles centering of children.
func (n *Node) CenterContent(on bool) *Node {
	n.style.CenterContent = on
	return n
}

// ScaleChildren toggles stretching children to fill the controlled axis.
func (n *Node) ScaleChildren(on bool) *Node {
	n.style.ScaleChildren = on
	return n
}

// IgnoreLayout toggles exclusion from the parent's placement and content rect.
func (n *Node) IgnoreLayout(on bool) *Node {
	n.style.IgnoreLayout = on
	return n
}

// Clip sets the clip mode.
func (n *Node) Clip(c Clip) *Node {
	n.style.Clip = c
	return n
}

// Scrollbars enables scrollbars per axis.
func (n *Node) Scrollbars(vertical, horizontal bool) *Node {
	n.style.ShowVerticalScrollbar = vertical
	n.style.ShowHorizontalScrollbar = horizontal
	return n
}
