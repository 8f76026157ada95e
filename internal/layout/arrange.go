package layout

// arrange positions the participants according to the node's algorithm.
// Axes the algorithm does not control keep the children's own offsets.
func (n *Node) arrange(participants []*Node) {
	if len(participants) == 0 {
		return
	}
	s := &n.style
	cw, ch := n.contentExtent()
	gapX := s.SpacingX.ToPixels(cw)
	gapY := s.SpacingY.ToPixels(ch)

	switch {
	case s.Algorithm.isRow():
		cursor := 0.0
		for _, c := range participants {
			if s.ControlsX {
				c.layout.Position.X = cursor
			}
			if s.ControlsY {
				c.layout.Position.Y = 0
			}
			cursor += c.layout.Scale.X + gapX
		}
	case s.Algorithm.isColumn():
		cursor := 0.0
		for _, c := range participants {
			if s.ControlsY {
				c.layout.Position.Y = cursor
			}
			if s.ControlsX {
				c.layout.Position.X = 0
			}
			cursor += c.layout.Scale.Y + gapY
		}
	case s.Algorithm.isGrid():
		arrangeGrid(participants, cw, gapX, gapY, s.ControlsX, s.ControlsY)
	}
}

// arrangeGrid packs children left-to-right and starts a new row once the
// cursor reaches the content width. The first child of a row is never
// wrapped, so a child wider than the content overflows.
func arrangeGrid(participants []*Node, contentWidth, gapX, gapY float64, controlsX, controlsY bool) {
	var x, y, rowHeight float64
	for _, c := range participants {
		if x > 0 && x >= contentWidth {
			x = 0
			y += rowHeight + gapY
			rowHeight = 0
		}
		if controlsX {
			c.layout.Position.X = x
		}
		if controlsY {
			c.layout.Position.Y = y
		}
		x += c.layout.Scale.X + gapX
		rowHeight = max(rowHeight, c.layout.Scale.Y)
	}
}

// center moves the participants toward the middle of the content area.
// Rows and columns shift as a block along their main axis. Grids shift so
// the centroid of the children's centers lands on the content center,
// which is not an exact visual center for ragged grids. Anything else
// centers each child on both axes.
func (n *Node) center(participants []*Node) {
	if len(participants) == 0 {
		return
	}
	cw, ch := n.contentExtent()
	alg := n.style.Algorithm

	switch {
	case alg.isRow():
		b := measure(participants)
		dx := (cw-b.Width)/2 - b.X
		for _, c := range participants {
			c.layout.Position.X += dx
		}
	case alg.isColumn():
		b := measure(participants)
		dy := (ch-b.Height)/2 - b.Y
		for _, c := range participants {
			c.layout.Position.Y += dy
		}
	case alg.isGrid():
		var centroid Vec2
		for _, c := range participants {
			centroid = centroid.Add(c.localRect().Center())
		}
		centroid = centroid.Scale(1 / float64(len(participants)))
		d := Vec2{X: cw / 2, Y: ch / 2}.Sub(centroid)
		for _, c := range participants {
			c.layout.Position = c.layout.Position.Add(d)
		}
	default:
		for _, c := range participants {
			c.layout.Position.X = (cw - c.layout.Scale.X) / 2
			c.layout.Position.Y = (ch - c.layout.Scale.Y) / 2
		}
	}
}
