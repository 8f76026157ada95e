package scene

import (
	"errors"
	"fmt"
	"strings"

	"github.com/grindlemire/go-imlayout/internal/layout"
)

var (
	// ErrUnknownAlgorithm is returned for a layout name the engine does not know.
	ErrUnknownAlgorithm = errors.New("scene: unknown layout algorithm")
	// ErrUnknownOption is returned for an unrecognized enum value such as
	// a clip mode or scrollbar axis.
	ErrUnknownOption = errors.New("scene: unknown option")
	// ErrDuplicateID is returned when two siblings share an id.
	ErrDuplicateID = errors.New("scene: duplicate sibling id")
)

// Scene is a node tree built from a description. It remembers the
// description id of every node for printing.
type Scene struct {
	Root  *layout.Node
	names map[*layout.Node]string
}

// Build creates a node tree from d.
func Build(d Desc) (*Scene, error) {
	s := &Scene{names: map[*layout.Node]string{}}
	name := nodeName(d.ID, -1)
	s.Root = layout.New(layout.KeyOf(name))
	if err := s.apply(s.Root, d, name, true); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate reports the first error Build would return for d, without
// touching any existing tree.
func Validate(d Desc) error {
	_, err := Build(d)
	return err
}

// Sync re-declares the tree for a new frame. Nodes with matching ids are
// reused so their engine state carries over; nodes no longer described
// are swept. Fitted sizes and scroll offsets persist from earlier passes.
// An invalid description is rejected before the tree is modified.
func (s *Scene) Sync(d Desc) error {
	name := nodeName(d.ID, -1)
	if layout.KeyOf(name) != s.Root.ID() {
		return fmt.Errorf("scene: root id changed from %q to %q", s.names[s.Root], name)
	}
	if err := Validate(d); err != nil {
		return err
	}
	if err := s.apply(s.Root, d, name, false); err != nil {
		return err
	}
	removed := s.Root.Sweep()
	if removed > 0 {
		s.prune()
	}
	return nil
}

// Name returns the description id of n, or "" for nodes the scene did not create.
func (s *Scene) Name(n *layout.Node) string {
	return s.names[n]
}

// NodeByName returns the first node, in pre-order, with the given id.
func (s *Scene) NodeByName(name string) *layout.Node {
	var found *layout.Node
	layout.Walk(s.Root, func(n *layout.Node) bool {
		if found == nil && s.names[n] == name {
			found = n
		}
		return found == nil
	})
	return found
}

func (s *Scene) prune() {
	live := map[*layout.Node]bool{}
	layout.Walk(s.Root, func(n *layout.Node) bool {
		live[n] = true
		return true
	})
	for n := range s.names {
		if !live[n] {
			delete(s.names, n)
		}
	}
}

func (s *Scene) apply(n *layout.Node, d Desc, name string, created bool) error {
	s.names[n] = name
	if err := configure(n, d, created); err != nil {
		return fmt.Errorf("node %q: %w", name, err)
	}

	seen := map[string]bool{}
	for i, cd := range d.Children {
		childName := nodeName(cd.ID, i)
		if seen[childName] {
			return fmt.Errorf("node %q: %w %q", name, ErrDuplicateID, childName)
		}
		seen[childName] = true

		existed := hasChild(n, layout.KeyIn(n.ID(), childName))
		if err := s.apply(n.ChildNamed(childName), cd, childName, !existed); err != nil {
			return err
		}
	}
	return nil
}

func nodeName(id string, index int) string {
	id = strings.TrimSpace(id)
	switch {
	case id != "":
		return id
	case index < 0:
		return "root"
	default:
		return fmt.Sprintf("#%d", index)
	}
}

func hasChild(n *layout.Node, key uint64) bool {
	for _, c := range n.Children() {
		if c.ID() == key && !c.IsSynthetic() {
			return true
		}
	}
	return false
}

// configure replaces n's intent with the description. On nodes that
// already existed the size on a fitted axis is kept, since it holds the
// fitted result of the previous pass.
func configure(n *layout.Node, d Desc, created bool) error {
	prev := n.Style()
	n.SetStyle(layout.DefaultStyle())

	width, err := ParseSize(d.Width, layout.Percent(1))
	if err != nil {
		return fmt.Errorf("width: %w", err)
	}
	height, err := ParseSize(d.Height, layout.Percent(1))
	if err != nil {
		return fmt.Errorf("height: %w", err)
	}
	maxWidth, err := ParseSize(d.MaxWidth, layout.Max())
	if err != nil {
		return fmt.Errorf("max_width: %w", err)
	}
	maxHeight, err := ParseSize(d.MaxHeight, layout.Max())
	if err != nil {
		return fmt.Errorf("max_height: %w", err)
	}
	left, err := ParseOffset(d.Left)
	if err != nil {
		return fmt.Errorf("left: %w", err)
	}
	top, err := ParseOffset(d.Top)
	if err != nil {
		return fmt.Errorf("top: %w", err)
	}
	padding, err := parseEdges(d.Padding)
	if err != nil {
		return fmt.Errorf("padding: %w", err)
	}
	margin, err := parseEdges(d.Margin)
	if err != nil {
		return fmt.Errorf("margin: %w", err)
	}

	fitW, fitH, err := parseFit(d.Fit)
	if err != nil {
		return err
	}
	if !created && fitW {
		width = prev.Width
	}
	if !created && fitH {
		height = prev.Height
	}

	n.Size(width, height).
		MaxWidth(maxWidth).
		MaxHeight(maxHeight).
		Position(left, top).
		PaddingEdges(padding[0], padding[1], padding[2], padding[3]).
		MarginEdges(margin[0], margin[1], margin[2], margin[3]).
		FitContent(fitW, fitH).
		CenterContent(d.Center).
		ScaleChildren(d.ScaleChildren).
		IgnoreLayout(d.IgnoreLayout)
	if d.FitAmount != nil {
		n.FitContentAmount(*d.FitAmount, *d.FitAmount)
	}

	if d.Layout != "" {
		alg, ok := layout.ParseAlgorithm(strings.ToLower(d.Layout))
		if !ok {
			return fmt.Errorf("%w %q", ErrUnknownAlgorithm, d.Layout)
		}
		n.Layout(alg)
	}
	if d.Controls != "" {
		x, y, err := parseAxes(d.Controls)
		if err != nil {
			return fmt.Errorf("controls: %w", err)
		}
		n.LayoutAxes(x, y)
	}

	switch len(d.Spacing) {
	case 0:
	case 2:
		sx, err := ParseSize(d.Spacing[0], layout.Pixels(0))
		if err != nil {
			return fmt.Errorf("spacing: %w", err)
		}
		sy, err := ParseSize(d.Spacing[1], layout.Pixels(0))
		if err != nil {
			return fmt.Errorf("spacing: %w", err)
		}
		n.Spacing(sx, sy)
	default:
		return fmt.Errorf("spacing: %w: want [x, y], got %d values", ErrInvalidDimension, len(d.Spacing))
	}

	if d.Clip != "" {
		c, ok := layout.ParseClip(strings.ToLower(d.Clip))
		if !ok {
			return fmt.Errorf("clip: %w %q", ErrUnknownOption, d.Clip)
		}
		n.Clip(c)
	}
	vertical, horizontal, err := parseScrollbars(d.Scrollbars)
	if err != nil {
		return err
	}
	n.Scrollbars(vertical, horizontal)

	if created {
		switch len(d.Scroll) {
		case 0:
		case 2:
			n.SetScroll(d.Scroll[0], d.Scroll[1])
		default:
			return fmt.Errorf("scroll: want [x, y], got %d values", len(d.Scroll))
		}
	}
	return nil
}

// parseEdges returns offsets in the order left, right, top, bottom.
func parseEdges(e Edges) ([4]layout.Offset, error) {
	var out [4]layout.Offset
	switch len(e) {
	case 0:
		return out, nil
	case 1:
		o, err := ParseOffset(e[0])
		if err != nil {
			return out, err
		}
		return [4]layout.Offset{o, o, o, o}, nil
	case 4:
		for i, d := range e {
			o, err := ParseOffset(d)
			if err != nil {
				return out, err
			}
			out[i] = o
		}
		return out, nil
	default:
		return out, fmt.Errorf("%w: want 1 or 4 values, got %d", ErrInvalidDimension, len(e))
	}
}

func parseFit(s string) (width, height bool, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return false, false, nil
	case "width":
		return true, false, nil
	case "height":
		return false, true, nil
	case "both":
		return true, true, nil
	default:
		return false, false, fmt.Errorf("fit: %w %q", ErrUnknownOption, s)
	}
}

func parseAxes(s string) (x, y bool, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return false, false, nil
	case "x":
		return true, false, nil
	case "y":
		return false, true, nil
	case "xy", "both":
		return true, true, nil
	default:
		return false, false, fmt.Errorf("%w %q", ErrUnknownOption, s)
	}
}

func parseScrollbars(s string) (vertical, horizontal bool, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return false, false, nil
	case "vertical":
		return true, false, nil
	case "horizontal":
		return false, true, nil
	case "both":
		return true, true, nil
	default:
		return false, false, fmt.Errorf("scrollbars: %w %q", ErrUnknownOption, s)
	}
}
