package layout

import (
	"encoding/binary"
	"hash/fnv"
	"log/slog"
	"slices"
)

// Node is an element in the layout tree. It carries layout intent set by
// the caller and the snapshot resolved by the last pass.
type Node struct {
	// Tree structure
	id       uint64
	parent   *Node
	children []*Node

	// Configuration (caller-set)
	style Style

	// Computed (set by the layout pass)
	layout Layout

	// Scroll offsets persist across frames and are clamped every pass.
	scroll Vec2

	// Scrollbar tracks injected as children while visible.
	vbar, hbar *Node

	touched   bool // reused through Child since the last Sweep
	synthetic bool // created by the engine, not the caller
}

// New creates a detached node with the given identity key.
func New(id uint64, opts ...Option) *Node {
	n := &Node{
		id:      id,
		style:   DefaultStyle(),
		touched: true,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// KeyOf derives an identity key from a name.
func KeyOf(name string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	return h.Sum64()
}

// KeyIn derives the identity key of a named child of the node keyed parent.
// Equal names under different parents get different keys.
func KeyIn(parent uint64, name string) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], parent)
	_, _ = h.Write(buf[:])
	_, _ = h.Write([]byte(name))
	return h.Sum64()
}

// ID returns the caller-supplied identity key.
func (n *Node) ID() uint64 {
	return n.id
}

// Parent returns the parent node, or nil if this is a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the child nodes, including injected scrollbars.
func (n *Node) Children() []*Node {
	return n.children
}

// IsSynthetic reports whether the engine created this node (a scrollbar
// track or thumb).
func (n *Node) IsSynthetic() bool {
	return n.synthetic
}

// Child returns the child with the given key, creating and attaching it
// if this node has none. Reused children are marked as touched for Sweep.
func (n *Node) Child(id uint64) *Node {
	for _, c := range n.children {
		if c.id == id && !c.synthetic {
			c.touched = true
			return c
		}
	}
	c := New(id)
	n.attach(c)
	return c
}

// ChildNamed is Child keyed by KeyIn(n.ID(), name).
func (n *Node) ChildNamed(name string) *Node {
	return n.Child(KeyIn(n.id, name))
}

// AddChild appends children in order. A child attached elsewhere is
// detached from its old parent first. The node itself and its ancestors
// are skipped, since attaching them would close a cycle.
func (n *Node) AddChild(children ...*Node) {
	for _, child := range children {
		if child == nil {
			continue
		}
		if n.hasAncestor(child) {
			Logger().Debug("AddChild would create a cycle", slog.Uint64("node", n.id))
			continue
		}
		if child.parent != nil {
			child.parent.remove(child)
		}
		child.touched = true
		n.attach(child)
	}
}

// hasAncestor reports whether a is n or one of n's ancestors.
func (n *Node) hasAncestor(a *Node) bool {
	for p := n; p != nil; p = p.parent {
		if p == a {
			return true
		}
	}
	return false
}

// RemoveChild detaches child from this node and re-resolves the orphaned
// subtree. Returns true if the child was found and removed.
func (n *Node) RemoveChild(child *Node) bool {
	if !n.remove(child) {
		return false
	}
	child.UpdateCache()
	return true
}

// Detach removes the node from its parent, if any, and re-resolves its
// subtree as a root.
func (n *Node) Detach() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// Sweep removes, recursively, every caller-created child that was not
// reused through Child or AddChild since the previous Sweep. It returns
// the number of subtrees removed.
func (n *Node) Sweep() int {
	removed := 0
	kept := n.children[:0]
	for _, c := range n.children {
		if !c.touched && !c.synthetic {
			c.parent = nil
			removed++
			continue
		}
		c.touched = false
		removed += c.Sweep()
		kept = append(kept, c)
	}
	clear(n.children[len(kept):])
	n.children = kept
	return removed
}

// Style returns the node's layout intent.
func (n *Node) Style() Style {
	return n.style
}

// SetStyle replaces the node's layout intent.
func (n *Node) SetStyle(style Style) *Node {
	n.style = style
	return n
}

func (n *Node) attach(child *Node) {
	child.parent = n
	n.children = append(n.children, child)
}

// remove unlinks child, keeping sibling order.
func (n *Node) remove(child *Node) bool {
	i := slices.Index(n.children, child)
	if i < 0 {
		return false
	}
	n.children = slices.Delete(n.children, i, i+1)
	child.parent = nil
	switch child {
	case n.vbar:
		n.vbar = nil
	case n.hbar:
		n.hbar = nil
	}
	return true
}
