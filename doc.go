// Package imlayout is an immediate-style layout engine for UI trees.
//
// Callers rebuild or re-touch a tree of nodes every frame, describe each
// node's sizing and placement intent, and run Compute once per frame. Nodes
// are keyed so that state such as scroll offsets and fitted sizes persists
// from one frame to the next. Each pass resolves every node's cache
// top-down, then places children, fits content and updates scrollbars
// bottom-up.
//
//	root := imlayout.New(imlayout.KeyOf("root")).
//		Size(imlayout.Pixels(800), imlayout.Pixels(600)).
//		Layout(imlayout.Column).
//		Scrollbars(true, false)
//	for i := range 20 {
//		root.Child(uint64(i)).Height(imlayout.Pixels(48))
//	}
//	root.Sweep()
//	imlayout.Compute(root)
//
// Sizes are pixels, fractions of the parent's content extent (1 is 100%),
// or a fraction plus a pixel offset. The engine never draws; hosts walk
// the tree and read GlobalPosition, Rect and ClipRect from each node.
package imlayout
