// Package layout implements an immediate-style layout engine for UI trees
// that are rebuilt every frame.
//
// A caller builds or reuses a tree of [Node] values keyed by stable ids,
// configures each node's layout intent through chained setters, and then
// runs [Compute] once per frame on the root. Afterwards every node carries a
// resolved snapshot: pixel scale, local and global position, the bounding
// rectangle of its children, and clamped scroll offsets.
//
// Sizes and offsets are [Size] and [Offset] values expressed in pixels or as
// a fraction of the parent's content extent, optionally blended toward a
// second value for animation. Children are positioned by the parent's
// [Algorithm]: stacked rows and columns, their reversed forms, or a wrapping
// grid. Nodes can fit themselves to their content, stretch their children to
// fill, center their children and show scrollbars.
//
// [Node.Hash64] fingerprints a node's intent so callers can detect changes
// between frames without diffing the whole tree.
//
// Types are re-exported through the root imlayout package for public consumption.
package layout
