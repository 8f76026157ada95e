package layout

// Walk visits n and its descendants in pre-order, which is also drawing
// order. Returning false from visit skips the node's children.
func Walk(n *Node, visit func(*Node) bool) {
	if n == nil || !visit(n) {
		return
	}
	for _, c := range n.children {
		Walk(c, visit)
	}
}

// Find returns the first node in n's subtree, including n, with the given
// key, or nil. Injected scrollbar nodes are skipped.
func Find(n *Node, id uint64) *Node {
	var found *Node
	Walk(n, func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.id == id && !c.synthetic {
			found = c
			return false
		}
		return true
	})
	return found
}
