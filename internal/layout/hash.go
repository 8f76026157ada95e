package layout

import "math"

// hasher accumulates a multiplicative fingerprint: h = h*23 + field.
type hasher uint64

const hashSeed hasher = 17

func (h *hasher) add(v uint64) {
	*h = *h*23 + hasher(v)
}

func (h *hasher) addFloat(f float64) {
	h.add(math.Float64bits(f))
}

func (h *hasher) addBool(b bool) {
	if b {
		h.add(1)
	} else {
		h.add(0)
	}
}

// Hash64 returns a fingerprint of the node's identity key and layout
// intent. Children and the resolved snapshot do not contribute, so two
// nodes configured alike hash equally regardless of their subtrees.
func (n *Node) Hash64() uint64 {
	h := hashSeed
	h.add(n.id)
	n.style.hash(&h)
	return uint64(h)
}

// SubtreeHash64 combines the node's hash with the hashes of all of its
// descendants in child order.
func (n *Node) SubtreeHash64() uint64 {
	h := hasher(n.Hash64())
	for _, c := range n.children {
		if c.synthetic {
			continue
		}
		h.add(c.SubtreeHash64())
	}
	return uint64(h)
}
