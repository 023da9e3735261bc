package treemap

// RecomputeSizes resets every internal node under id to the sum of its
// children's sizes, bottom-up, and returns the resulting size of id. Leaf
// sizes are returned unchanged. It must run after any edit that changes a
// leaf size or the shape of the tree, and before the next Layout.
func (t *Tree) RecomputeSizes(id NodeID) int64 {
	n := t.Node(id)
	if n == nil {
		return 0
	}
	if len(n.children) == 0 {
		return n.size
	}
	var total int64
	for _, c := range n.children {
		total += t.RecomputeSizes(c)
	}
	n.size = total
	return total
}
