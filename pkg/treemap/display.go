package treemap

// Block is one entry of the display tree: a rectangle to fill and its colour.
type Block struct {
	ID     NodeID
	Rect   Rect
	Colour Colour
}

// VisibleRectangles returns the display tree under id in render order. A node
// contributes its own block when it is a leaf or not expanded; otherwise its
// children's blocks are concatenated in stored order. Collapsed internal
// nodes therefore render as a single block while keeping their subtree.
func (t *Tree) VisibleRectangles(id NodeID) []Block {
	var out []Block
	t.appendVisible(id, &out)
	return out
}

func (t *Tree) appendVisible(id NodeID, out *[]Block) {
	n := t.Node(id)
	if n == nil {
		return
	}
	if len(n.children) == 0 || !n.expanded {
		*out = append(*out, Block{ID: n.id, Rect: n.rect, Colour: n.colour})
		return
	}
	for _, c := range n.children {
		t.appendVisible(c, out)
	}
}

// NodeAt returns the display-tree node under id whose rectangle contains p.
// It returns false when p lies outside id's rectangle.
//
// Edges are inclusive, so a point on a shared edge lies in both neighbours.
// Children are tested in stored order and the first match wins, which is the
// leftmost child in a column split and the topmost in a row split. Descent
// stops at leaves and at nodes that are not expanded. Children of size 0 have
// no visible area and are never hit.
func (t *Tree) NodeAt(id NodeID, p Point) (NodeID, bool) {
	n := t.Node(id)
	if n == nil || !n.rect.Contains(p) {
		return NoNode, false
	}
	if len(n.children) == 0 || !n.expanded {
		return n.id, true
	}
	for _, c := range n.children {
		if t.nodes[c].size == 0 {
			continue
		}
		if hit, ok := t.NodeAt(c, p); ok {
			return hit, true
		}
	}
	return NoNode, false
}
