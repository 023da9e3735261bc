package treemap

// Layout assigns rectangles to id and its descendants so that they fill r.
//
// A node of size 0 gets the zero rectangle whatever it is offered. A leaf
// gets r exactly. An internal node gets r and splits it among its children in
// stored order: into columns when r is wider than tall, into rows otherwise
// (a square splits into rows). Each child but the last receives
// floor(childSize/size*extent); the last receives whatever remains, so the
// children tile r exactly despite rounding.
func (t *Tree) Layout(id NodeID, r Rect) {
	n := t.Node(id)
	if n == nil {
		return
	}
	switch {
	case n.size == 0:
		n.rect = Rect{}
	case len(n.children) == 0:
		n.rect = r
	default:
		n.rect = r
		t.subdivide(n, r)
	}
}

func (t *Tree) subdivide(n *Node, r Rect) {
	columns := r.W > r.H
	extent := r.H
	if columns {
		extent = r.W
	}

	x, y := r.X, r.Y
	assigned := 0
	last := len(n.children) - 1
	for i, c := range n.children {
		var span int
		if i == last {
			span = extent - assigned
		} else {
			span = int(t.nodes[c].size * int64(extent) / n.size)
		}
		assigned += span

		if columns {
			t.Layout(c, Rect{X: x, Y: y, W: span, H: r.H})
			x += span
		} else {
			t.Layout(c, Rect{X: x, Y: y, W: r.W, H: span})
			y += span
		}
	}
}
