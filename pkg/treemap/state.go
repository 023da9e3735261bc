package treemap

// Expand marks id expanded if it has children. Ancestors and descendants are
// left alone; callers expand top-down so an expanded node never sits under a
// collapsed one.
func (t *Tree) Expand(id NodeID) {
	if n := t.Node(id); n != nil && len(n.children) > 0 {
		n.expanded = true
	}
}

// ExpandAll expands id and every descendant that has children.
func (t *Tree) ExpandAll(id NodeID) {
	n := t.Node(id)
	if n == nil || len(n.children) == 0 {
		return
	}
	n.expanded = true
	for _, c := range n.children {
		t.ExpandAll(c)
	}
}

// Collapse collapses id and then the whole subtree of id's parent, siblings
// included. It does not propagate above the parent: on a non-root node the
// parent's subtree ends up collapsed, on the root only the root is.
func (t *Tree) Collapse(id NodeID) {
	n := t.Node(id)
	if n == nil {
		return
	}
	n.expanded = false
	if n.parent != NoNode {
		t.collapseSubtree(n.parent)
	}
}

// CollapseAll clears the expanded flag on every node of the tree containing
// id, whichever node it is called on.
func (t *Tree) CollapseAll(id NodeID) {
	n := t.Node(id)
	if n == nil {
		return
	}
	for n.parent != NoNode {
		n = t.nodes[n.parent]
	}
	t.collapseSubtree(n.id)
}

func (t *Tree) collapseSubtree(id NodeID) {
	n := t.nodes[id]
	n.expanded = false
	for _, c := range n.children {
		t.collapseSubtree(c)
	}
}
