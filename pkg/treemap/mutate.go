package treemap

import (
	"math"

	apperrors "github.com/matzehuels/treemap/pkg/errors"
)

// ChangeSize scales a leaf's size by factor, rounding the change up so that
// some change always happens: size grows by ceil(|factor|*size) when factor
// is non-negative and shrinks by it otherwise, never below 1. Internal nodes
// are left alone. Ancestor sizes are not updated; run RecomputeSizes.
func (t *Tree) ChangeSize(id NodeID, factor float64) {
	n := t.Node(id)
	if n == nil || len(n.children) > 0 {
		return
	}
	delta := int64(math.Ceil(math.Abs(factor) * float64(n.size)))
	if factor >= 0 {
		n.size += delta
	} else {
		n.size -= delta
	}
	n.size = max(n.size, 1)
}

// DeleteSelf detaches id from its parent and reports whether anything was
// deleted. A parent left without children is deleted in turn, up to (but
// never including) the root. The root and already detached nodes are not
// deleted. The deleted node keeps its parent reference so a caller can still
// navigate up from it.
func (t *Tree) DeleteSelf(id NodeID) bool {
	n := t.Node(id)
	if n == nil || n.parent == NoNode || n.detached {
		return false
	}
	t.removeChild(n.parent, id)
	n.detached = true
	if len(t.nodes[n.parent].children) == 0 {
		t.DeleteSelf(n.parent)
	}
	return true
}

// Move rebuilds leaf under dest as its last child and removes the original.
// It does nothing unless leaf is an attached leaf below the root and dest has
// at least one child. The rebuilt node keeps leaf's size and the old parent's
// size drops by that amount; sizes further up need RecomputeSizes.
func (t *Tree) Move(leaf, dest NodeID) error {
	if !t.canTransfer(leaf, dest) {
		return nil
	}
	n := t.nodes[leaf]
	if _, err := t.rebuild(n, dest, true); err != nil {
		return err
	}
	old := n.parent
	t.removeChild(old, leaf)
	n.detached = true
	t.nodes[old].size -= n.size
	return nil
}

// CopyPaste rebuilds leaf under dest as its last child with the same size,
// leaving the original in place. Preconditions are those of Move.
func (t *Tree) CopyPaste(leaf, dest NodeID) error {
	if !t.canTransfer(leaf, dest) {
		return nil
	}
	_, err := t.rebuild(t.nodes[leaf], dest, true)
	return err
}

// Duplicate rebuilds leaf from its canonical identifier and appends it as a
// sibling. It returns the new node, or false when leaf is not a leaf or has
// no parent.
func (t *Tree) Duplicate(leaf NodeID) (NodeID, bool, error) {
	n := t.Node(leaf)
	if n == nil || len(n.children) > 0 || n.parent == NoNode || n.detached {
		return NoNode, false, nil
	}
	id, err := t.rebuild(n, n.parent, false)
	if err != nil {
		return NoNode, false, err
	}
	return id, true, nil
}

func (t *Tree) canTransfer(leaf, dest NodeID) bool {
	src, dst := t.Node(leaf), t.Node(dest)
	if src == nil || dst == nil {
		return false
	}
	return len(src.children) == 0 && len(dst.children) > 0 &&
		src.parent != NoNode && !src.detached
}

// rebuild asks the factory for a fresh copy of n and grafts it under parent.
func (t *Tree) rebuild(n *Node, parent NodeID, keepSize bool) (NodeID, error) {
	if t.factory == nil {
		return NoNode, apperrors.New(apperrors.ErrCodeUnsupported,
			"no factory configured to rebuild %q", n.name)
	}
	key := n.entity.CanonicalID()
	sub, err := t.factory.Create(key)
	if err != nil {
		return NoNode, apperrors.Wrap(apperrors.ErrCodeInternal, err, "rebuild %q", key)
	}
	id := t.graft(parent, sub, sub.Root())
	if keepSize {
		t.nodes[id].size = n.size
	}
	return id, nil
}
