package pipeline

import (
	"github.com/matzehuels/treemap/pkg/treemap"
)

// Layout prepares t for rendering: sizes are propagated, the root is laid
// out over a Width x Height frame, depths and colours are refreshed, and the
// tree is expanded opts.Depth levels deep (all levels when Depth is 0).
func Layout(t *treemap.Tree, opts Options) error {
	if err := opts.ValidateForLayout(); err != nil {
		return err
	}
	root := t.Root()
	t.RecomputeSizes(root)
	t.Layout(root, treemap.Rect{W: opts.Width, H: opts.Height})
	t.RefreshDisplayMetadata(root)

	ExpandDepth(t, root, opts.Depth)
	return nil
}

// ExpandDepth collapses the whole tree and then expands depth levels below
// id. A depth of zero expands everything under id.
func ExpandDepth(t *treemap.Tree, id treemap.NodeID, depth int) {
	t.CollapseAll(id)
	if depth == 0 {
		t.ExpandAll(id)
		return
	}
	expandTo(t, id, depth)
}

func expandTo(t *treemap.Tree, id treemap.NodeID, levels int) {
	if levels == 0 {
		return
	}
	t.Expand(id)
	for _, c := range t.Node(id).Children() {
		expandTo(t, c, levels-1)
	}
}
