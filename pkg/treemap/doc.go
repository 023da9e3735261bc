// Package treemap maintains a size-weighted hierarchy and derives a
// slice-and-dice treemap layout from it.
//
// # Overview
//
// Every node of a [Tree] occupies an axis-aligned rectangle whose area is
// proportional to its aggregate size. A node's rectangle is subdivided among
// its children in stored order: into columns when the rectangle is wider than
// it is tall, into rows otherwise. The last child absorbs the integer rounding
// remainder so the children always tile their parent exactly.
//
// The package covers:
//
//   - The data model: an arena of [Node] values addressed by [NodeID]
//   - Size propagation: [Tree.RecomputeSizes]
//   - Layout: [Tree.Layout]
//   - Display-tree extraction and hit testing: [Tree.VisibleRectangles], [Tree.NodeAt]
//   - Depth and colour derivation: [Tree.RefreshDisplayMetadata]
//   - Expand/collapse state: [Tree.Expand], [Tree.ExpandAll], [Tree.Collapse], [Tree.CollapseAll]
//   - Structural edits: [Tree.ChangeSize], [Tree.DeleteSelf], [Tree.Move],
//     [Tree.Duplicate], [Tree.CopyPaste]
//
// # Call Sequence
//
// Operations never chain into each other. A driver builds a tree, then runs
// the derivations once:
//
//	t.RecomputeSizes(t.Root())
//	t.Layout(t.Root(), treemap.Rect{W: 800, H: 600})
//	t.RefreshDisplayMetadata(t.Root())
//
// After every mutation or display-state change it re-runs RecomputeSizes and
// Layout on the same outer rectangle, and RefreshDisplayMetadata after any
// structural edit (depths and the maximum depth may have changed).
//
// # Entities and Factories
//
// Each node carries an [Entity]: the concrete variant (for example a file or
// folder) that knows its path separator, its human-readable suffix and its
// canonical identifier. Move, Duplicate and CopyPaste rebuild nodes from that
// identifier through the [Factory] configured with [WithFactory]; there is no
// in-memory deep copy.
//
// # Concurrency
//
// A Tree is not safe for concurrent use. Callers that share a tree between
// goroutines must serialize access themselves.
package treemap
