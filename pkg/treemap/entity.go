package treemap

import "fmt"

// Entity is the capability every concrete node variant implements: how its
// path is joined and described on screen, and the identifier a [Factory]
// needs to rebuild it.
type Entity interface {
	// Separator returns the string placed between this node's name and its
	// parent's path.
	Separator() string
	// Suffix returns the trailing descriptor shown after the path, such as
	// kind and formatted size. It is computed from the node's current state.
	Suffix(n *Node) string
	// CanonicalID returns the key the Factory accepts to rebuild this node.
	CanonicalID() string
}

// Factory rebuilds a node, and its whole subtree if it is internal, from a
// canonical identifier. The returned tree is grafted into the caller's tree;
// it must carry the same aggregate size a fresh build would produce.
type Factory interface {
	Create(id string) (*Tree, error)
}

// FactoryFunc adapts an ordinary function to the Factory interface.
type FactoryFunc func(id string) (*Tree, error)

// Create calls f(id).
func (f FactoryFunc) Create(id string) (*Tree, error) { return f(id) }

// Label is the in-memory variant used for synthetic trees: "/" separated,
// identified by its own name.
type Label string

// Separator returns "/".
func (l Label) Separator() string { return "/" }

// Suffix returns the node size in parentheses.
func (l Label) Suffix(n *Node) string {
	if n == nil {
		return ""
	}
	return fmt.Sprintf(" (%d)", n.Size())
}

// CanonicalID returns the label itself.
func (l Label) CanonicalID() string { return string(l) }
