package treemap

import (
	"math/rand/v2"
	"slices"
)

// NodeID addresses a node inside its [Tree]. IDs are stable for the lifetime
// of the tree: slots are never reused, so an ID that referred to a deleted
// node keeps referring to that (now detached) node.
type NodeID int

// NoNode is the parent of a root and the result of failed lookups.
const NoNode NodeID = -1

// Point is a position in layout coordinates.
type Point struct{ X, Y int }

// Rect is an axis-aligned box with integer coordinates.
type Rect struct {
	X, Y int
	W, H int
}

// Contains reports whether p lies in r. All four edges are inclusive, so
// adjacent rectangles both contain the points on their shared edge.
func (r Rect) Contains(p Point) bool {
	return r.X <= p.X && p.X <= r.X+r.W && r.Y <= p.Y && p.Y <= r.Y+r.H
}

// Area returns W*H.
func (r Rect) Area() int { return r.W * r.H }

// Node is a single element of the arena. Fields are read through accessor
// methods; all edits go through [Tree] so the size and membership invariants
// stay intact.
type Node struct {
	id       NodeID
	name     string
	size     int64
	colour   Colour
	rect     Rect
	children []NodeID
	parent   NodeID
	expanded bool
	depth    int
	detached bool
	entity   Entity
}

// ID returns the node's arena index.
func (n *Node) ID() NodeID { return n.id }

// Name returns the node's label; empty for the empty sentinel.
func (n *Node) Name() string { return n.name }

// Size returns the leaf size or, for internal nodes, the last propagated sum.
func (n *Node) Size() int64 { return n.size }

// Colour returns the fill colour.
func (n *Node) Colour() Colour { return n.colour }

// Rect returns the rectangle assigned by the last layout.
func (n *Node) Rect() Rect { return n.rect }

// Parent returns the owning node, or NoNode for the root. Deleted nodes keep
// the parent they had at deletion time.
func (n *Node) Parent() NodeID { return n.parent }

// Children returns a copy of the ordered child IDs.
func (n *Node) Children() []NodeID { return slices.Clone(n.children) }

// NumChildren returns len(Children()) without copying.
func (n *Node) NumChildren() int { return len(n.children) }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// Expanded reports the display flag. Always false for leaves.
func (n *Node) Expanded() bool { return n.expanded }

// Depth returns the depth computed by the last RefreshDepths.
func (n *Node) Depth() int { return n.depth }

// Entity returns the concrete variant backing this node.
func (n *Node) Entity() Entity { return n.entity }

// Tree is an arena of nodes rooted at [Tree.Root].
//
// The zero value is not usable - use [New] or [Empty].
// Tree is not safe for concurrent use without external synchronization.
type Tree struct {
	nodes   []*Node
	root    NodeID
	factory Factory
	rng     *rand.Rand
}

// Option configures a Tree at construction.
type Option func(*Tree)

// WithFactory sets the factory used by Move, Duplicate and CopyPaste.
func WithFactory(f Factory) Option { return func(t *Tree) { t.factory = f } }

// WithRand sets the random source used to colour new nodes. Trees built with
// the same seed produce the same colours.
func WithRand(r *rand.Rand) Option { return func(t *Tree) { t.rng = r } }

// WithSeed is shorthand for WithRand with a PCG source seeded by seed.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed)))
}

// New creates a tree consisting of a single root leaf. A nil entity is
// replaced by a [Label] for name.
func New(name string, e Entity, size int64, opts ...Option) *Tree {
	t := &Tree{root: NoNode}
	for _, opt := range opts {
		opt(t)
	}
	if t.rng == nil {
		t.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	t.root = t.alloc(name, e, size, NoNode)
	return t
}

// Empty returns the empty sentinel: a root with no name, no children and
// size 0 that is never part of a larger tree.
func Empty() *Tree {
	return New("", Label(""), 0, WithSeed(0))
}

// IsEmpty reports whether t is the empty sentinel.
func (t *Tree) IsEmpty() bool {
	r := t.nodes[t.root]
	return r.name == "" && len(r.children) == 0
}

// Root returns the root ID.
func (t *Tree) Root() NodeID { return t.root }

// Len returns the number of arena slots, including detached nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns the node for id, or nil if id is out of range.
func (t *Tree) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}

// Factory returns the configured factory, or nil.
func (t *Tree) Factory() Factory { return t.factory }

// AddChild appends a new leaf under parent and returns its ID. If parent was
// a leaf it becomes internal and its size is replaced by the child's; sizes
// along the ancestor chain are adjusted so every internal node keeps equal to
// the sum of its children. Returns NoNode if parent is unknown.
func (t *Tree) AddChild(parent NodeID, name string, e Entity, size int64) NodeID {
	p := t.Node(parent)
	if p == nil {
		return NoNode
	}
	if size < 0 {
		size = 0
	}
	delta := size
	if len(p.children) == 0 {
		delta = size - p.size
		p.expanded = false
	}
	id := t.alloc(name, e, size, parent)
	p.children = append(p.children, id)
	t.adjustSizes(parent, delta)
	return id
}

// Attached reports whether id is still reachable from the root.
func (t *Tree) Attached(id NodeID) bool {
	for n := t.Node(id); n != nil; n = t.Node(n.parent) {
		if n.detached {
			return false
		}
		if n.id == t.root {
			return true
		}
	}
	return false
}

func (t *Tree) alloc(name string, e Entity, size int64, parent NodeID) NodeID {
	if e == nil {
		e = Label(name)
	}
	if size < 0 {
		size = 0
	}
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, &Node{
		id:     id,
		name:   name,
		size:   size,
		colour: RandomColour(t.rng),
		parent: parent,
		entity: e,
	})
	return id
}

// adjustSizes adds delta to id and every ancestor of id.
func (t *Tree) adjustSizes(id NodeID, delta int64) {
	for n := t.Node(id); n != nil; n = t.Node(n.parent) {
		n.size += delta
	}
}

// graft copies the subtree of src rooted at sid under parent and returns the
// ID of the copy. Colours and entities are carried over; display state is not.
func (t *Tree) graft(parent NodeID, src *Tree, sid NodeID) NodeID {
	s := src.nodes[sid]
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, &Node{
		id:     id,
		name:   s.name,
		size:   s.size,
		colour: s.colour,
		parent: parent,
		entity: s.entity,
	})
	if p := t.Node(parent); p != nil {
		p.children = append(p.children, id)
	}
	for _, c := range s.children {
		t.graft(id, src, c)
	}
	return id
}

func (t *Tree) removeChild(parent, child NodeID) {
	p := t.nodes[parent]
	if i := slices.Index(p.children, child); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	if len(p.children) == 0 {
		p.expanded = false
	}
}
