package sink

import (
	"github.com/matzehuels/treemap/pkg/treemap"
)

// Frame is a laid-out display tree ready for rendering.
type Frame struct {
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Root      string  `json:"root"`
	TotalSize int64   `json:"total_size"`
	Blocks    []Block `json:"blocks"`
}

// Block is one visible rectangle.
type Block struct {
	ID     treemap.NodeID `json:"id"`
	Name   string         `json:"name"`
	Path   string         `json:"path"`
	Suffix string         `json:"suffix,omitempty"`
	Size   int64          `json:"size"`
	X      int            `json:"x"`
	Y      int            `json:"y"`
	W      int            `json:"width"`
	H      int            `json:"height"`
	Colour treemap.Colour `json:"colour"`
}

// Rect returns the block's rectangle.
func (b Block) Rect() treemap.Rect { return treemap.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H} }

// NewFrame snapshots the display tree below id. The frame takes its size
// from id's current rectangle, so lay the tree out first.
func NewFrame(t *treemap.Tree, id treemap.NodeID) Frame {
	n := t.Node(id)
	if n == nil {
		return Frame{}
	}
	r := n.Rect()
	f := Frame{
		Width:     r.W,
		Height:    r.H,
		Root:      t.PathString(id),
		TotalSize: n.Size(),
	}

	visible := t.VisibleRectangles(id)
	f.Blocks = make([]Block, 0, len(visible))
	for _, v := range visible {
		bn := t.Node(v.ID)
		f.Blocks = append(f.Blocks, Block{
			ID:     v.ID,
			Name:   bn.Name(),
			Path:   t.PathString(v.ID),
			Suffix: bn.Entity().Suffix(bn),
			Size:   bn.Size(),
			X:      v.Rect.X - r.X,
			Y:      v.Rect.Y - r.Y,
			W:      v.Rect.W,
			H:      v.Rect.H,
			Colour: v.Colour,
		})
	}
	return f
}
