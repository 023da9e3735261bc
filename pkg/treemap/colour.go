package treemap

import (
	"fmt"
	"math/rand/v2"
)

const (
	// greyRange is the brightest grey handed out to internal nodes.
	greyRange = 200
	// greyTolerance is how close to their mean all three components must be
	// for a random colour to count as grey.
	greyTolerance = 20
	// greyShift moves the blue component of a grey-looking colour.
	greyShift = 150
)

// Colour is an RGB triple. Components are bytes, so they are always in [0,255].
type Colour struct{ R, G, B uint8 }

// Grey returns (v,v,v) with v clamped to [0,255].
func Grey(v int) Colour {
	v = max(0, min(255, v))
	return Colour{uint8(v), uint8(v), uint8(v)}
}

// Hex returns the colour as "#rrggbb".
func (c Colour) Hex() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

// MarshalText encodes the colour as "#rrggbb".
func (c Colour) MarshalText() ([]byte, error) { return []byte(c.Hex()), nil }

// UnmarshalText parses "#rrggbb".
func (c *Colour) UnmarshalText(text []byte) error {
	var r, g, b uint8
	if len(text) != 7 {
		return fmt.Errorf("colour %q: want #rrggbb", text)
	}
	if _, err := fmt.Sscanf(string(text), "#%02x%02x%02x", &r, &g, &b); err != nil {
		return fmt.Errorf("colour %q: %w", text, err)
	}
	*c = Colour{r, g, b}
	return nil
}

// Luminance returns the perceived brightness in [0,1].
func (c Colour) Luminance() float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

// IsGrey reports whether all three components are equal.
func (c Colour) IsGrey() bool { return c.R == c.G && c.G == c.B }

// RandomColour picks a colour that does not look grey. If all three uniform
// components lie within 20 of their mean, the blue component is shifted by
// 150 modulo 255. Leaves keep this colour; internal nodes are repainted by
// RefreshColours.
func RandomColour(rng *rand.Rand) Colour {
	rgb := [3]int{rng.IntN(256), rng.IntN(256), rng.IntN(256)}
	return shiftGrey(rgb)
}

func shiftGrey(rgb [3]int) Colour {
	avg := (rgb[0] + rgb[1] + rgb[2]) / 3
	near := 0
	for _, v := range rgb {
		if abs(v-avg) < greyTolerance {
			near++
		}
	}
	if near == len(rgb) {
		rgb[2] = (rgb[2] + greyShift) % 255
	}
	return Colour{uint8(rgb[0]), uint8(rgb[1]), uint8(rgb[2])}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// RefreshDepths sets id's depth to 0 and every descendant's to its parent's
// depth plus one.
func (t *Tree) RefreshDepths(id NodeID) {
	t.setDepth(id, 0)
}

func (t *Tree) setDepth(id NodeID, depth int) {
	n := t.Node(id)
	if n == nil {
		return
	}
	n.depth = depth
	for _, c := range n.children {
		t.setDepth(c, depth+1)
	}
}

// MaxDepth returns the greatest distance from id to any node below it, or 0
// if id is a leaf.
func (t *Tree) MaxDepth(id NodeID) int {
	n := t.Node(id)
	if n == nil {
		return 0
	}
	deepest := 0
	for _, c := range n.children {
		deepest = max(deepest, t.MaxDepth(c)+1)
	}
	return deepest
}

// StepSize returns the grey increment per depth level for a tree whose
// deepest node is at maxDepth.
func StepSize(maxDepth int) int {
	switch {
	case maxDepth == 0:
		return 0
	case maxDepth == 1:
		return greyRange
	default:
		return greyRange / (maxDepth - 1)
	}
}

// RefreshColours paints every internal node under id grey by depth*step.
// Leaves keep their construction colour.
func (t *Tree) RefreshColours(id NodeID, step int) {
	n := t.Node(id)
	if n == nil || len(n.children) == 0 {
		return
	}
	n.colour = Grey(n.depth * step)
	for _, c := range n.children {
		t.RefreshColours(c, step)
	}
}

// RefreshDisplayMetadata recomputes depths and internal colours under id. It
// must run after every structural edit since depths and the maximum depth can
// change.
func (t *Tree) RefreshDisplayMetadata(id NodeID) {
	t.RefreshDepths(id)
	t.RefreshColours(id, StepSize(t.MaxDepth(id)))
}
