package treemap

import (
	"testing"
)

func TestLayoutColumns(t *testing.T) {
	tr, a, b := build(t)
	tr.Layout(tr.Root(), Rect{W: 100, H: 50})

	if got, want := tr.Node(a).Rect(), (Rect{X: 0, Y: 0, W: 30, H: 50}); got != want {
		t.Errorf("a = %+v, want %+v", got, want)
	}
	if got, want := tr.Node(b).Rect(), (Rect{X: 30, Y: 0, W: 70, H: 50}); got != want {
		t.Errorf("b = %+v, want %+v", got, want)
	}
}

func TestLayoutRowsWhenSquare(t *testing.T) {
	tr, a, b := build(t)
	tr.Layout(tr.Root(), Rect{X: 5, Y: 5, W: 100, H: 100})

	if got, want := tr.Node(a).Rect(), (Rect{X: 5, Y: 5, W: 100, H: 30}); got != want {
		t.Errorf("a = %+v, want %+v", got, want)
	}
	if got, want := tr.Node(b).Rect(), (Rect{X: 5, Y: 35, W: 100, H: 70}); got != want {
		t.Errorf("b = %+v, want %+v", got, want)
	}
}

func TestLayoutLastChildAbsorbsRemainder(t *testing.T) {
	tr := New("root", nil, 0, WithSeed(1))
	ids := []NodeID{
		tr.AddChild(tr.Root(), "a", nil, 1),
		tr.AddChild(tr.Root(), "b", nil, 1),
		tr.AddChild(tr.Root(), "c", nil, 1),
	}
	tr.Layout(tr.Root(), Rect{W: 100, H: 10})

	wants := []int{33, 33, 34}
	for i, id := range ids {
		if got := tr.Node(id).Rect().W; got != wants[i] {
			t.Errorf("child %d width = %d, want %d", i, got, wants[i])
		}
	}
}

func TestLayoutZeroSize(t *testing.T) {
	tr := New("root", nil, 0, WithSeed(1))
	a := tr.AddChild(tr.Root(), "a", nil, 0)
	b := tr.AddChild(tr.Root(), "b", nil, 10)
	tr.Layout(tr.Root(), Rect{X: 3, Y: 4, W: 100, H: 50})

	if got := tr.Node(a).Rect(); got != (Rect{}) {
		t.Errorf("zero-size child rect = %+v, want zero", got)
	}
	if got, want := tr.Node(b).Rect(), (Rect{X: 3, Y: 4, W: 100, H: 50}); got != want {
		t.Errorf("b = %+v, want %+v", got, want)
	}

	empty := New("empty", nil, 0)
	empty.Layout(empty.Root(), Rect{X: 1, Y: 1, W: 10, H: 10})
	if got := empty.Node(empty.Root()).Rect(); got != (Rect{}) {
		t.Errorf("zero-size root rect = %+v, want zero", got)
	}
}

func TestLayoutTilesExactly(t *testing.T) {
	sizes := [][]int64{
		{1, 2, 3, 4, 5, 6, 7},
		{997, 3, 13, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	}
	rects := []Rect{
		{W: 640, H: 480},
		{X: 7, Y: 11, W: 101, H: 103},
		{W: 13, H: 999},
	}

	for _, s := range sizes {
		for _, r := range rects {
			tr := New("root", nil, 0, WithSeed(1))
			nested := tr.AddChild(tr.Root(), "nested", nil, 0)
			for i, size := range s {
				parent := tr.Root()
				if i%2 == 0 {
					parent = nested
				}
				tr.AddChild(parent, "leaf", nil, size)
			}
			tr.RecomputeSizes(tr.Root())
			tr.ExpandAll(tr.Root())
			tr.Layout(tr.Root(), r)

			assertTiles(t, tr, r)
		}
	}
}

// assertTiles checks that the display blocks cover r with no gaps or
// overlaps by comparing areas and testing every integer cell.
func assertTiles(t *testing.T, tr *Tree, r Rect) {
	t.Helper()
	blocks := tr.VisibleRectangles(tr.Root())

	area := 0
	for _, b := range blocks {
		area += b.Rect.Area()
		if b.Rect.X < r.X || b.Rect.Y < r.Y || b.Rect.X+b.Rect.W > r.X+r.W || b.Rect.Y+b.Rect.H > r.Y+r.H {
			t.Errorf("block %+v escapes %+v", b.Rect, r)
		}
	}
	if area != r.Area() {
		t.Errorf("blocks cover %d, want %d", area, r.Area())
	}

	for x := r.X; x < r.X+r.W; x++ {
		for y := r.Y; y < r.Y+r.H; y++ {
			covered := 0
			for _, b := range blocks {
				if x >= b.Rect.X && x < b.Rect.X+b.Rect.W && y >= b.Rect.Y && y < b.Rect.Y+b.Rect.H {
					covered++
				}
			}
			if covered != 1 {
				t.Fatalf("cell (%d,%d) covered %d times", x, y, covered)
			}
		}
	}
}

func TestRecomputeSizes(t *testing.T) {
	tr, a, _ := build(t)
	tr.ChangeSize(a, 1.0)

	if got := tr.Node(tr.Root()).Size(); got != 100 {
		t.Errorf("root size before recompute = %d, want 100", got)
	}
	if got := tr.RecomputeSizes(tr.Root()); got != 130 {
		t.Errorf("RecomputeSizes() = %d, want 130", got)
	}
	if got := tr.RecomputeSizes(tr.Root()); got != 130 {
		t.Errorf("RecomputeSizes() second run = %d, want 130", got)
	}
	if got := tr.RecomputeSizes(a); got != 60 {
		t.Errorf("RecomputeSizes(leaf) = %d, want 60", got)
	}
	checkInvariants(t, tr)
}
