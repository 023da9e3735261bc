package nodelink

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/treemap/pkg/treemap"
)

func sample() (*treemap.Tree, treemap.NodeID) {
	tr := treemap.New("root", nil, 0, treemap.WithSeed(4))
	dir := tr.AddChild(tr.Root(), "dir", nil, 0)
	tr.AddChild(dir, "x", nil, 10)
	tr.AddChild(tr.Root(), "y", nil, 5)
	tr.RecomputeSizes(tr.Root())
	return tr, dir
}

func TestToDOT_Basic(t *testing.T) {
	tr, dir := sample()
	dot := ToDOT(tr, tr.Root(), Options{})

	if !strings.Contains(dot, "digraph G") {
		t.Error("ToDOT() output missing digraph declaration")
	}
	for _, want := range []string{`label="root"`, `label="dir"`, `label="x"`, `label="y"`} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %s", want)
		}
	}
	if !strings.Contains(dot, "n0 -> n1;") {
		t.Error("ToDOT() output missing root -> dir edge")
	}
	if !strings.Contains(dot, tr.Node(dir).Colour().Hex()) {
		t.Error("ToDOT() output missing fill colour")
	}
}

func TestToDOT_Detailed(t *testing.T) {
	tr, _ := sample()
	dot := ToDOT(tr, tr.Root(), Options{Detailed: true})

	if !strings.Contains(dot, `label="root\n(15)"`) {
		t.Errorf("ToDOT() detailed output missing suffix:\n%s", dot)
	}
}

func TestToDOT_MaxDepth(t *testing.T) {
	tr, _ := sample()
	dot := ToDOT(tr, tr.Root(), Options{MaxDepth: 1})

	if strings.Contains(dot, `label="x"`) {
		t.Error("ToDOT() should stop at depth 1")
	}
	if strings.Count(dot, "->") != 2 {
		t.Errorf("ToDOT() edges = %d, want 2", strings.Count(dot, "->"))
	}
}

func TestToDOT_Visible(t *testing.T) {
	tr, _ := sample()
	tr.Expand(tr.Root())
	dot := ToDOT(tr, tr.Root(), Options{Visible: true})

	if strings.Contains(dot, `label="x"`) {
		t.Error("collapsed dir should hide its children")
	}
	if !strings.Contains(dot, "peripheries=2") {
		t.Error("collapsed internal node should be double outlined")
	}
}

func TestToDOT_UnknownNode(t *testing.T) {
	tr, _ := sample()
	dot := ToDOT(tr, 42, Options{})
	if strings.Contains(dot, "label=") {
		t.Error("unknown start node should produce an empty graph")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="44pt" viewBox="0.00 0.00 62.00 44.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 62.00 44.00" width="62" height="44">`
	if !strings.HasPrefix(out, want) {
		t.Errorf("normalizeViewBox() = %s", out)
	}

	plain := []byte(`<svg><g/></svg>`)
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Error("normalizeViewBox() should leave SVG without viewBox untouched")
	}
}

func TestRenderSVG(t *testing.T) {
	tr, _ := sample()
	svg, err := RenderSVG(context.Background(), ToDOT(tr, tr.Root(), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output is not SVG")
	}
}
