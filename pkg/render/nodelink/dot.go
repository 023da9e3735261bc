package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/treemap/pkg/render"
	"github.com/matzehuels/treemap/pkg/treemap"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed appends each node's suffix (kind and size) to its label.
	// When false, only the name is shown.
	Detailed bool

	// MaxDepth limits how many levels below the start node are drawn.
	// Zero draws everything.
	MaxDepth int

	// Visible draws only what the display tree shows: descent stops at
	// nodes that are not expanded.
	Visible bool
}

// ToDOT converts the subtree under id to Graphviz DOT. Nodes are filled with
// their display colour and linked parent to child, in child order.
func ToDOT(t *treemap.Tree, id treemap.NodeID, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.2;\n")
	buf.WriteString("\n")

	var edges []string
	var walk func(id treemap.NodeID, depth int)
	walk = func(id treemap.NodeID, depth int) {
		n := t.Node(id)
		fmt.Fprintf(&buf, "  n%d [%s];\n", id, strings.Join(fmtAttrs(n, opts.Detailed), ", "))
		if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
			return
		}
		if opts.Visible && !n.Expanded() {
			return
		}
		for _, c := range n.Children() {
			edges = append(edges, fmt.Sprintf("  n%d -> n%d;\n", id, c))
			walk(c, depth+1)
		}
	}
	if t.Node(id) != nil {
		walk(id, 0)
	}

	buf.WriteString("\n")
	for _, e := range edges {
		buf.WriteString(e)
	}
	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n *treemap.Node, detailed bool) string {
	if !detailed {
		return n.Name()
	}
	return n.Name() + "\n" + strings.TrimSpace(n.Entity().Suffix(n))
}

func fmtAttrs(n *treemap.Node, detailed bool) []string {
	c := n.Colour()
	font := "white"
	if c.Luminance() > 0.5 {
		font = "black"
	}
	attrs := []string{
		fmt.Sprintf("label=%q", fmtLabel(n, detailed)),
		fmt.Sprintf("fillcolor=%q", c.Hex()),
		"fontcolor=" + font,
	}
	if !n.IsLeaf() && !n.Expanded() {
		attrs = append(attrs, "peripheries=2")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with one
// whose width and height match the viewBox.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// Requires rsvg-convert.
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// Requires rsvg-convert.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
