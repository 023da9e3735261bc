// Package nodelink draws a treemap hierarchy as a node-link diagram.
//
// Each node becomes a box filled with its display colour and linked to its
// children from left to right. Collapsed internal nodes get a double
// outline so it is clear that more lies below them.
//
// # Usage
//
//	dot := nodelink.ToDOT(t, t.Root(), nodelink.Options{Detailed: true, MaxDepth: 3})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)  // 2x scale
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
