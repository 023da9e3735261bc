// Package render turns treemap display trees into files.
//
// # Overview
//
// Renderers see a tree only through its display tree: the blocks returned
// by [treemap.Tree.VisibleRectangles]. The package provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Treemap output in SVG, JSON, PNG and PDF (in [sink] subpackage)
//   - Node-link diagrams of the hierarchy (in [nodelink] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg := sink.RenderSVG(frame, opts...)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage draws the hierarchy as boxes connected by
// arrows using Graphviz, which is easier to read than a treemap when sizes
// vary by orders of magnitude.
//
//	dot := nodelink.ToDOT(t, t.Root(), nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
package render
