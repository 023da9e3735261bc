// Package sink writes treemap frames to output formats.
//
// A [Frame] is the renderable snapshot of a display tree: the outer
// rectangle plus one [Block] per visible rectangle, with enough naming
// information to label and describe each block. Build one with [NewFrame]
// after laying the tree out, then pass it to a renderer:
//
//	f := sink.NewFrame(t, t.Root())
//	svg := sink.RenderSVG(f, sink.WithLabels())
//	data, err := sink.RenderJSON(f)
//	png, err := sink.RenderPNG(ctx, f, sink.WithScale(2))
//
// PNG and PDF output go through SVG and need rsvg-convert on PATH.
package sink
