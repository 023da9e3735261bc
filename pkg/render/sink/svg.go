package sink

import (
	"bytes"
	"fmt"
	"html"

	"github.com/matzehuels/treemap/pkg/treemap"
)

const blockInteractionCSS = `
    .block { transition: stroke-width 0.15s ease; }
    .block:hover { stroke-width: 3; }
    .block-text { pointer-events: none; font-family: monospace; }`

// Label sizing, in pixels.
const (
	labelFontSize = 11
	labelPadding  = 4
	labelCharW    = 7
	minLabelH     = labelFontSize + 2*labelPadding
)

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	labels     bool
	stroke     float64
	background string
}

// WithLabels draws each block's name where it fits.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// WithStroke sets the outline width; zero disables outlines.
func WithStroke(w float64) SVGOption { return func(r *svgRenderer) { r.stroke = w } }

// WithBackground fills the frame behind the blocks.
func WithBackground(c treemap.Colour) SVGOption {
	return func(r *svgRenderer) { r.background = c.Hex() }
}

// RenderSVG draws every block as a filled rectangle with a hover title of
// its path and suffix.
func RenderSVG(f Frame, opts ...SVGOption) []byte {
	r := svgRenderer{stroke: 1}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		f.Width, f.Height, f.Width, f.Height)
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", blockInteractionCSS)
	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect width="%d" height="%d" fill="%s"/>`+"\n", f.Width, f.Height, r.background)
	}

	for _, b := range f.Blocks {
		r.renderBlock(&buf, b)
	}
	if r.labels {
		for _, b := range f.Blocks {
			renderLabel(&buf, b)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) renderBlock(buf *bytes.Buffer, b Block) {
	stroke := ""
	if r.stroke > 0 {
		stroke = fmt.Sprintf(` stroke="#000000" stroke-width="%.1f"`, r.stroke)
	}
	fmt.Fprintf(buf, `  <rect id="block-%d" class="block" x="%d" y="%d" width="%d" height="%d" fill="%s"%s>`,
		b.ID, b.X, b.Y, b.W, b.H, b.Colour.Hex(), stroke)
	fmt.Fprintf(buf, "<title>%s</title></rect>\n", html.EscapeString(b.Path+b.Suffix))
}

func renderLabel(buf *bytes.Buffer, b Block) {
	if b.H < minLabelH {
		return
	}
	text := fitLabel(b.Name, (b.W-2*labelPadding)/labelCharW)
	if text == "" {
		return
	}
	fmt.Fprintf(buf, `  <text class="block-text" x="%d" y="%d" font-size="%d" fill="%s">%s</text>`+"\n",
		b.X+labelPadding, b.Y+labelPadding+labelFontSize, labelFontSize,
		textColour(b.Colour), html.EscapeString(text))
}

// fitLabel shortens name to at most maxRunes, marking the cut with "..".
// Names that cannot keep at least one rune before the marker are dropped.
func fitLabel(name string, maxRunes int) string {
	r := []rune(name)
	if len(r) <= maxRunes {
		return name
	}
	if maxRunes < 3 {
		return ""
	}
	return string(r[:maxRunes-2]) + ".."
}

func textColour(c treemap.Colour) string {
	if c.Luminance() > 0.5 {
		return "#000000"
	}
	return "#ffffff"
}
