package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/treemap/pkg/buildinfo"
	"github.com/matzehuels/treemap/pkg/render/nodelink"
	"github.com/matzehuels/treemap/pkg/render/sink"
	"github.com/matzehuels/treemap/pkg/treemap"
)

// Render generates output artifacts in the requested formats from a
// laid-out tree.
func Render(ctx context.Context, t *treemap.Tree, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	if opts.IsNodelink() {
		return renderNodelink(ctx, t, opts)
	}
	return RenderFrame(ctx, sink.NewFrame(t, t.Root()), opts)
}

// RenderFrame renders treemap outputs from a frame.
func RenderFrame(ctx context.Context, f sink.Frame, opts Options) (map[string][]byte, error) {
	svgOpts := buildSVGOptions(opts)
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(f, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(ctx, f, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
		case FormatPDF:
			data, err = sink.RenderPDF(ctx, f, sink.WithPDFSVGOptions(svgOpts...))
		case FormatJSON:
			data, err = sink.RenderJSON(f, sink.WithJSONSeed(opts.Seed), sink.WithJSONGenerator(buildinfo.Short()))
		default:
			return nil, fmt.Errorf("unsupported treemap format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// renderNodelink generates nodelink outputs from the tree's hierarchy.
func renderNodelink(ctx context.Context, t *treemap.Tree, opts Options) (map[string][]byte, error) {
	dot := nodelinkDOT(t, opts)
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data, err = nodelink.RenderSVG(ctx, dot)
		case FormatPNG:
			data, err = nodelink.RenderPNG(ctx, dot, opts.Scale)
		case FormatPDF:
			data, err = nodelink.RenderPDF(ctx, dot)
		case FormatDOT:
			data = []byte(dot)
		default:
			return nil, fmt.Errorf("unsupported nodelink format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func nodelinkDOT(t *treemap.Tree, opts Options) string {
	return nodelink.ToDOT(t, t.Root(), nodelink.Options{
		Detailed: opts.Detailed,
		MaxDepth: opts.Depth,
		Visible:  true,
	})
}

// buildSVGOptions builds SVG rendering options.
func buildSVGOptions(opts Options) []sink.SVGOption {
	var svgOpts []sink.SVGOption
	if opts.Labels {
		svgOpts = append(svgOpts, sink.WithLabels())
	}
	return svgOpts
}
