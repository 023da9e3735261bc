package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treemap/pkg/config"
	"github.com/matzehuels/treemap/pkg/fstree"
	"github.com/matzehuels/treemap/pkg/pipeline"
	"github.com/matzehuels/treemap/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file path (or base path for multiple outputs)
	vizType  string // visualization type: "treemap" or "nodelink"
	formats  string // comma-separated output formats
	width    int    // frame width in pixels
	height   int    // frame height in pixels
	seed     uint64 // colour seed
	depth    int    // levels expanded below the root (0 = all)
	labels   bool   // draw block names inside the treemap
	detailed bool   // show sizes in nodelink diagrams
	scale    float64
	ignore   []string
	noCache  bool
	refresh  bool
}

// renderCommand creates the render command for writing treemaps to files.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [path]",
		Short: "Render a directory treemap to SVG, PNG, PDF or JSON",
		Long: `Render scans a directory and writes its treemap to one or more files.

The treemap type draws every visible block as a rectangle; nodelink draws the
folder hierarchy as a Graphviz diagram. PNG and PDF output require
rsvg-convert on the PATH.`,
		Example: `  treemap render ./src
  treemap render ./src -f svg,json -o out/src
  treemap render . -t nodelink --depth 2 -f svg,dot`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			popts := c.renderPipelineOptions(cmd, pathArg(args), &opts, cfg)
			return c.runRender(cmd.Context(), newPrinter(cmd.OutOrStdout()), popts, &opts, cfg)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.vizType, "type", "t", pipeline.DefaultVizType, "visualization type: treemap, nodelink")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json, dot (comma-separated)")
	cmd.Flags().IntVar(&opts.width, "width", config.DefaultWidth, "frame width")
	cmd.Flags().IntVar(&opts.height, "height", config.DefaultHeight, "frame height")
	cmd.Flags().Uint64Var(&opts.seed, "seed", pipeline.DefaultSeed, "colour seed")
	cmd.Flags().IntVar(&opts.depth, "depth", 0, "levels to expand below the root (0 expands everything)")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "draw block names (treemap)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show sizes (nodelink)")
	cmd.Flags().Float64Var(&opts.scale, "scale", 2, "PNG scale factor")
	cmd.Flags().StringSliceVar(&opts.ignore, "ignore", nil, "glob patterns of names to skip (repeatable)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")

	return cmd
}

// renderPipelineOptions merges config values and explicitly set flags.
func (c *CLI) renderPipelineOptions(cmd *cobra.Command, path string, opts *renderOpts, cfg *config.Config) pipeline.Options {
	popts := pipeline.Options{
		Path:     path,
		VizType:  opts.vizType,
		Formats:  parseFormats(opts.formats),
		Depth:    opts.depth,
		Labels:   opts.labels,
		Detailed: opts.detailed,
		Scale:    opts.scale,
		Refresh:  opts.refresh,
		Logger:   c.Logger,
	}
	applyConfig(&popts, cfg)

	flags := cmd.Flags()
	if flags.Changed("width") {
		popts.Width = opts.width
	}
	if flags.Changed("height") {
		popts.Height = opts.height
	}
	if flags.Changed("seed") {
		popts.Seed = opts.seed
	}
	popts.Ignore = append(popts.Ignore, opts.ignore...)
	return popts
}

// runRender executes the pipeline and writes one file per format.
func (c *CLI) runRender(ctx context.Context, p printer, popts pipeline.Options, opts *renderOpts, cfg *config.Config) error {
	if err := popts.Validate(); err != nil {
		return err
	}
	if popts.NeedsConverter() && !render.ConverterAvailable() {
		p.warning("rsvg-convert not found; PNG and PDF output will fail")
	}

	runner, err := c.newRunner(opts.noCache, cfg)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", popts.Path))
	spinner.Start()
	result, err := runner.Execute(ctx, popts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	paths := outputPaths(opts.output, popts.Path, popts.VizType, popts.Formats)
	for _, format := range popts.Formats {
		if err := writeFile(paths[format], result.Artifacts[format]); err != nil {
			return err
		}
	}

	p.success("Rendered %s", popts.Path)
	for _, format := range popts.Formats {
		p.file(paths[format])
	}
	p.stats(result.Stats, result.CacheInfo.RenderHit)
	p.nextStep("Explore interactively", appName+" view "+popts.Path)
	return nil
}

// outputPaths maps each format to the file it is written to. A single format
// with an explicit output uses that path verbatim; otherwise the output (or
// the scanned directory's name) is a base path that gets an extension per
// format. Node-link diagrams get a "_nodelink" suffix when the base path is
// derived.
func outputPaths(output, input, vizType string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if output != "" && len(formats) == 1 {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	if output == "" && vizType == pipeline.VizTypeNodelink {
		base += "_" + pipeline.VizTypeNodelink
	}
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

// basePath derives the base output path. Without an output the base is the
// name of the scanned directory; a known format extension on output is
// stripped.
func basePath(output, input string) string {
	if output == "" {
		name := filepath.Base(input)
		if abs, err := filepath.Abs(input); err == nil {
			name = filepath.Base(abs)
		}
		if name == string(filepath.Separator) || name == "." {
			name = appName
		}
		return name
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	if slices.Contains(pipeline.TreemapFormats, ext) || slices.Contains(pipeline.NodelinkFormats, ext) {
		return strings.TrimSuffix(output, "."+ext)
	}
	return output
}

// writeFile writes data to path, creating parent directories.
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// formatSize renders a byte count for terminal output.
func formatSize(n int64) string {
	return fstree.FormatSize(n)
}
