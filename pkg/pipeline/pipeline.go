// Package pipeline provides the scan → layout → render pipeline behind the
// treemap CLI.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Scan: Walk a directory into a size-weighted tree ([fstree.Build])
//  2. Layout: Propagate sizes, subdivide the frame, assign depths and
//     colours, and expand the tree to the requested depth
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
// Only the render stage is cached: its key is a hash of the laid-out frame,
// so an unchanged directory at the same size and seed is a cache hit.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Path:    "./src",
//	    Formats: []string{"svg", "json"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	apperrors "github.com/matzehuels/treemap/pkg/errors"
	"github.com/matzehuels/treemap/pkg/render/sink"
	"github.com/matzehuels/treemap/pkg/treemap"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultWidth is the default frame width in pixels.
	DefaultWidth = 1024

	// DefaultHeight is the default frame height in pixels.
	DefaultHeight = 768

	// DefaultSeed is the default colour seed for reproducible output.
	DefaultSeed = uint64(42)
)

// Visualization types.
const (
	VizTypeTreemap  = "treemap"
	VizTypeNodelink = "nodelink"
)

// DefaultVizType is the default visualization type.
const DefaultVizType = VizTypeTreemap

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// TreemapFormats and NodelinkFormats list the supported outputs per
// visualization type.
var (
	TreemapFormats  = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON}
	NodelinkFormats = []string{FormatSVG, FormatPNG, FormatPDF, FormatDOT}
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
type Options struct {
	// Scan options
	Path           string   `json:"path"`
	Ignore         []string `json:"ignore,omitempty"`
	FollowSymlinks bool     `json:"follow_symlinks,omitempty"`

	// Layout options
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Seed   uint64 `json:"seed,omitempty"`
	// Depth is how many levels are expanded below the root. Zero expands
	// everything.
	Depth int `json:"depth,omitempty"`

	// Render options
	VizType  string   `json:"viz_type,omitempty"`
	Formats  []string `json:"formats,omitempty"`
	Labels   bool     `json:"labels,omitempty"`
	Detailed bool     `json:"detailed,omitempty"`
	Scale    float64  `json:"scale,omitempty"`
	Refresh  bool     `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Tree is the scanned, laid-out tree.
	Tree *treemap.Tree

	// Frame is the rendered display tree.
	Frame sink.Frame

	// FrameHash is the content hash used for render cache keys.
	FrameHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	BlockCount int
	TotalSize  int64
	ScanTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	return apperrors.ValidateFormat(vizType, []string{VizTypeTreemap, VizTypeNodelink})
}

// ValidateFormats checks that all formats are valid for vizType.
func ValidateFormats(vizType string, formats []string) error {
	supported := TreemapFormats
	if vizType == VizTypeNodelink {
		supported = NodelinkFormats
	}
	for _, f := range formats {
		if err := apperrors.ValidateFormat(f, supported); err != nil {
			return fmt.Errorf("%s: %w", vizType, err)
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateForScan checks the scan fields.
func (o *Options) ValidateForScan() error {
	if err := apperrors.ValidatePath(o.Path); err != nil {
		return err
	}
	for _, p := range o.Ignore {
		if err := apperrors.ValidateIgnorePattern(p); err != nil {
			return err
		}
	}
	o.setLogger()
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	o.setLogger()
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if o.Depth < 0 {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "depth cannot be negative")
	}
	return apperrors.ValidateDimensions(o.Width, o.Height)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = 2
	}
	o.setLogger()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	return ValidateFormats(o.VizType, o.Formats)
}

// Validate runs every stage's validation.
func (o *Options) Validate() error {
	if err := o.ValidateForScan(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	return o.ValidateForRender()
}

// IsNodelink returns true if this is a nodelink visualization.
func (o *Options) IsNodelink() bool {
	return o.VizType == VizTypeNodelink
}

// NeedsConverter reports whether any requested format goes through
// rsvg-convert.
func (o *Options) NeedsConverter() bool {
	return slices.Contains(o.Formats, FormatPNG) || slices.Contains(o.Formats, FormatPDF)
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}
