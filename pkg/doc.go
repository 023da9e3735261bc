// Package pkg provides the libraries behind the treemap CLI.
//
// # Overview
//
// A treemap shows a hierarchy as nested rectangles: every node occupies a
// rectangle whose area is proportional to its aggregate size, split among its
// children by slice-and-dice. The pkg directory is organized into:
//
//  1. [treemap] - The engine (tree arena, sizes, layout, hit testing,
//     colours, expand/collapse, structural edits)
//  2. [fstree] - Filesystem trees: directory walking, path entities, the
//     factory that rebuilds a path for move and duplicate
//  3. [render] - Outputs (SVG, JSON, PNG, PDF, Graphviz node-link)
//  4. [pipeline] - Orchestration (scan → layout → render) with caching
//  5. [cache], [config], [errors], [observability], [buildinfo] - Infrastructure
//
// # Architecture
//
//	Directory on disk
//	         ↓
//	    [fstree] package (walk into a size-weighted tree)
//	         ↓
//	    [treemap] package (sizes + layout + display state)
//	         ↓
//	    [render/sink] / [render/nodelink] (visible blocks → files)
//	         ↓
//	    SVG/PNG/PDF/JSON/DOT output
//
// # Quick Start
//
//	t, _ := fstree.Build(ctx, "./src", fstree.Options{Seed: 42})
//	t.RecomputeSizes(t.Root())
//	t.Layout(t.Root(), treemap.Rect{W: 1024, H: 768})
//	t.RefreshDisplayMetadata(t.Root())
//	t.ExpandAll(t.Root())
//
//	svg := sink.RenderSVG(sink.NewFrame(t, t.Root()), sink.WithLabels())
//
// Or let the pipeline do it, with the render stage cached:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	result, _ := runner.Execute(ctx, pipeline.Options{Path: "./src", Formats: []string{"svg"}})
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/treemap/...  # The engine only
//	go test -run Example       # Examples only
//
// [treemap]: https://pkg.go.dev/github.com/matzehuels/treemap/pkg/treemap
// [fstree]: https://pkg.go.dev/github.com/matzehuels/treemap/pkg/fstree
// [render]: https://pkg.go.dev/github.com/matzehuels/treemap/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/treemap/pkg/render/sink
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/treemap/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/treemap/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/treemap/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/treemap/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/treemap/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/treemap/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/treemap/pkg/buildinfo
package pkg
