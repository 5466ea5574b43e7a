// Package pkg provides the libraries behind swotboard.
//
// # Overview
//
// Swotboard turns four free-form lists into a SWOT analysis and a TOWS
// confrontation matrix, lets the user annotate every pairing of the matrix,
// and exports both as PNG images. The pkg directory is organized as:
//
//  1. [swot] - Data model (items, categories, strategy keys, dimensions)
//  2. [grid] - Cell layout of the confrontation matrix
//  3. [workspace] - The current analysis and its edit operations
//  4. [render] - Raster exports ([render/quadrant], [render/matrix])
//  5. [io] - JSON and TOML documents
//  6. [pipeline] - Cached export orchestration
//
// # Architecture
//
// The typical data flow:
//
//	Four lists (page form, document, CLI flags)
//	         ↓
//	    [swot] package (parse items, assign labels)
//	         ↓
//	    [workspace] package (generate, edit, clear, rebuild)
//	         ↓
//	    [grid] package (cells with spans, tooltips, keys)
//	         ↓
//	    [pipeline] package (render, cache, write)
//	         ↓
//	    swot-analysis.png, confrontation-matrix.png
//
// # Quick Start
//
//	ws := workspace.New()
//	if err := ws.Generate(ctx, swot.Input{
//	    Strengths:     "Strong brand\nLoyal customers",
//	    Opportunities: "New markets",
//	}); err != nil {
//	    return err
//	}
//	_ = ws.Edit(ctx, "S1-O1", "Launch under the existing brand")
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	res, err := runner.Export(ctx, pipeline.Request{Workspace: ws})
//	if err != nil {
//	    return err
//	}
//	_, err = pipeline.WriteFiles("out", res.Artifacts)
//
// # Supporting Packages
//
// [cache] memoizes rendered images by content hash, [observability] carries
// the hook interfaces the CLI logs through, [errors] defines the coded
// errors every package returns, and [fonts], [textwrap] handle text
// measurement for the exports.
//
// [swot]: https://pkg.go.dev/github.com/matzehuels/swotboard/pkg/swot
// [grid]: https://pkg.go.dev/github.com/matzehuels/swotboard/pkg/grid
// [workspace]: https://pkg.go.dev/github.com/matzehuels/swotboard/pkg/workspace
// [render]: https://pkg.go.dev/github.com/matzehuels/swotboard/pkg/render
// [render/quadrant]: https://pkg.go.dev/github.com/matzehuels/swotboard/pkg/render/quadrant
// [render/matrix]: https://pkg.go.dev/github.com/matzehuels/swotboard/pkg/render/matrix
// [io]: https://pkg.go.dev/github.com/matzehuels/swotboard/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/swotboard/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/swotboard/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/swotboard/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/swotboard/pkg/errors
// [fonts]: https://pkg.go.dev/github.com/matzehuels/swotboard/pkg/fonts
// [textwrap]: https://pkg.go.dev/github.com/matzehuels/swotboard/pkg/textwrap
package pkg
