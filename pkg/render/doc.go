// Package render holds what the raster exports share: the colour palette,
// PNG encoding and the fixed export filenames.
//
// # Exports
//
// Two images are produced, both at fixed sizes regardless of content:
//
//   - [quadrant]: the 800×600 SWOT analysis, one coloured quadrant per
//     category ([SWOTFilename]).
//   - [matrix]: the 1000×800 TOWS confrontation matrix with wrapped
//     strategy text ([MatrixFilename]).
//
// Both return an [image.Image]; [EncodePNG], [WritePNG] and [SavePNG] turn
// that into bytes, a stream or a file.
//
//	img := matrix.Render(set, strategies)
//	err := render.SavePNG(filepath.Join(dir, render.MatrixFilename), img)
//
// # Geometry
//
// Matrix track sizes come from [layout], which the interactive grid uses
// as well.
//
// [quadrant]: github.com/matzehuels/swotboard/pkg/render/quadrant
// [matrix]: github.com/matzehuels/swotboard/pkg/render/matrix
// [layout]: github.com/matzehuels/swotboard/pkg/render/layout
package render
