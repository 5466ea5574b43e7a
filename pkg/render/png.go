package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// Export filenames used for downloads and file output.
const (
	SWOTFilename   = "swot-analysis.png"
	MatrixFilename = "confrontation-matrix.png"
)

// PNGOption configures PNG encoding.
type PNGOption func(*png.Encoder)

// WithCompression sets the zlib compression level (default: png.DefaultCompression).
func WithCompression(level png.CompressionLevel) PNGOption {
	return func(e *png.Encoder) { e.CompressionLevel = level }
}

func encoder(opts []PNGOption) *png.Encoder {
	e := &png.Encoder{CompressionLevel: png.DefaultCompression}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WritePNG encodes img as PNG to w.
func WritePNG(w io.Writer, img image.Image, opts ...PNGOption) error {
	if err := encoder(opts).Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// EncodePNG returns img encoded as PNG.
func EncodePNG(img image.Image, opts ...PNGOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, img, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SavePNG writes img to path as PNG, replacing any existing file.
func SavePNG(path string, img image.Image, opts ...PNGOption) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WritePNG(f, img, opts...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
