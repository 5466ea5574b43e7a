package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/swotboard/pkg/swot"
)

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	return img
}

func TestEncodePNG(t *testing.T) {
	data, err := EncodePNG(testImage(), WithCompression(png.BestSpeed))
	if err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 4 || cfg.Height != 3 {
		t.Errorf("size = %dx%d, want 4x3", cfg.Width, cfg.Height)
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), MatrixFilename)
	if err := SavePNG(path, testImage()); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode saved file: %v", err)
	}
	if r, _, _, _ := img.At(1, 1).RGBA(); r != 0xffff {
		t.Errorf("pixel (1,1) red = %#x, want 0xffff", r)
	}
}

func TestSavePNGBadDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", SWOTFilename)
	if err := SavePNG(path, testImage()); err == nil {
		t.Error("SavePNG() into a missing directory should fail")
	}
}

func TestStrategyColors(t *testing.T) {
	fill, text := StrategyColors(swot.QuadrantSO)
	if fill != ColorSO || text != ColorInk {
		t.Errorf("SO = %s/%s", fill, text)
	}
	for _, q := range []swot.Quadrant{swot.QuadrantST, swot.QuadrantWO, swot.QuadrantWT} {
		if _, text := StrategyColors(q); text != ColorWhite {
			t.Errorf("%s text = %s, want white", q, text)
		}
	}
	if SubHeaderColor(swot.Threats) == QuadrantColor(swot.Threats) {
		t.Error("threat sub-headers should not reuse the quadrant colour")
	}
}
