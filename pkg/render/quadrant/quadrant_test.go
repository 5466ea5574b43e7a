package quadrant

import (
	"fmt"
	"image/color"
	"strings"
	"testing"

	"github.com/matzehuels/swotboard/pkg/swot"
)

func charWidth(s string) float64 { return float64(len(s)) }

func items(c swot.Category, texts ...string) []swot.Item {
	return swot.ParseList(strings.Join(texts, "\n"), c)
}

func TestMaxItems(t *testing.T) {
	tests := []struct {
		h    float64
		want int
	}{
		{300, 5},
		{194, 0},
		{195, 1},
		{100, 0},
	}
	for _, tt := range tests {
		if got := MaxItems(tt.h); got != tt.want {
			t.Errorf("MaxItems(%v) = %d, want %d", tt.h, got, tt.want)
		}
	}
}

func TestLinesCapsItems(t *testing.T) {
	var texts []string
	for i := range 8 {
		texts = append(texts, fmt.Sprintf("i%d", i))
	}
	lines := Lines(items(swot.Strengths, texts...), 0, 0, 400, 300, charWidth)
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5", len(lines))
	}
	if lines[0].Text != "S1: i0" || lines[0].X != 20 || lines[0].Y != 160 {
		t.Errorf("first line = %+v", lines[0])
	}
	if lines[1].Y != 185 {
		t.Errorf("second item baseline = %v, want 185", lines[1].Y)
	}
}

func TestLinesWrappedItemsDoNotOverlap(t *testing.T) {
	// Width 400 leaves 360 per line; charWidth makes the first item wrap.
	long := strings.Repeat("word ", 100)
	lines := Lines(items(swot.Weaknesses, long, "next"), 400, 0, 400, 300, charWidth)
	for i := 1; i < len(lines); i++ {
		if lines[i].Y <= lines[i-1].Y {
			t.Fatalf("line %d at %v does not advance past %v", i, lines[i].Y, lines[i-1].Y)
		}
	}
	for _, l := range lines {
		if l.Y >= 280 {
			t.Errorf("line %q drawn at %v, limit is 280", l.Text, l.Y)
		}
		if l.X != 420 {
			t.Errorf("line X = %v, want 420", l.X)
		}
	}
}

func TestLinesEmpty(t *testing.T) {
	if got := Lines(nil, 0, 0, 400, 300, charWidth); len(got) != 0 {
		t.Errorf("Lines(nil) = %v", got)
	}
}

func TestRenderSize(t *testing.T) {
	sets := []swot.Set{
		{},
		{Strengths: items(swot.Strengths, "Strong brand", "Loyal customers")},
		{
			Strengths:     items(swot.Strengths, strings.Repeat("long text ", 80)),
			Weaknesses:    items(swot.Weaknesses, "a", "b", "c", "d", "e", "f", "g"),
			Opportunities: items(swot.Opportunities, "x"),
			Threats:       items(swot.Threats, "y"),
		},
	}
	for i, s := range sets {
		b := Render(s).Bounds()
		if b.Dx() != Width || b.Dy() != Height {
			t.Errorf("set %d: size = %dx%d, want %dx%d", i, b.Dx(), b.Dy(), Width, Height)
		}
	}
}

func TestRenderQuadrantColors(t *testing.T) {
	img := Render(swot.Set{})
	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{5, 295, color.RGBA{0x21, 0x96, 0xF3, 0xff}},
		{795, 295, color.RGBA{0xFF, 0x98, 0x00, 0xff}},
		{5, 595, color.RGBA{0x4C, 0xAF, 0x50, 0xff}},
		{795, 595, color.RGBA{0x67, 0x3A, 0xB7, 0xff}},
		{400, 150, color.RGBA{0xff, 0xff, 0xff, 0xff}},
	}
	for _, tt := range tests {
		got := color.RGBAModel.Convert(img.At(tt.x, tt.y)).(color.RGBA)
		if got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
