package matrix

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/matzehuels/swotboard/pkg/render/layout"
	"github.com/matzehuels/swotboard/pkg/swot"
	"github.com/matzehuels/swotboard/pkg/textwrap"
)

func charWidth(s string) float64 { return float64(len(s)) }

func mustParse(t *testing.T, s, w, o, th []string) swot.Set {
	t.Helper()
	set, err := swot.Parse(swot.InputFromLists(s, w, o, th))
	if err != nil {
		t.Fatal(err)
	}
	return set
}

func rgba(img image.Image, x, y float64) color.RGBA {
	return color.RGBAModel.Convert(img.At(int(x), int(y))).(color.RGBA)
}

func TestRenderSize(t *testing.T) {
	many := make([]string, 12)
	for i := range many {
		many[i] = "item"
	}
	sets := []swot.Set{
		{},
		mustParse(t, []string{"a"}, nil, nil, nil),
		mustParse(t, many, many, many, many),
	}
	for i, s := range sets {
		b := Render(s, swot.NewStrategies()).Bounds()
		if b.Dx() != Width || b.Dy() != Height {
			t.Errorf("set %d: size = %dx%d, want %dx%d", i, b.Dx(), b.Dy(), Width, Height)
		}
	}
}

func TestRenderQuadrantFills(t *testing.T) {
	s := mustParse(t, []string{"a"}, []string{"b"}, []string{"c"}, []string{"d"})
	img := Render(s, swot.NewStrategies())
	m := layout.Compute(swot.DimsFor(s), layout.ExportFrame())

	tests := []struct {
		key  string
		want color.RGBA
	}{
		{"S1-O1", color.RGBA{0xff, 0xeb, 0x3b, 0xff}},
		{"S1-T1", color.RGBA{0x21, 0x96, 0xf3, 0xff}},
		{"W1-O1", color.RGBA{0x8b, 0xc3, 0x4a, 0xff}},
		{"W1-T1", color.RGBA{0xf4, 0x43, 0x36, 0xff}},
	}
	for _, tt := range tests {
		k, err := swot.ParseKey(tt.key)
		if err != nil {
			t.Fatal(err)
		}
		r := m.Cell(m.Dims.RowIndex(k.Row), m.Dims.ColIndex(k.Col))
		// Bottom-right corner stays clear of borders and text.
		if got := rgba(img, r.X+r.W-5, r.Y+r.H-5); got != tt.want {
			t.Errorf("%s fill = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestRenderDrawsStrategyText(t *testing.T) {
	s := mustParse(t, []string{"a"}, []string{"b"}, []string{"c"}, []string{"d"})
	m := layout.Compute(swot.DimsFor(s), layout.ExportFrame())
	r := m.Cell(m.Dims.RowIndex(swot.Label{Category: swot.Strengths, Index: 1}), 2)

	st := swot.NewStrategies()
	blank := Render(s, st)
	st.Set(swot.NewKey(swot.Strengths, 1, swot.Opportunities, 1), "Expand via partnership")
	filled := Render(s, st)

	diff := 0
	for y := int(r.Y) + 5; y < int(r.Y)+30; y++ {
		for x := int(r.X) + 8; x < int(r.X)+120; x++ {
			if blank.At(x, y) != filled.At(x, y) {
				diff++
			}
		}
	}
	if diff == 0 {
		t.Error("strategy text left no pixels in its cell")
	}
}

func TestStrategyLines(t *testing.T) {
	long := strings.Repeat("abc ", 40)
	lines := StrategyLines(long, 36, charWidth)
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5", len(lines))
	}
	if !strings.HasSuffix(lines[4], textwrap.Ellipsis) {
		t.Errorf("last line %q should end with an ellipsis", lines[4])
	}
	for _, l := range lines {
		if charWidth(l) > 20 {
			t.Errorf("line %q wider than 20", l)
		}
	}
}
