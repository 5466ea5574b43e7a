// Package matrix renders the TOWS confrontation matrix as a raster image.
//
// The image pairs every strength and weakness (rows) with every opportunity
// and threat (columns). Each intersection is a strategy cell coloured by its
// quadrant and filled with the wrapped strategy text, if any:
//
//	               | Opportunities | Threats |
//	               | O1  O2  ...   | T1 ...  |
//	Strengths  S1  | SO  SO        | ST      |
//	Weaknesses W1  | WO  WO        | WT      |
//
// Track sizes come from [layout.Compute] with [layout.ExportFrame]; the
// image is always [Width]×[Height] and rows that overflow it are clipped.
package matrix

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/matzehuels/swotboard/pkg/fonts"
	"github.com/matzehuels/swotboard/pkg/render"
	"github.com/matzehuels/swotboard/pkg/render/layout"
	"github.com/matzehuels/swotboard/pkg/swot"
	"github.com/matzehuels/swotboard/pkg/textwrap"
)

// Image size.
const (
	Width  = 1000
	Height = 800
)

// Title is drawn centered above the matrix.
const Title = "Confrontation Matrix (TOWS)"

const (
	titleSize  = 24
	bandSize   = 16
	labelSize  = 14
	strategySz = 9

	// bandBaseline is measured from the band top; labels sit 5px below
	// the cell center.
	bandBaseline = 25
	labelDrop    = 5

	textInset    = 8
	textBaseline = 20
	textLeading  = 11
	maxTextLines = 5
)

// Render draws the confrontation matrix for s with the strategy texts in st.
// Keys outside the dimensions of s are ignored.
func Render(s swot.Set, st swot.Strategies) image.Image {
	m := layout.Compute(swot.DimsFor(s), layout.ExportFrame())

	dc := gg.NewContext(Width, Height)
	dc.SetHexColor(render.ColorWhite)
	dc.Clear()

	dc.SetHexColor(render.ColorInk)
	dc.SetFontFace(fonts.Face(fonts.Bold, titleSize))
	dc.DrawStringAnchored(Title, Width/2, m.Frame.TitleBaseline, 0.5, 0)

	drawBands(dc, m)
	drawColumnLabels(dc, m)
	drawRows(dc, m, st)

	// Strength/weakness divider across the full table width.
	y := m.Rows[swot.HeaderRows+m.Dims.Strengths].Offset
	dc.SetHexColor(render.ColorInk)
	dc.SetLineWidth(1)
	dc.DrawLine(m.Frame.Left, y, m.Right(), y)
	dc.Stroke()

	return dc.Image()
}

func drawBands(dc *gg.Context, m layout.Matrix) {
	dc.SetFontFace(fonts.Face(fonts.Bold, bandSize))
	for _, c := range []swot.Category{swot.Opportunities, swot.Threats} {
		r := m.Section(c)
		fillRect(dc, r, render.ColorBand)
		dc.SetHexColor(render.ColorWhite)
		dc.DrawStringAnchored(c.Title(), r.X+r.W/2, r.Y+bandBaseline, 0.5, 0)
	}
}

func drawColumnLabels(dc *gg.Context, m layout.Matrix) {
	dc.SetFontFace(fonts.Face(fonts.Bold, labelSize))
	for _, c := range []swot.Category{swot.Opportunities, swot.Threats} {
		for i := 1; i <= m.Dims.Count(c); i++ {
			l := swot.Label{Category: c, Index: i}
			r := m.Cell(1, m.Dims.ColIndex(l))
			labelCell(dc, r, render.SubHeaderColor(c), l.String())
		}
	}
}

func drawRows(dc *gg.Context, m layout.Matrix, st swot.Strategies) {
	label := fonts.Face(fonts.Bold, labelSize)
	text := fonts.Face(fonts.Regular, strategySz)

	for _, row := range []swot.Category{swot.Strengths, swot.Weaknesses} {
		dc.SetFontFace(label)
		sec := m.Section(row)
		fillRect(dc, sec, render.ColorBand)
		cx, cy := sec.Center()
		dc.SetHexColor(render.ColorWhite)
		dc.DrawStringAnchored(row.Title(), cx, cy+labelDrop, 0.5, 0)

		for i := 1; i <= m.Dims.Count(row); i++ {
			rl := swot.Label{Category: row, Index: i}
			ri := m.Dims.RowIndex(rl)

			dc.SetFontFace(label)
			labelCell(dc, m.Cell(ri, 1), render.SubHeaderColor(row), rl.String())

			dc.SetFontFace(text)
			for _, col := range []swot.Category{swot.Opportunities, swot.Threats} {
				for j := 1; j <= m.Dims.Count(col); j++ {
					k := swot.Key{Row: rl, Col: swot.Label{Category: col, Index: j}}
					strategyCell(dc, m.Cell(ri, m.Dims.ColIndex(k.Col)), k.Quadrant(), st.Get(k))
				}
			}
		}
	}
}

func labelCell(dc *gg.Context, r layout.Rect, fill, text string) {
	fillRect(dc, r, fill)
	strokeRect(dc, r)
	cx, cy := r.Center()
	dc.SetHexColor(render.ColorWhite)
	dc.DrawStringAnchored(text, cx, cy+labelDrop, 0.5, 0)
}

func strategyCell(dc *gg.Context, r layout.Rect, q swot.Quadrant, text string) {
	fill, ink := render.StrategyColors(q)
	fillRect(dc, r, fill)
	strokeRect(dc, r)
	if text == "" {
		return
	}
	dc.SetHexColor(ink)
	for i, line := range StrategyLines(text, r.W, measurer(dc)) {
		dc.DrawString(line, r.X+textInset, r.Y+textBaseline+float64(i*textLeading))
	}
}

// StrategyLines wraps strategy text for a cell of width w: inset on both
// sides and capped at five lines.
func StrategyLines(text string, w float64, measure textwrap.MeasureFunc) []string {
	return textwrap.WrapLimit(text, w-2*textInset, measure, maxTextLines)
}

func fillRect(dc *gg.Context, r layout.Rect, hex string) {
	dc.SetHexColor(hex)
	dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	dc.Fill()
}

func strokeRect(dc *gg.Context, r layout.Rect) {
	dc.SetHexColor(render.ColorInk)
	dc.SetLineWidth(1)
	dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	dc.Stroke()
}

func measurer(dc *gg.Context) textwrap.MeasureFunc {
	return func(s string) float64 {
		w, _ := dc.MeasureString(s)
		return w
	}
}
