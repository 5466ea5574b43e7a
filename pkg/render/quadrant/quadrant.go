// Package quadrant renders the SWOT analysis as a 2×2 raster image.
//
// Each quadrant shows its category title, a large initial and as many
// labeled items as fit below them:
//
//	+-------------+-------------+
//	| STRENGTHS   | WEAKNESSES  |
//	|     S       |     W       |
//	| S1: ...     | W1: ...     |
//	+-------------+-------------+
//	| OPPORTUNI.. | THREATS     |
//	|     O       |     T       |
//	| O1: ...     | T1: ...     |
//	+-------------+-------------+
//
// The image is always [Width]×[Height]; items that do not fit are dropped
// without a "more" marker.
package quadrant

import (
	"image"
	"math"
	"strings"

	"github.com/fogleman/gg"

	"github.com/matzehuels/swotboard/pkg/fonts"
	"github.com/matzehuels/swotboard/pkg/render"
	"github.com/matzehuels/swotboard/pkg/swot"
	"github.com/matzehuels/swotboard/pkg/textwrap"
)

// Image size.
const (
	Width  = 800
	Height = 600
)

const (
	titleSize  = 36
	letterSize = 80
	itemSize   = 16

	titleOffset   = 50
	letterOffset  = 130
	itemsOffset   = 160
	itemsReserve  = 170
	itemPadding   = 20
	itemPitch     = 25
	lineHeight    = 20
	itemGap       = 5
	bottomPadding = 20

	crossWidth = 4
)

// Line is one line of item text positioned at its left baseline.
type Line struct {
	Text string
	X, Y float64
}

// MaxItems returns how many items a quadrant of height h shows at most.
func MaxItems(h float64) int {
	return max(0, int(math.Floor((h-itemsReserve)/itemPitch)))
}

// Lines lays out items inside the quadrant at (x, y, w, h).
//
// Each item is wrapped to w-40. Lines advance a cursor by 20 with an extra
// 5 between items, so wrapped items never overlap the next one. Only the
// first [MaxItems] items are considered and any line whose baseline falls
// at or below y+h-20 is dropped.
func Lines(items []swot.Item, x, y, w, h float64, measure textwrap.MeasureFunc) []Line {
	items = items[:min(len(items), MaxItems(h))]
	limit := y + h - bottomPadding

	var out []Line
	cursor := y + itemsOffset
	for i, it := range items {
		if i > 0 {
			cursor += itemGap
		}
		for _, text := range textwrap.Wrap(it.String(), w-2*itemPadding, measure) {
			if cursor >= limit {
				return out
			}
			out = append(out, Line{Text: text, X: x + itemPadding, Y: cursor})
			cursor += lineHeight
		}
	}
	return out
}

// Render draws the SWOT analysis of s.
func Render(s swot.Set) image.Image {
	dc := gg.NewContext(Width, Height)
	hw, hh := float64(Width)/2, float64(Height)/2

	drawQuadrant(dc, swot.Strengths, s.Strengths, 0, 0, hw, hh)
	drawQuadrant(dc, swot.Weaknesses, s.Weaknesses, hw, 0, hw, hh)
	drawQuadrant(dc, swot.Opportunities, s.Opportunities, 0, hh, hw, hh)
	drawQuadrant(dc, swot.Threats, s.Threats, hw, hh, hw, hh)

	dc.SetHexColor(render.ColorWhite)
	dc.SetLineWidth(crossWidth)
	dc.DrawLine(hw, 0, hw, Height)
	dc.DrawLine(0, hh, Width, hh)
	dc.Stroke()

	return dc.Image()
}

func drawQuadrant(dc *gg.Context, c swot.Category, items []swot.Item, x, y, w, h float64) {
	dc.SetHexColor(render.QuadrantColor(c))
	dc.DrawRectangle(x, y, w, h)
	dc.Fill()

	title := strings.ToUpper(c.Title())
	dc.SetHexColor(render.ColorWhite)

	dc.SetFontFace(fonts.Face(fonts.Bold, titleSize))
	dc.DrawStringAnchored(title, x+w/2, y+titleOffset, 0.5, 0)

	dc.SetFontFace(fonts.Face(fonts.Bold, letterSize))
	dc.DrawStringAnchored(title[:1], x+w/2, y+letterOffset, 0.5, 0)

	dc.SetFontFace(fonts.Face(fonts.Regular, itemSize))
	for _, l := range Lines(items, x, y, w, h, measurer(dc)) {
		dc.DrawString(l.Text, l.X, l.Y)
	}
}

func measurer(dc *gg.Context) textwrap.MeasureFunc {
	return func(s string) float64 {
		w, _ := dc.MeasureString(s)
		return w
	}
}
