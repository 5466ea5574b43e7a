// Package layout computes the track geometry of the confrontation matrix.
//
// The matrix is a table of header tracks followed by data tracks:
//
//	col 0: section labels ("Strengths", "Weaknesses")
//	col 1: row sub-labels (S1.., W1..)
//	col 2..: one column per opportunity, then one per threat
//
//	row 0: section bands ("Opportunities", "Threats")
//	row 1: column sub-labels (O1.., T1..)
//	row 2..: one row per strength, then one per weakness
//
// [Compute] turns per-category counts and a [Frame] into pixel tracks. The
// raster export and the interactive grid both size themselves from the
// result, so they always agree on topology and proportions.
package layout

import (
	"fmt"
	"math"

	"github.com/matzehuels/swotboard/pkg/swot"
)

// Frame holds the fixed measurements the matrix is laid out against.
//
// A zero Width makes data columns fluid: they get no pixel size and the
// CSS template distributes the remaining width. A non-zero RowHeight fixes
// every data row instead of deriving it from Height.
type Frame struct {
	Width, Height float64

	Left, Top     float64
	LabelWidth    float64
	SubLabelWidth float64
	BandHeight    float64

	// SubHeaderHeight sizes row 1; zero means it matches the data rows.
	SubHeaderHeight float64
	RowHeight       float64
	MinRowHeight    float64

	// ReserveX and ReserveY are subtracted from Width/Height before the
	// remainder is split into data tracks.
	ReserveX, ReserveY float64

	TitleBaseline float64
}

// ExportFrame returns the frame of the 1000×800 matrix image.
func ExportFrame() Frame {
	return Frame{
		Width:         1000,
		Height:        800,
		Left:          20,
		Top:           60,
		LabelWidth:    80,
		SubLabelWidth: 100,
		BandHeight:    40,
		MinRowHeight:  80,
		ReserveX:      250,
		ReserveY:      180,
		TitleBaseline: 30,
	}
}

// GridFrame returns the frame of the interactive grid: fixed header
// widths, fluid data columns and fixed-height rows.
func GridFrame() Frame {
	return Frame{
		LabelWidth:      120,
		SubLabelWidth:   80,
		BandHeight:      50,
		SubHeaderHeight: 40,
		RowHeight:       60,
	}
}

// Track is one row or column: its start offset and size in pixels.
type Track struct {
	Offset, Size float64
}

// End returns the offset just past the track.
func (t Track) End() float64 { return t.Offset + t.Size }

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the midpoint of r.
func (r Rect) Center() (float64, float64) { return r.X + r.W/2, r.Y + r.H/2 }

// Matrix is the computed geometry for one set of dimensions.
type Matrix struct {
	Frame Frame
	Dims  swot.Dims
	Cols  []Track
	Rows  []Track

	ColWidth  float64
	RowHeight float64
}

// Compute lays out a matrix of dimensions d inside f.
//
// Column width is (Width-ReserveX)/(O+T); row height is RowHeight if set,
// otherwise max(MinRowHeight, (Height-ReserveY)/(S+W+2)). Tracks are
// contiguous: each starts where the previous one ends.
func Compute(d swot.Dims, f Frame) Matrix {
	m := Matrix{Frame: f, Dims: d}

	if f.Width > 0 && d.DataCols() > 0 {
		m.ColWidth = (f.Width - f.ReserveX) / float64(d.DataCols())
	}
	m.RowHeight = f.RowHeight
	if m.RowHeight == 0 {
		m.RowHeight = math.Max(f.MinRowHeight, (f.Height-f.ReserveY)/float64(d.DataRows()+swot.HeaderRows))
	}
	sub := f.SubHeaderHeight
	if sub == 0 {
		sub = m.RowHeight
	}

	m.Cols = tracks(f.Left, []float64{f.LabelWidth, f.SubLabelWidth}, d.DataCols(), m.ColWidth)
	m.Rows = tracks(f.Top, []float64{f.BandHeight, sub}, d.DataRows(), m.RowHeight)
	return m
}

func tracks(start float64, headers []float64, n int, size float64) []Track {
	out := make([]Track, 0, len(headers)+n)
	pos := start
	for _, h := range headers {
		out = append(out, Track{Offset: pos, Size: h})
		pos += h
	}
	for range n {
		out = append(out, Track{Offset: pos, Size: size})
		pos += size
	}
	return out
}

// Cell returns the rectangle of the cell at (row, col).
func (m Matrix) Cell(row, col int) Rect {
	return m.Span(row, col, 1, 1)
}

// Span returns the rectangle covering rowSpan×colSpan cells from (row, col).
func (m Matrix) Span(row, col, rowSpan, colSpan int) Rect {
	r0, r1 := m.Rows[row], m.Rows[row+rowSpan-1]
	c0, c1 := m.Cols[col], m.Cols[col+colSpan-1]
	return Rect{X: c0.Offset, Y: r0.Offset, W: c1.End() - c0.Offset, H: r1.End() - r0.Offset}
}

// Section returns the span of category c across the data tracks: the
// section band for opportunities and threats (row 0), the section label
// column for strengths and weaknesses (col 0).
func (m Matrix) Section(c swot.Category) Rect {
	n := m.Dims.Count(c)
	switch c {
	case swot.Strengths:
		return m.Span(swot.HeaderRows, 0, n, 1)
	case swot.Weaknesses:
		return m.Span(swot.HeaderRows+m.Dims.Strengths, 0, n, 1)
	case swot.Opportunities:
		return m.Span(0, swot.HeaderCols, 1, n)
	default:
		return m.Span(0, swot.HeaderCols+m.Dims.Opportunities, 1, n)
	}
}

// Right returns the x coordinate where the last column ends.
func (m Matrix) Right() float64 { return m.Cols[len(m.Cols)-1].End() }

// Bottom returns the y coordinate where the last row ends.
func (m Matrix) Bottom() float64 { return m.Rows[len(m.Rows)-1].End() }

// TemplateColumns renders the column tracks as a CSS grid-template-columns
// value. Fluid data columns become 1fr.
func (m Matrix) TemplateColumns() string {
	return fmt.Sprintf("%s %s %s %s",
		px(m.Cols[0].Size), px(m.Cols[1].Size),
		repeat(m.Dims.Opportunities, m.ColWidth), repeat(m.Dims.Threats, m.ColWidth))
}

// TemplateRows renders the row tracks as a CSS grid-template-rows value.
func (m Matrix) TemplateRows() string {
	return fmt.Sprintf("%s %s %s",
		px(m.Rows[0].Size), px(m.Rows[1].Size), repeat(m.Dims.DataRows(), m.RowHeight))
}

func px(v float64) string { return fmt.Sprintf("%gpx", v) }

func repeat(n int, size float64) string {
	if size == 0 {
		return fmt.Sprintf("repeat(%d, 1fr)", n)
	}
	return fmt.Sprintf("repeat(%d, %s)", n, px(size))
}
