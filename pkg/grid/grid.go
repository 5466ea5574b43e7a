// Package grid builds the interactive confrontation matrix.
//
// A [Grid] is a flat list of cells in row-major order, each with its
// position, span and presentation data. Front ends (the web page and the
// terminal editor) render it as-is; the only mutation is [Grid.Edit], which
// writes straight into the shared [swot.Strategies] mapping so the raster
// export always sees the latest text.
//
// A grid is never patched after a change in dimensions: callers build a new
// one with [Build] and drop the old one.
package grid

import (
	"fmt"

	"github.com/matzehuels/swotboard/pkg/errors"
	"github.com/matzehuels/swotboard/pkg/render/layout"
	"github.com/matzehuels/swotboard/pkg/swot"
)

// Kind classifies grid cells.
type Kind int

const (
	// Blank fills the top-left corner.
	Blank Kind = iota
	// Section spans all tracks of a category ("Opportunities", "Strengths").
	Section
	// Label is a per-index sub-header (O1, S2) with the item as tooltip.
	Label
	// Strategy is an editable cell for one row/column pairing.
	Strategy
)

func (k Kind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Section:
		return "section"
	case Label:
		return "label"
	case Strategy:
		return "strategy"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Cell is one element of the grid.
type Cell struct {
	Row, Col         int
	RowSpan, ColSpan int
	Kind             Kind

	Text    string
	Tooltip string

	// Category is set for Section and Label cells.
	Category swot.Category
	// Key and Quadrant are set for Strategy cells.
	Key      swot.Key
	Quadrant swot.Quadrant
}

// Editable reports whether the cell accepts strategy text.
func (c Cell) Editable() bool { return c.Kind == Strategy }

// Covers reports whether the cell occupies grid position (row, col).
func (c Cell) Covers(row, col int) bool {
	return row >= c.Row && row < c.Row+c.RowSpan && col >= c.Col && col < c.Col+c.ColSpan
}

// Grid is the built matrix.
type Grid struct {
	Dims   swot.Dims
	Layout layout.Matrix
	Cells  []Cell

	strategies swot.Strategies
	index      map[swot.Key]int
}

// Build creates the grid for s, pre-filling strategy cells from st. The
// grid keeps st and writes edits into it.
func Build(s swot.Set, st swot.Strategies) *Grid {
	d := swot.DimsFor(s)
	g := &Grid{
		Dims:       d,
		Layout:     layout.Compute(d, layout.GridFrame()),
		Cells:      make([]Cell, 0, d.Rows()*d.Cols()),
		strategies: st,
		index:      make(map[swot.Key]int, d.DataRows()*d.DataCols()),
	}

	// Row 0: corner and section bands.
	g.add(Cell{Row: 0, Col: 0, Kind: Blank})
	g.add(Cell{Row: 0, Col: 1, Kind: Blank})
	for _, c := range []swot.Category{swot.Opportunities, swot.Threats} {
		first := d.ColIndex(swot.Label{Category: c, Index: 1})
		g.add(Cell{Row: 0, Col: first, ColSpan: d.Count(c), Kind: Section, Text: c.Title(), Category: c})
	}

	// Row 1: column labels.
	g.add(Cell{Row: 1, Col: 0, Kind: Blank})
	g.add(Cell{Row: 1, Col: 1, Kind: Blank})
	for _, c := range []swot.Category{swot.Opportunities, swot.Threats} {
		for i := 1; i <= d.Count(c); i++ {
			l := swot.Label{Category: c, Index: i}
			g.add(labelCell(s, l, 1, d.ColIndex(l)))
		}
	}

	// Data rows.
	for _, rc := range []swot.Category{swot.Strengths, swot.Weaknesses} {
		for i := 1; i <= d.Count(rc); i++ {
			rl := swot.Label{Category: rc, Index: i}
			row := d.RowIndex(rl)
			if i == 1 {
				g.add(Cell{Row: row, Col: 0, RowSpan: d.Count(rc), Kind: Section, Text: rc.Title(), Category: rc})
			}
			g.add(labelCell(s, rl, row, 1))

			for _, cc := range []swot.Category{swot.Opportunities, swot.Threats} {
				for j := 1; j <= d.Count(cc); j++ {
					k := swot.Key{Row: rl, Col: swot.Label{Category: cc, Index: j}}
					g.index[k] = len(g.Cells)
					g.add(Cell{
						Row:      row,
						Col:      d.ColIndex(k.Col),
						Kind:     Strategy,
						Text:     st.Get(k),
						Tooltip:  k.Tooltip(),
						Key:      k,
						Quadrant: k.Quadrant(),
					})
				}
			}
		}
	}
	return g
}

func (g *Grid) add(c Cell) {
	if c.RowSpan == 0 {
		c.RowSpan = 1
	}
	if c.ColSpan == 0 {
		c.ColSpan = 1
	}
	g.Cells = append(g.Cells, c)
}

func labelCell(s swot.Set, l swot.Label, row, col int) Cell {
	tip := fmt.Sprintf("%s %d", l.Category.Singular(), l.Index)
	if it, ok := s.Item(l.Category, l.Index); ok {
		tip = it.String()
	}
	return Cell{Row: row, Col: col, Kind: Label, Text: l.String(), Tooltip: tip, Category: l.Category}
}

// Edit sets the text of the strategy cell k and writes it through to the
// shared mapping. Keys outside the grid are rejected with INVALID_KEY.
func (g *Grid) Edit(k swot.Key, text string) error {
	i, ok := g.index[k]
	if !ok {
		return errors.New(errors.ErrCodeInvalidKey, "strategy %s is outside the current %d×%d matrix", k, g.Dims.DataRows(), g.Dims.DataCols())
	}
	g.Cells[i].Text = text
	g.strategies.Set(k, text)
	return nil
}

// Cell returns the strategy cell for k.
func (g *Grid) Cell(k swot.Key) (Cell, bool) {
	i, ok := g.index[k]
	if !ok {
		return Cell{}, false
	}
	return g.Cells[i], true
}

// At returns the cell covering grid position (row, col).
func (g *Grid) At(row, col int) (Cell, bool) {
	for _, c := range g.Cells {
		if c.Covers(row, col) {
			return c, true
		}
	}
	return Cell{}, false
}

// Quadrant returns the strategy cells of q in row-major order.
func (g *Grid) Quadrant(q swot.Quadrant) []Cell {
	var out []Cell
	for _, c := range g.Cells {
		if c.Kind == Strategy && c.Quadrant == q {
			out = append(out, c)
		}
	}
	return out
}

// Strategies returns the mapping the grid writes into.
func (g *Grid) Strategies() swot.Strategies { return g.strategies }
