package server

import (
	"strings"

	"github.com/matzehuels/swotboard/pkg/grid"
	"github.com/matzehuels/swotboard/pkg/swot"
	"github.com/matzehuels/swotboard/pkg/workspace"
)

// inputView is the JSON shape of the four entry fields.
type inputView struct {
	Strengths     string `json:"strengths"`
	Weaknesses    string `json:"weaknesses"`
	Opportunities string `json:"opportunities"`
	Threats       string `json:"threats"`
}

func (v inputView) input() swot.Input {
	return swot.Input{
		Strengths:     v.Strengths,
		Weaknesses:    v.Weaknesses,
		Opportunities: v.Opportunities,
		Threats:       v.Threats,
	}
}

func newInputView(in swot.Input) inputView {
	return inputView{
		Strengths:     in.Strengths,
		Weaknesses:    in.Weaknesses,
		Opportunities: in.Opportunities,
		Threats:       in.Threats,
	}
}

type cellView struct {
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	RowSpan  int    `json:"rowSpan"`
	ColSpan  int    `json:"colSpan"`
	Kind     string `json:"kind"`
	Class    string `json:"class"`
	Text     string `json:"text"`
	Tooltip  string `json:"tooltip,omitempty"`
	Key      string `json:"key,omitempty"`
	Quadrant string `json:"quadrant,omitempty"`
}

// GridColumn and GridRow are 1-based CSS grid lines.
func (c cellView) GridColumn() int { return c.Col + 1 }
func (c cellView) GridRow() int    { return c.Row + 1 }

type matrixView struct {
	Rows            int        `json:"rows"`
	Cols            int        `json:"cols"`
	TemplateColumns string     `json:"templateColumns"`
	TemplateRows    string     `json:"templateRows"`
	Cells           []cellView `json:"cells"`
}

type stateView struct {
	Revision  string      `json:"revision"`
	Generated bool        `json:"generated"`
	Input     inputView   `json:"input"`
	Matrix    *matrixView `json:"matrix,omitempty"`
	Orphans   []string    `json:"orphans,omitempty"`
}

func newMatrixView(g *grid.Grid) *matrixView {
	v := &matrixView{
		Rows:            g.Dims.Rows(),
		Cols:            g.Dims.Cols(),
		TemplateColumns: g.Layout.TemplateColumns(),
		TemplateRows:    g.Layout.TemplateRows(),
		Cells:           make([]cellView, len(g.Cells)),
	}
	for i, c := range g.Cells {
		cv := cellView{
			Row:     c.Row,
			Col:     c.Col,
			RowSpan: c.RowSpan,
			ColSpan: c.ColSpan,
			Kind:    c.Kind.String(),
			Class:   cellClass(c),
			Text:    c.Text,
			Tooltip: c.Tooltip,
		}
		if c.Editable() {
			cv.Key = c.Key.String()
			cv.Quadrant = c.Quadrant.Code()
		}
		v.Cells[i] = cv
	}
	return v
}

// cellClass returns the CSS classes that colour a cell.
func cellClass(c grid.Cell) string {
	switch c.Kind {
	case grid.Section:
		return "section section-" + c.Category.Key()
	case grid.Label:
		return "label label-" + c.Category.Key()
	case grid.Strategy:
		return "strategy strategy-" + strings.ToLower(c.Quadrant.Code())
	default:
		return "blank"
	}
}

func newStateView(ws *workspace.Workspace) stateView {
	v := stateView{
		Revision:  ws.Revision(),
		Generated: ws.Generated(),
		Input:     newInputView(ws.Input()),
	}
	if g := ws.Grid(); g != nil {
		v.Matrix = newMatrixView(g)
	}
	for _, k := range ws.Orphans() {
		v.Orphans = append(v.Orphans, k.String())
	}
	return v
}
