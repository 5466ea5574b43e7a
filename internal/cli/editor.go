package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	apperr "github.com/matzehuels/swotboard/pkg/errors"
	"github.com/matzehuels/swotboard/pkg/grid"
	"github.com/matzehuels/swotboard/pkg/io"
	"github.com/matzehuels/swotboard/pkg/pipeline"
	"github.com/matzehuels/swotboard/pkg/render"
	"github.com/matzehuels/swotboard/pkg/swot"
	"github.com/matzehuels/swotboard/pkg/textwrap"
	"github.com/matzehuels/swotboard/pkg/workspace"
)

// cellWidth is the number of terminal columns a strategy cell shows.
const cellWidth = 16

type editorMode int

const (
	modeNavigate editorMode = iota
	modeEdit
	modeConfirmClear
)

var (
	editorHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
	editorCursorStyle = lipgloss.NewStyle().Reverse(true).Bold(true)
	editorBorderStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// EditorModel - Terminal confrontation matrix editor
// =============================================================================

// EditorModel is the bubbletea model for editing strategy cells.
type EditorModel struct {
	ctx    context.Context
	ws     *workspace.Workspace
	runner *pipeline.Runner

	// Path receives the document on save; OutDir receives PNG exports.
	Path   string
	OutDir string

	Row, Col int
	Mode     editorMode
	Dirty    bool

	input     textarea.Model
	status    string
	statusErr bool
}

// NewEditorModel creates an editor over a generated workspace.
func NewEditorModel(ctx context.Context, ws *workspace.Workspace, runner *pipeline.Runner, path, outDir string) EditorModel {
	ta := textarea.New()
	ta.Placeholder = "Strategy…"
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.SetWidth(60)
	ta.SetHeight(4)

	return EditorModel{
		ctx:    ctx,
		ws:     ws,
		runner: runner,
		Path:   path,
		OutDir: outDir,
		input:  ta,
	}
}

func (m EditorModel) Init() tea.Cmd {
	return nil
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w := msg.Width - 4
		if w > 80 {
			w = 80
		}
		if w > 10 {
			m.input.SetWidth(w)
		}
		return m, nil
	case tea.KeyMsg:
		switch m.Mode {
		case modeEdit:
			return m.updateEdit(msg)
		case modeConfirmClear:
			return m.updateConfirm(msg)
		default:
			return m.updateNavigate(msg)
		}
	}
	return m, nil
}

func (m EditorModel) updateNavigate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.ws.Grid().Dims
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.Row > 0 {
			m.Row--
		}
	case "down", "j":
		if m.Row < d.DataRows()-1 {
			m.Row++
		}
	case "left", "h":
		if m.Col > 0 {
			m.Col--
		}
	case "right", "l":
		if m.Col < d.DataCols()-1 {
			m.Col++
		}
	case "enter", "e":
		c := m.current()
		m.input.SetValue(c.Text)
		m.input.Focus()
		m.Mode = modeEdit
		m.setStatus(c.Tooltip, nil)
		return m, textarea.Blink
	case "x", "delete", "backspace":
		m.apply(m.current().Key, "")
	case "C":
		m.Mode = modeConfirmClear
		m.setStatus(workspace.ClearPrompt+" (y/n)", nil)
	case "r":
		_, err := m.ws.RebuildMatrix(m.ctx)
		m.clampCursor()
		m.setStatus("Matrix rebuilt", err)
	case "s":
		m.save()
	case "p":
		m.export()
	}
	return m, nil
}

func (m EditorModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlS:
		m.apply(m.current().Key, m.input.Value())
		m.input.Blur()
		m.Mode = modeNavigate
		return m, nil
	case tea.KeyEsc:
		m.input.Blur()
		m.Mode = modeNavigate
		m.setStatus("Edit discarded", nil)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m EditorModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	confirmed := msg.String() == "y" || msg.String() == "Y"
	err := m.ws.ClearMatrix(m.ctx, func(string) bool { return confirmed })
	m.Mode = modeNavigate
	switch {
	case err == nil:
		m.Dirty = true
		m.setStatus("Matrix cleared", nil)
	case apperr.Is(err, apperr.ErrCodeConfirmationRequired):
		m.setStatus("Matrix kept", nil)
	default:
		m.setStatus("", err)
	}
	return m, nil
}

// current returns the strategy cell under the cursor.
func (m EditorModel) current() grid.Cell {
	c, _ := m.ws.Grid().At(m.Row+swot.HeaderRows, m.Col+swot.HeaderCols)
	return c
}

func (m *EditorModel) clampCursor() {
	d := m.ws.Grid().Dims
	m.Row = min(m.Row, d.DataRows()-1)
	m.Col = min(m.Col, d.DataCols()-1)
}

func (m *EditorModel) apply(k swot.Key, text string) {
	if err := m.ws.Edit(m.ctx, k.String(), text); err != nil {
		m.setStatus("", err)
		return
	}
	m.Dirty = true
	if text == "" {
		m.setStatus(k.String()+" cleared", nil)
	} else {
		m.setStatus(k.String()+" saved", nil)
	}
}

func (m *EditorModel) save() {
	if err := io.Export(m.ws.Snapshot(), m.Path); err != nil {
		m.setStatus("", err)
		return
	}
	m.Dirty = false
	m.setStatus("Saved "+m.Path, nil)
}

func (m *EditorModel) export() {
	res, err := m.runner.Export(m.ctx, pipeline.Request{Workspace: m.ws})
	if err != nil {
		m.setStatus("", err)
		return
	}
	paths, err := pipeline.WriteFiles(m.OutDir, res.Artifacts)
	if err != nil {
		m.setStatus("", err)
		return
	}
	m.setStatus("Exported "+strings.Join(paths, ", "), nil)
}

func (m *EditorModel) setStatus(msg string, err error) {
	m.statusErr = err != nil
	if err != nil {
		msg = apperr.Detail(err)
	}
	m.status = msg
}

func (m EditorModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Confrontation Matrix (TOWS)"))
	b.WriteString("\n")
	b.WriteString(editorHelpStyle.Render(m.help()))
	b.WriteString("\n\n")
	b.WriteString(m.table())
	b.WriteString("\n\n")

	cur := m.current()
	if m.Mode == modeEdit {
		b.WriteString(StyleHighlight.Render(cur.Tooltip))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	} else {
		b.WriteString(StyleHighlight.Render(cur.Tooltip))
		b.WriteString("\n")
		b.WriteString(StyleDim.Render(m.pairing()))
		b.WriteString("\n")
		if cur.Text != "" {
			b.WriteString(StyleValue.Render(cur.Text))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.statusErr {
			b.WriteString(styleIconError.Render(iconError) + " " + m.status)
		} else {
			b.WriteString(styleIconInfo.Render(iconInfo) + " " + m.status)
		}
	}
	return b.String()
}

func (m EditorModel) help() string {
	switch m.Mode {
	case modeEdit:
		return "ctrl+s apply  esc discard"
	case modeConfirmClear:
		return "y clear all  any other key keeps the matrix"
	default:
		return "←↑↓→ move  ⏎ edit  x clear cell  C clear all  r rebuild  s save  p export PNG  q quit"
	}
}

// pairing names the row and column items of the current cell.
func (m EditorModel) pairing() string {
	g := m.ws.Grid()
	row, _ := g.At(m.Row+swot.HeaderRows, 1)
	col, _ := g.At(1, m.Col+swot.HeaderCols)
	return row.Tooltip + "  ×  " + col.Tooltip
}

// table renders the strategy cells with their row and column labels.
func (m EditorModel) table() string {
	g := m.ws.Grid()
	d := g.Dims

	headers := make([]string, 0, d.DataCols()+1)
	headers = append(headers, "")
	for c := 0; c < d.DataCols(); c++ {
		cell, _ := g.At(1, c+swot.HeaderCols)
		headers = append(headers, cell.Text)
	}

	rows := make([][]string, d.DataRows())
	for r := range rows {
		label, _ := g.At(r+swot.HeaderRows, 1)
		row := make([]string, 0, d.DataCols()+1)
		row = append(row, label.Text)
		for c := 0; c < d.DataCols(); c++ {
			cell, _ := g.At(r+swot.HeaderRows, c+swot.HeaderCols)
			row = append(row, cellPreview(cell.Text))
		}
		rows[r] = row
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(editorBorderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow && col == 0:
				return base
			case row == table.HeaderRow:
				cell, _ := g.At(1, col-1+swot.HeaderCols)
				return base.Bold(true).Foreground(lipgloss.Color(render.SubHeaderColor(cell.Category)))
			case col == 0:
				cell, _ := g.At(row+swot.HeaderRows, 1)
				return base.Bold(true).Foreground(lipgloss.Color(render.QuadrantColor(cell.Category)))
			}
			cell, _ := g.At(row+swot.HeaderRows, col-1+swot.HeaderCols)
			fill, _ := render.StrategyColors(cell.Quadrant)
			style := base.Width(cellWidth + 2).Foreground(lipgloss.Color(fill))
			if row == m.Row && col-1 == m.Col {
				style = style.Inherit(editorCursorStyle)
			}
			return style
		})

	return t.Render()
}

// cellPreview fits strategy text on one table line.
func cellPreview(text string) string {
	if text == "" {
		return "·"
	}
	flat := strings.Join(strings.Fields(text), " ")
	measure := func(s string) float64 { return float64(lipgloss.Width(s)) }
	if measure(flat) <= cellWidth {
		return flat
	}
	return textwrap.Truncate(flat, cellWidth, measure)
}

// runEditor runs the editor full-screen and returns the final model.
func runEditor(ctx context.Context, m EditorModel) (EditorModel, error) {
	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return m, fmt.Errorf("editor: %w", err)
	}
	return final.(EditorModel), nil
}
