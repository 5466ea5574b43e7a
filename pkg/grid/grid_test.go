package grid

import (
	"testing"

	"github.com/matzehuels/swotboard/pkg/errors"
	"github.com/matzehuels/swotboard/pkg/swot"
)

func parse(t *testing.T, s, w, o, th []string) swot.Set {
	t.Helper()
	set, err := swot.Parse(swot.InputFromLists(s, w, o, th))
	if err != nil {
		t.Fatal(err)
	}
	return set
}

func key(t *testing.T, s string) swot.Key {
	t.Helper()
	k, err := swot.ParseKey(s)
	if err != nil {
		t.Fatal(err)
	}
	return k
}

func TestBuildTopology(t *testing.T) {
	s := parse(t, []string{"Brand", "Team"}, nil, []string{"Export"}, []string{"Rivals", "Rates", "Tariffs"})
	g := Build(s, swot.NewStrategies())

	if g.Dims.Rows() != 7 || g.Dims.Cols() != 6 {
		t.Fatalf("dims = %dx%d, want 7x6", g.Dims.Rows(), g.Dims.Cols())
	}

	tests := []struct {
		row, col int
		kind     Kind
		text     string
		tooltip  string
	}{
		{0, 0, Blank, "", ""},
		{1, 1, Blank, "", ""},
		{0, 2, Section, "Opportunities", ""},
		{0, 3, Section, "Threats", ""},
		{0, 5, Section, "Threats", ""},
		{1, 2, Label, "O1", "O1: Export"},
		{1, 4, Label, "T2", "T2: Rates"},
		{2, 0, Section, "Strengths", ""},
		{3, 0, Section, "Strengths", ""},
		{4, 0, Section, "Weaknesses", ""},
		{6, 0, Section, "Weaknesses", ""},
		{3, 1, Label, "S2", "S2: Team"},
		{5, 1, Label, "W2", "Weakness 2"},
		{2, 2, Strategy, "", "SO Strategy: S1 + O1 (Growth)"},
		{6, 5, Strategy, "", "WT Strategy: W3 + T3 (Survival)"},
	}
	for _, tt := range tests {
		c, ok := g.At(tt.row, tt.col)
		if !ok {
			t.Errorf("At(%d,%d) missing", tt.row, tt.col)
			continue
		}
		if c.Kind != tt.kind || c.Text != tt.text || c.Tooltip != tt.tooltip {
			t.Errorf("At(%d,%d) = %s %q %q, want %s %q %q", tt.row, tt.col, c.Kind, c.Text, c.Tooltip, tt.kind, tt.text, tt.tooltip)
		}
	}
}

func TestBuildCoversEveryPositionOnce(t *testing.T) {
	s := parse(t, []string{"a"}, []string{"b", "c"}, nil, []string{"d"})
	g := Build(s, swot.NewStrategies())
	for r := 0; r < g.Dims.Rows(); r++ {
		for c := 0; c < g.Dims.Cols(); c++ {
			n := 0
			for _, cell := range g.Cells {
				if cell.Covers(r, c) {
					n++
				}
			}
			if n != 1 {
				t.Errorf("position (%d,%d) covered by %d cells", r, c, n)
			}
		}
	}
}

func TestBuildStrategyCellsPerQuadrant(t *testing.T) {
	s := parse(t, []string{"a", "b"}, []string{"c"}, []string{"d", "e", "f"}, []string{"g"})
	g := Build(s, swot.NewStrategies())
	want := map[swot.Quadrant]int{swot.QuadrantSO: 6, swot.QuadrantST: 2, swot.QuadrantWO: 3, swot.QuadrantWT: 1}
	for q, n := range want {
		if got := len(g.Quadrant(q)); got != n {
			t.Errorf("%s cells = %d, want %d", q, got, n)
		}
	}
}

func TestBuildPrefillsAndWritesThrough(t *testing.T) {
	s := parse(t, []string{"a"}, []string{"b"}, []string{"c", "d"}, []string{"e"})
	st := swot.NewStrategies()
	st.Set(key(t, "S1-O2"), "Expand via partnership")

	g := Build(s, st)
	if c, _ := g.Cell(key(t, "S1-O2")); c.Text != "Expand via partnership" {
		t.Errorf("prefilled text = %q", c.Text)
	}

	if err := g.Edit(key(t, "W1-T1"), "Cut costs"); err != nil {
		t.Fatalf("Edit() error = %v", err)
	}
	if st.Get(key(t, "W1-T1")) != "Cut costs" {
		t.Error("edit did not reach the shared mapping")
	}
	if c, _ := g.Cell(key(t, "W1-T1")); c.Text != "Cut costs" {
		t.Errorf("cell text = %q after edit", c.Text)
	}
	if st.Get(key(t, "S1-O2")) != "Expand via partnership" {
		t.Error("editing one cell changed another")
	}

	if err := g.Edit(key(t, "W1-T1"), ""); err != nil {
		t.Fatal(err)
	}
	if _, ok := st[key(t, "W1-T1")]; ok {
		t.Error("clearing a cell should remove its key")
	}
}

func TestEditOutsideGrid(t *testing.T) {
	s := parse(t, []string{"a"}, nil, []string{"b"}, nil)
	g := Build(s, swot.NewStrategies())
	err := g.Edit(key(t, "S2-O1"), "x")
	if !errors.Is(err, errors.ErrCodeInvalidKey) {
		t.Errorf("Edit() error = %v, want INVALID_KEY", err)
	}
}

func TestRebuildKeepsOrphans(t *testing.T) {
	st := swot.NewStrategies()
	g := Build(parse(t, []string{"a"}, nil, []string{"b", "c"}, nil), st)
	if err := g.Edit(key(t, "S1-O2"), "keep me"); err != nil {
		t.Fatal(err)
	}

	// Shrinking opportunities to one drops O2 from the grid.
	g = Build(parse(t, []string{"a"}, nil, []string{"b"}, nil), st)
	if _, ok := g.Cell(key(t, "S1-O2")); ok {
		t.Error("S1-O2 should not be reachable after shrinking")
	}
	if st.Get(key(t, "S1-O2")) != "keep me" {
		t.Error("orphaned note was purged")
	}
	if orphans := st.Orphans(g.Dims); len(orphans) != 1 {
		t.Errorf("Orphans() = %v", orphans)
	}

	// Growing back restores it.
	g = Build(parse(t, []string{"a"}, nil, []string{"b", "c"}, nil), st)
	if c, _ := g.Cell(key(t, "S1-O2")); c.Text != "keep me" {
		t.Errorf("restored text = %q", c.Text)
	}
}

func TestLayoutMatchesDims(t *testing.T) {
	g := Build(parse(t, []string{"a", "b"}, nil, nil, nil), swot.NewStrategies())
	if len(g.Layout.Rows) != g.Dims.Rows() || len(g.Layout.Cols) != g.Dims.Cols() {
		t.Errorf("layout %dx%d, dims %dx%d", len(g.Layout.Rows), len(g.Layout.Cols), g.Dims.Rows(), g.Dims.Cols())
	}
}
