// Package workspace holds the state of one SWOT session and the commands
// that change it.
//
// A [Workspace] owns the raw input fields, the last successfully parsed
// [swot.Set], the strategy notes and the current [grid.Grid]. Every command
// either completes or leaves the state exactly as it was, and every
// completed change bumps [Workspace.Revision] so caches keyed on it go
// stale automatically.
//
// A Workspace is not safe for concurrent use; front ends that serve
// several clients serialise access themselves.
package workspace

import (
	"context"
	"image"

	"github.com/google/uuid"

	"github.com/matzehuels/swotboard/pkg/errors"
	"github.com/matzehuels/swotboard/pkg/grid"
	"github.com/matzehuels/swotboard/pkg/io"
	"github.com/matzehuels/swotboard/pkg/observability"
	"github.com/matzehuels/swotboard/pkg/render/matrix"
	"github.com/matzehuels/swotboard/pkg/render/quadrant"
	"github.com/matzehuels/swotboard/pkg/swot"
)

// ClearPrompt is shown before all strategy notes are discarded.
const ClearPrompt = "Are you sure you want to clear all matrix data?"

// SampleInput pre-fills the input fields of a new workspace.
var SampleInput = swot.Input{
	Strengths:     "• Broad product range\n• International network",
	Weaknesses:    "• High cost base\n• Complex structure",
	Opportunities: "• Growing demand for sustainable materials\n• Technological innovations",
	Threats:       "• Strong international competition\n• Stricter European regulation",
}

// Confirmer asks the user to approve a destructive action.
type Confirmer func(prompt string) bool

// Always approves without asking; for non-interactive callers that were
// given explicit consent (a --yes flag, a confirm=true parameter).
func Always(string) bool { return true }

// Workspace is the state of one session.
type Workspace struct {
	input      swot.Input
	set        swot.Set
	generated  bool
	strategies swot.Strategies
	grid       *grid.Grid
	revision   string
}

// New returns a workspace with the sample input and no generated analysis.
func New() *Workspace {
	return &Workspace{
		input:      SampleInput,
		strategies: swot.NewStrategies(),
		revision:   uuid.NewString(),
	}
}

// Input returns the current input fields.
func (w *Workspace) Input() swot.Input { return w.input }

// Set returns the parsed analysis and whether one has been generated.
func (w *Workspace) Set() (swot.Set, bool) { return w.set, w.generated }

// Generated reports whether a generate has succeeded.
func (w *Workspace) Generated() bool { return w.generated }

// Strategies returns the shared strategy mapping. Callers must not replace
// entries behind the grid's back; use [Workspace.Edit].
func (w *Workspace) Strategies() swot.Strategies { return w.strategies }

// Grid returns the current matrix grid, or nil before the first generate.
func (w *Workspace) Grid() *grid.Grid { return w.grid }

// Revision identifies the current state.
func (w *Workspace) Revision() string { return w.revision }

func (w *Workspace) touch() { w.revision = uuid.NewString() }

// Generate parses in, replaces the analysis and rebuilds the matrix grid.
// If every field is empty it returns EMPTY_INPUT and nothing changes.
func (w *Workspace) Generate(ctx context.Context, in swot.Input) error {
	s, err := swot.Parse(in)
	observability.Workspace().OnGenerate(ctx, itemCount(s), err)
	if err != nil {
		return err
	}
	w.input = in
	w.set = s
	w.generated = true
	w.grid = grid.Build(s, w.strategies)
	w.touch()
	return nil
}

func itemCount(s swot.Set) int {
	return len(s.Strengths) + len(s.Weaknesses) + len(s.Opportunities) + len(s.Threats)
}

// RebuildMatrix discards the current grid and builds a fresh one from the
// analysis and strategy notes.
func (w *Workspace) RebuildMatrix(ctx context.Context) (*grid.Grid, error) {
	if !w.generated {
		return nil, notGenerated()
	}
	w.grid = grid.Build(w.set, w.strategies)
	w.touch()
	return w.grid, nil
}

// Edit stores text for the strategy cell named by key, writing through the
// grid into the shared mapping. Empty text removes the note.
func (w *Workspace) Edit(ctx context.Context, key, text string) error {
	k, err := swot.ParseKey(key)
	if err != nil {
		return err
	}
	if w.grid == nil {
		return notGenerated()
	}
	if err := w.grid.Edit(k, text); err != nil {
		return err
	}
	observability.Workspace().OnEdit(ctx, k.String(), text == "")
	w.touch()
	return nil
}

// ClearMatrix discards every strategy note after confirm approves
// [ClearPrompt]. A nil or declining confirm returns CONFIRMATION_REQUIRED
// and keeps the notes.
func (w *Workspace) ClearMatrix(ctx context.Context, confirm Confirmer) error {
	if confirm == nil || !confirm(ClearPrompt) {
		return errors.New(errors.ErrCodeConfirmationRequired, "clearing the matrix needs confirmation")
	}
	w.strategies.Clear()
	if w.generated {
		w.grid = grid.Build(w.set, w.strategies)
	}
	w.touch()
	return nil
}

// Load applies a document: its lists become the input, the analysis is
// regenerated and, when the document carries strategies, they replace the
// current ones before the grid is rebuilt. A document whose lists are all
// empty is rejected with EMPTY_INPUT and nothing changes.
func (w *Workspace) Load(ctx context.Context, source string, doc io.Document) error {
	in := doc.Input()
	s, err := swot.Parse(in)
	observability.Workspace().OnLoad(ctx, source, err)
	if err != nil {
		return err
	}
	w.input = in
	w.set = s
	w.generated = true
	if doc.Strategies != nil {
		w.strategies.Replace(doc.Strategies)
	}
	w.grid = grid.Build(s, w.strategies)
	w.touch()
	return nil
}

// LoadDefault loads the built-in example document.
func (w *Workspace) LoadDefault(ctx context.Context) error {
	return w.Load(ctx, "default", io.Default())
}

// Snapshot returns the current state as a document. Before the first
// generate the lists come from the raw input fields.
func (w *Workspace) Snapshot() io.Document {
	if !w.generated {
		return io.SnapshotInput(w.input, w.strategies)
	}
	return io.Snapshot(w.set, w.strategies)
}

// Orphans returns stored notes the current grid cannot reach.
func (w *Workspace) Orphans() []swot.Key {
	if !w.generated {
		return nil
	}
	return w.strategies.Orphans(swot.DimsFor(w.set))
}

// RenderSWOT draws the SWOT analysis image.
func (w *Workspace) RenderSWOT(ctx context.Context) (image.Image, error) {
	if !w.generated {
		return nil, notGenerated()
	}
	return quadrant.Render(w.set), nil
}

// RenderMatrix draws the confrontation matrix image from the latest notes.
func (w *Workspace) RenderMatrix(ctx context.Context) (image.Image, error) {
	if !w.generated {
		return nil, notGenerated()
	}
	return matrix.Render(w.set, w.strategies), nil
}

func notGenerated() error {
	return errors.New(errors.ErrCodeNotGenerated, "generate the SWOT analysis first")
}
