package cli

import (
	"context"
	stdio "io"
	"os"
	"path/filepath"
	"testing"

	apperr "github.com/matzehuels/swotboard/pkg/errors"
	"github.com/matzehuels/swotboard/pkg/io"
	"github.com/matzehuels/swotboard/pkg/pipeline"
	"github.com/matzehuels/swotboard/pkg/render"
	"github.com/matzehuels/swotboard/pkg/swot"
)

func TestUnescapeNewlines(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Brand", "Brand"},
		{`Brand\nTeam`, "Brand\nTeam"},
		{"Brand\nTeam", "Brand\nTeam"},
	}
	for _, tt := range tests {
		if got := unescapeNewlines(tt.in); got != tt.want {
			t.Errorf("unescapeNewlines(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestKeyList(t *testing.T) {
	keys := []swot.Key{
		swot.NewKey(swot.Strengths, 1, swot.Opportunities, 2),
		swot.NewKey(swot.Weaknesses, 3, swot.Threats, 1),
	}
	if got := keyList(keys); got != "S1-O2, W3-T1" {
		t.Errorf("keyList = %q", got)
	}
}

func TestRenderInput(t *testing.T) {
	c := New(stdio.Discard, LogInfo)
	dir := t.TempDir()
	opts := &renderOpts{output: dir, noCache: true, strengths: `Brand\nTeam`, threats: "Rivals"}

	err := c.renderInput(context.Background(), opts.input(), []pipeline.Kind{pipeline.KindMatrix}, opts)
	if err != nil {
		t.Fatalf("renderInput: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, render.MatrixFilename)); err != nil {
		t.Errorf("matrix not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, render.SWOTFilename)); !os.IsNotExist(err) {
		t.Errorf("swot export written although not requested")
	}
}

func TestRenderInputEmpty(t *testing.T) {
	c := New(stdio.Discard, LogInfo)
	opts := &renderOpts{output: t.TempDir(), noCache: true}

	err := c.renderInput(context.Background(), swot.Input{}, pipeline.AllKinds, opts)
	if !apperr.Is(err, apperr.ErrCodeEmptyInput) {
		t.Errorf("err = %v, want EMPTY_INPUT", err)
	}
}

func TestRenderDocument(t *testing.T) {
	c := New(stdio.Discard, LogInfo)
	dir := t.TempDir()
	path := filepath.Join(dir, "swot.toml")
	if err := io.Export(io.Default(), path); err != nil {
		t.Fatal(err)
	}

	opts := &renderOpts{output: filepath.Join(dir, "out"), noCache: true}
	if err := c.renderDocument(context.Background(), path, pipeline.AllKinds, opts); err != nil {
		t.Fatalf("renderDocument: %v", err)
	}
	for _, name := range []string{render.SWOTFilename, render.MatrixFilename} {
		if _, err := os.Stat(filepath.Join(opts.output, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}
}

func TestRenderDocumentMissing(t *testing.T) {
	c := New(stdio.Discard, LogInfo)
	opts := &renderOpts{output: t.TempDir(), noCache: true}

	err := c.renderDocument(context.Background(), filepath.Join(t.TempDir(), "nope.json"), pipeline.AllKinds, opts)
	if !apperr.Is(err, apperr.ErrCodeLoadFailure) {
		t.Errorf("err = %v, want LOAD_FAILURE", err)
	}
}
