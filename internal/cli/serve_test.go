package cli

import (
	"context"
	"path/filepath"
	"testing"

	apperr "github.com/matzehuels/swotboard/pkg/errors"
	"github.com/matzehuels/swotboard/pkg/io"
)

func TestLoadWorkspace(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	existing := filepath.Join(dir, "swot.json")
	if err := io.Export(io.Default(), existing); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "missing.json")

	tests := []struct {
		name      string
		path      string
		required  bool
		wantErr   bool
		generated bool
	}{
		{"no path", "", false, false, false},
		{"existing", existing, true, false, true},
		{"missing optional", missing, false, false, false},
		{"missing required", missing, true, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws, err := loadWorkspace(ctx, tt.path, tt.required)
			if tt.wantErr {
				if !apperr.Is(err, apperr.ErrCodeLoadFailure) {
					t.Fatalf("err = %v, want LOAD_FAILURE", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("loadWorkspace: %v", err)
			}
			if ws.Generated() != tt.generated {
				t.Errorf("Generated() = %v, want %v", ws.Generated(), tt.generated)
			}
		})
	}
}
