package pipeline

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/matzehuels/swotboard/pkg/observability"
	"github.com/matzehuels/swotboard/pkg/render"
	"github.com/matzehuels/swotboard/pkg/workspace"
)

// Render draws one export of ws and encodes it as PNG. The render hook sees
// the total time and any drawing or encoding error.
func Render(ctx context.Context, ws *workspace.Workspace, k Kind) ([]byte, error) {
	start := time.Now()
	data, err := renderPNG(ctx, ws, k)
	observability.Workspace().OnRender(ctx, string(k), time.Since(start), err)
	return data, err
}

func renderPNG(ctx context.Context, ws *workspace.Workspace, k Kind) ([]byte, error) {
	var (
		img image.Image
		err error
	)
	switch k {
	case KindSWOT:
		img, err = ws.RenderSWOT(ctx)
	case KindMatrix:
		img, err = ws.RenderMatrix(ctx)
	default:
		return nil, ValidateKind(string(k))
	}
	if err != nil {
		return nil, err
	}
	data, err := render.EncodePNG(img)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", k, err)
	}
	return data, nil
}

// WriteFiles saves artifacts into dir under their fixed filenames, creating
// dir if needed. It returns the written paths in export order.
func WriteFiles(dir string, artifacts map[Kind][]byte) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	var paths []string
	for _, k := range AllKinds {
		data, ok := artifacts[k]
		if !ok {
			continue
		}
		path := filepath.Join(dir, k.Filename())
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
