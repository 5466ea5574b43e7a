// Package pipeline turns a workspace into PNG exports.
//
// The HTTP server, the terminal editor and the batch render command all
// export through a [Runner], so they share one caching policy and log the
// same way.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	res, err := runner.Export(ctx, pipeline.Request{
//	    Workspace: ws,
//	    Kinds:     []pipeline.Kind{pipeline.KindSWOT, pipeline.KindMatrix},
//	})
//	if err != nil {
//	    return err
//	}
//	paths, err := pipeline.WriteFiles(outDir, res.Artifacts)
//
// # Caching
//
// Artifacts are cached under a key derived from the workspace revision, or
// from Request.Content when the caller rendered a document it read from
// disk. Either changes whenever the output could change.
package pipeline

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/matzehuels/swotboard/pkg/render"
	"github.com/matzehuels/swotboard/pkg/workspace"
)

// Kind names one of the two exports.
type Kind string

const (
	KindSWOT   Kind = "swot"
	KindMatrix Kind = "matrix"
)

// AllKinds lists every export in output order.
var AllKinds = []Kind{KindSWOT, KindMatrix}

// TTLArtifact bounds how long a rendered export stays cached.
const TTLArtifact = time.Hour

// Filename returns the fixed download name of the export.
func (k Kind) Filename() string {
	if k == KindMatrix {
		return render.MatrixFilename
	}
	return render.SWOTFilename
}

// ValidateKind checks that s names an export.
func ValidateKind(s string) error {
	for _, k := range AllKinds {
		if string(k) == s {
			return nil
		}
	}
	return fmt.Errorf("invalid export %q: must be one of %s", s, kindList())
}

// ParseKinds validates and converts export names. An empty list means all.
func ParseKinds(names []string) ([]Kind, error) {
	if len(names) == 0 {
		return AllKinds, nil
	}
	kinds := make([]Kind, 0, len(names))
	for _, n := range names {
		if err := ValidateKind(n); err != nil {
			return nil, err
		}
		kinds = append(kinds, Kind(n))
	}
	return kinds, nil
}

func kindList() string {
	names := make([]string, len(AllKinds))
	for i, k := range AllKinds {
		names[i] = string(k)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// Request describes one export run.
type Request struct {
	Workspace *workspace.Workspace
	Kinds     []Kind

	// Content, when set, keys the cache instead of the workspace revision.
	Content []byte

	// Refresh skips the cache lookup but still stores the result.
	Refresh bool
}

// Result holds the outputs of an export run.
type Result struct {
	// Artifacts holds PNG bytes keyed by kind.
	Artifacts map[Kind][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains timing information.
type Stats struct {
	RenderTime time.Duration
}

// CacheInfo records which kinds were served from the cache.
type CacheInfo struct {
	Hits map[Kind]bool
}

// AllHit reports whether every artifact came from the cache.
func (c CacheInfo) AllHit() bool {
	for _, hit := range c.Hits {
		if !hit {
			return false
		}
	}
	return len(c.Hits) > 0
}
