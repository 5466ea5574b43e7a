package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/swotboard/pkg/cache"
)

// Runner renders exports with caching.
//
// The Runner holds no export state; several goroutines may share one as
// long as each passes a workspace it has exclusive access to.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil keyer selects the default keyer, a nil
// cache disables caching and a nil logger uses log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Export renders every requested kind, serving cached artifacts where
// possible. It fails with NOT_GENERATED before the workspace's first
// generate.
func (r *Runner) Export(ctx context.Context, req Request) (*Result, error) {
	kinds := req.Kinds
	if len(kinds) == 0 {
		kinds = AllKinds
	}

	res := &Result{
		Artifacts: make(map[Kind][]byte, len(kinds)),
		CacheInfo: CacheInfo{Hits: make(map[Kind]bool, len(kinds))},
	}
	start := time.Now()

	for _, k := range kinds {
		key := r.key(req, k)
		if !req.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				res.Artifacts[k] = data
				res.CacheInfo.Hits[k] = true
				continue
			}
		}

		data, err := Render(ctx, req.Workspace, k)
		if err != nil {
			return nil, err
		}
		_ = r.Cache.Set(ctx, key, data, TTLArtifact)
		res.Artifacts[k] = data
		res.CacheInfo.Hits[k] = false
	}

	res.Stats.RenderTime = time.Since(start)
	r.Logger.Debug("exported",
		"kinds", kinds,
		"cached", res.CacheInfo.AllHit(),
		"duration", res.Stats.RenderTime)
	return res, nil
}

// ExportOne is a convenience wrapper for a single kind.
func (r *Runner) ExportOne(ctx context.Context, req Request, k Kind) ([]byte, bool, error) {
	req.Kinds = []Kind{k}
	res, err := r.Export(ctx, req)
	if err != nil {
		return nil, false, err
	}
	return res.Artifacts[k], res.CacheInfo.Hits[k], nil
}

func (r *Runner) key(req Request, k Kind) string {
	if req.Content != nil {
		return r.Keyer.ContentKey(string(k), req.Content)
	}
	return r.Keyer.RenderKey(string(k), req.Workspace.Revision())
}
