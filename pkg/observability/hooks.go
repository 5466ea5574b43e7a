// Package observability provides hooks for logging and metrics.
//
// Libraries emit events through the registered hooks; the binary decides
// what to do with them (the CLI logs them at debug level). Nothing here
// depends on a particular backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetWorkspaceHooks(&myWorkspaceHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	start := time.Now()
//	img := matrix.Render(set, strategies)
//	observability.Workspace().OnRender(ctx, "matrix", time.Since(start), nil)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Workspace Hooks
// =============================================================================

// WorkspaceHooks receives events from the SWOT workspace.
type WorkspaceHooks interface {
	// OnGenerate records a generate attempt with the number of parsed items.
	OnGenerate(ctx context.Context, items int, err error)

	// OnEdit records a strategy edit; cleared is set when the note was removed.
	OnEdit(ctx context.Context, key string, cleared bool)

	// OnLoad records loading a document from source (a path or "default").
	OnLoad(ctx context.Context, source string, err error)

	// OnRender records drawing one export ("swot" or "matrix").
	OnRender(ctx context.Context, kind string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP server.
type HTTPHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records the response sent for a request.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopWorkspaceHooks is a no-op implementation of WorkspaceHooks.
type NoopWorkspaceHooks struct{}

func (NoopWorkspaceHooks) OnGenerate(context.Context, int, error)                 {}
func (NoopWorkspaceHooks) OnEdit(context.Context, string, bool)                   {}
func (NoopWorkspaceHooks) OnLoad(context.Context, string, error)                  {}
func (NoopWorkspaceHooks) OnRender(context.Context, string, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	workspaceHooks WorkspaceHooks = NoopWorkspaceHooks{}
	cacheHooks     CacheHooks     = NoopCacheHooks{}
	httpHooks      HTTPHooks      = NoopHTTPHooks{}
	hooksMu        sync.RWMutex
)

// SetWorkspaceHooks registers custom workspace hooks.
// This should be called once at application startup.
func SetWorkspaceHooks(h WorkspaceHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		workspaceHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Workspace returns the registered workspace hooks.
func Workspace() WorkspaceHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return workspaceHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	workspaceHooks = NoopWorkspaceHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
}
