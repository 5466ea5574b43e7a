package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/swotboard/pkg/observability"
)

// newLogger creates a logger that writes to w at the given level, with
// "HH:MM:SS.ms" timestamps (e.g. "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs how long an operation took.
// It is safe for sequential use by a single goroutine.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Rendered 2 images (12ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context carrying l.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Log-backed Hooks
// =============================================================================

// logHooks reports workspace, cache and HTTP events as debug logs.
// Failures are logged at warn level.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) logHooks {
	return logHooks{logger: l.WithPrefix("hooks")}
}

var (
	_ observability.WorkspaceHooks = logHooks{}
	_ observability.CacheHooks     = logHooks{}
	_ observability.HTTPHooks      = logHooks{}
)

func (h logHooks) OnGenerate(_ context.Context, items int, err error) {
	if err != nil {
		h.logger.Warn("generate failed", "err", err)
		return
	}
	h.logger.Debug("generated", "items", items)
}

func (h logHooks) OnEdit(_ context.Context, key string, cleared bool) {
	h.logger.Debug("strategy edited", "key", key, "cleared", cleared)
}

func (h logHooks) OnLoad(_ context.Context, source string, err error) {
	if err != nil {
		h.logger.Warn("load failed", "source", source, "err", err)
		return
	}
	h.logger.Debug("loaded", "source", source)
}

func (h logHooks) OnRender(_ context.Context, kind string, dur time.Duration, err error) {
	if err != nil {
		h.logger.Warn("render failed", "kind", kind, "err", err)
		return
	}
	h.logger.Debug("rendered", "kind", kind, "duration", dur.Round(time.Microsecond))
}

func (h logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h logHooks) OnRequest(context.Context, string, string) {}

func (h logHooks) OnResponse(_ context.Context, method, path string, status int, _ time.Duration) {
	if status >= 500 {
		h.logger.Warn("server error", "method", method, "path", path, "status", status)
	}
}
