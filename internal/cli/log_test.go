package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	time.Sleep(5 * time.Millisecond)
	prog.done("Rendered 2 images")

	if !strings.Contains(buf.String(), "Rendered 2 images (") {
		t.Errorf("progress output = %q", buf.String())
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Fatal("loggerFromContext should fall back to the default logger")
	}

	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), custom)
	if loggerFromContext(ctx) != custom {
		t.Error("loggerFromContext should return the attached logger")
	}
}

func TestLogHooks(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	h := newLogHooks(newLogger(&buf, log.InfoLevel))
	h.OnGenerate(ctx, 4, nil)
	h.OnEdit(ctx, "S1-O1", false)
	h.OnCacheHit(ctx, "render")
	if buf.Len() != 0 {
		t.Errorf("debug events leaked at info level: %q", buf.String())
	}

	h.OnLoad(ctx, "swot.json", errors.New("boom"))
	if !strings.Contains(buf.String(), "load failed") {
		t.Errorf("failed load not logged: %q", buf.String())
	}

	buf.Reset()
	h = newLogHooks(newLogger(&buf, log.DebugLevel))
	h.OnRender(ctx, "matrix", time.Millisecond, nil)
	if !strings.Contains(buf.String(), "rendered") || !strings.Contains(buf.String(), "matrix") {
		t.Errorf("render event = %q", buf.String())
	}
}
