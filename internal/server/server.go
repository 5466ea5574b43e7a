// Package server hosts the interactive SWOT page and its JSON API.
//
// The page carries the four entry fields, the rendered SWOT image and the
// editable confrontation matrix. Every request that reads or changes the
// workspace holds one mutex, so an export always sees the latest edit.
package server

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/swotboard/pkg/cache"
	"github.com/matzehuels/swotboard/pkg/observability"
	"github.com/matzehuels/swotboard/pkg/pipeline"
	"github.com/matzehuels/swotboard/pkg/workspace"
)

//go:embed templates/*.html static/*.js static/*.css
var assetsFS embed.FS

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = "127.0.0.1:8080"

const shutdownTimeout = 5 * time.Second

// Server serves one workspace over HTTP.
type Server struct {
	mu sync.Mutex
	ws *workspace.Workspace

	addr   string
	runner *pipeline.Runner
	logger *log.Logger
	tmpl   *template.Template
}

// Option configures a Server.
type Option func(*Server)

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	return func(s *Server) {
		if addr != "" {
			s.addr = addr
		}
	}
}

// WithLogger sets the logger used for request and export logging.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCache sets the cache backing PNG exports.
func WithCache(c cache.Cache) Option {
	return func(s *Server) {
		s.runner.Cache = c
	}
}

// New creates a server for ws. Without options it listens on [DefaultAddr],
// logs through log.Default() and caches exports in memory.
func New(ws *workspace.Workspace, opts ...Option) (*Server, error) {
	tmpl, err := template.New("index").ParseFS(assetsFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	c, err := cache.NewLRUCache(cache.DefaultLRUSize)
	if err != nil {
		return nil, err
	}

	s := &Server{
		ws:     ws,
		addr:   DefaultAddr,
		logger: log.Default(),
		tmpl:   tmpl,
		runner: pipeline.NewRunner(c, nil, nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.runner.Logger = s.logger
	return s, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.addr }

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Get("/static/app.js", s.handleAsset("static/app.js", "application/javascript; charset=utf-8"))
	r.Get("/static/app.css", s.handleAsset("static/app.css", "text/css; charset=utf-8"))
	r.Get("/default-swot.json", s.handleDefaultDocument)

	r.Get("/"+pipeline.KindSWOT.Filename(), s.handleExport(pipeline.KindSWOT))
	r.Get("/"+pipeline.KindMatrix.Filename(), s.handleExport(pipeline.KindMatrix))

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", s.handleState)
		r.Post("/generate", s.handleGenerate)
		r.Get("/matrix", s.handleMatrix)
		r.Post("/matrix", s.handleRebuildMatrix)
		r.Put("/strategies/{key}", s.handleEditStrategy)
		r.Delete("/strategies", s.handleClearStrategies)
		r.Post("/load", s.handleLoad)
		r.Get("/document", s.handleDocument)
	})
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("serving", "addr", "http://"+s.addr)

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

// logRequests logs every request and reports it to the HTTP hooks.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		dur := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, status, dur)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", dur)
	})
}

// locked runs fn with exclusive access to the workspace.
func (s *Server) locked(fn func(ws *workspace.Workspace) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.ws)
}
