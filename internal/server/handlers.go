package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	stdio "io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	apperr "github.com/matzehuels/swotboard/pkg/errors"
	"github.com/matzehuels/swotboard/pkg/io"
	"github.com/matzehuels/swotboard/pkg/pipeline"
	"github.com/matzehuels/swotboard/pkg/workspace"
)

// maxDocumentSize caps uploaded documents.
const maxDocumentSize = 1 << 20

type indexVM struct {
	Input     inputView
	Generated bool
	Revision  string
	Matrix    *matrixView
	Orphans   []string
}

// GridStyle sizes the matrix tracks; the values come from the layout, not
// from user input.
func (vm indexVM) GridStyle() template.CSS {
	if vm.Matrix == nil {
		return ""
	}
	return template.CSS(fmt.Sprintf("grid-template-columns: %s; grid-template-rows: %s;",
		vm.Matrix.TemplateColumns, vm.Matrix.TemplateRows))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var vm indexVM
	_ = s.locked(func(ws *workspace.Workspace) error {
		st := newStateView(ws)
		vm = indexVM{
			Input:     st.Input,
			Generated: st.Generated,
			Revision:  st.Revision,
			Matrix:    st.Matrix,
			Orphans:   st.Orphans,
		}
		return nil
	})

	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "index.html", vm); err != nil {
		s.logger.Error("render page", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleAsset(name, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := assetsFS.ReadFile(name)
		if err != nil || len(b) == 0 {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(b)
	}
}

func (s *Server) handleDefaultDocument(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write(io.DefaultJSON())
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.respondState(w, r, func(*workspace.Workspace) error { return nil })
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var in inputView
	if err := decodeJSON(r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respondState(w, r, func(ws *workspace.Workspace) error {
		return ws.Generate(r.Context(), in.input())
	})
}

func (s *Server) handleMatrix(w http.ResponseWriter, r *http.Request) {
	var mv *matrixView
	err := s.locked(func(ws *workspace.Workspace) error {
		g := ws.Grid()
		if g == nil {
			return apperr.New(apperr.ErrCodeNotGenerated, "generate the SWOT analysis first")
		}
		mv = newMatrixView(g)
		return nil
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mv)
}

func (s *Server) handleRebuildMatrix(w http.ResponseWriter, r *http.Request) {
	s.respondState(w, r, func(ws *workspace.Workspace) error {
		_, err := ws.RebuildMatrix(r.Context())
		return err
	})
}

type strategyRequest struct {
	Text string `json:"text"`
}

type strategyResponse struct {
	Key      string `json:"key"`
	Text     string `json:"text"`
	Revision string `json:"revision"`
}

func (s *Server) handleEditStrategy(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	var req strategyRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	var resp strategyResponse
	err := s.locked(func(ws *workspace.Workspace) error {
		if err := ws.Edit(r.Context(), key, req.Text); err != nil {
			return err
		}
		resp = strategyResponse{Key: key, Text: req.Text, Revision: ws.Revision()}
		return nil
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleClearStrategies(w http.ResponseWriter, r *http.Request) {
	confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))
	confirm := func(string) bool { return confirmed }
	s.respondState(w, r, func(ws *workspace.Workspace) error {
		return ws.ClearMatrix(r.Context(), confirm)
	})
}

// handleLoad applies the posted document, or the built-in example when the
// body is empty. TOML is accepted with Content-Type application/toml.
func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	body, err := stdio.ReadAll(http.MaxBytesReader(w, r.Body, maxDocumentSize))
	if err != nil {
		s.writeError(w, r, apperr.Wrap(apperr.ErrCodeLoadFailure, err, "could not read the document"))
		return
	}

	if len(bytes.TrimSpace(body)) == 0 {
		s.respondState(w, r, func(ws *workspace.Workspace) error {
			return ws.LoadDefault(r.Context())
		})
		return
	}

	read := io.ReadJSON
	if strings.Contains(r.Header.Get("Content-Type"), "toml") {
		read = io.ReadTOML
	}
	doc, err := read(bytes.NewReader(body))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respondState(w, r, func(ws *workspace.Workspace) error {
		return ws.Load(r.Context(), "upload", doc)
	})
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	err := s.locked(func(ws *workspace.Workspace) error {
		return io.WriteJSON(ws.Snapshot(), &buf)
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="swot.json"`)
	_, _ = buf.WriteTo(w)
}

// handleExport serves a PNG export. Downloads are sent as attachments;
// ?inline=1 serves the image for display on the page.
func (s *Server) handleExport(k pipeline.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var data []byte
		err := s.locked(func(ws *workspace.Workspace) error {
			var err error
			data, _, err = s.runner.ExportOne(r.Context(), pipeline.Request{Workspace: ws}, k)
			return err
		})
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		disposition := "attachment"
		if inline, _ := strconv.ParseBool(r.URL.Query().Get("inline")); inline {
			disposition = "inline"
		}
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, k.Filename()))
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(data)
	}
}

// respondState runs fn under the lock and answers with the resulting state.
func (s *Server) respondState(w http.ResponseWriter, r *http.Request, fn func(ws *workspace.Workspace) error) {
	var st stateView
	err := s.locked(func(ws *workspace.Workspace) error {
		if err := fn(ws); err != nil {
			return err
		}
		st = newStateView(ws)
		return nil
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return apperr.Wrap(apperr.ErrCodeInvalidFormat, err, "request body is not valid JSON")
	}
	return nil
}

type errorResponse struct {
	Code  apperr.Code `json:"code"`
	Error string      `json:"error"`
}

// statusFor maps error codes to HTTP statuses.
func statusFor(code apperr.Code) int {
	switch code {
	case apperr.ErrCodeEmptyInput:
		return http.StatusUnprocessableEntity
	case apperr.ErrCodeLoadFailure, apperr.ErrCodeInvalidKey, apperr.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case apperr.ErrCodeConfirmationRequired, apperr.ErrCodeNotGenerated:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperr.GetCode(err)
	if code == "" {
		code = apperr.ErrCodeInternal
	}
	status := statusFor(code)
	msg := apperr.Detail(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
		msg = "internal error"
	} else {
		s.logger.Debug("request rejected", "path", r.URL.Path, "code", code, "err", msg)
	}
	writeJSON(w, status, errorResponse{Code: code, Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
