// Package server implements the archdiag preview server: a small HTTP API
// that renders catalog diagrams on request, so authors can iterate on a
// diagram with a browser refresh instead of a docs rebuild.
//
// Routes:
//
//	GET /healthz             "ok"
//	GET /diagrams            JSON list of catalog entries
//	GET /diagrams/{file}     rendered diagram, file = <name>.<format>
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/doctran/archdiag/pkg/catalog"
	apperrors "github.com/doctran/archdiag/pkg/errors"
	"github.com/doctran/archdiag/pkg/observability"
	"github.com/doctran/archdiag/pkg/pipeline"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = "127.0.0.1:8080"

const shutdownTimeout = 5 * time.Second

// Server serves rendered diagrams over HTTP.
type Server struct {
	runner *pipeline.Runner
	opts   pipeline.Options
	logger *log.Logger
	router chi.Router
}

// New creates a server rendering through runner. Only the GraphAttr,
// Refresh and TTL fields of opts are used; formats come from the request.
func New(runner *pipeline.Runner, opts pipeline.Options, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{runner: runner, opts: opts, logger: logger}
	s.opts.Logger = logger

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Get("/healthz", s.handleHealth)
	r.Get("/diagrams", s.handleList)
	r.Get("/diagrams/{file}", s.handleDiagram)
	s.router = r
	return s
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "listen on %s", addr)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is canceled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", "url", "http://"+ln.Addr().String()+"/diagrams")
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down preview server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		observability.Server().OnRequest(r.Context(), r.Method, route, ww.Status(), time.Since(start))
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// EntryInfo is one element of the /diagrams listing.
type EntryInfo struct {
	Name     string `json:"name"`
	Dir      string `json:"dir"`
	Title    string `json:"title,omitempty"`
	Nodes    int    `json:"nodes"`
	Edges    int    `json:"edges"`
	Clusters int    `json:"clusters"`
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	entries := catalog.All()
	out := make([]EntryInfo, 0, len(entries))
	for _, e := range entries {
		d, err := s.runner.Build(e)
		if err != nil {
			s.writeError(w, err)
			return
		}
		out = append(out, EntryInfo{
			Name:     e.Name,
			Dir:      e.Dir,
			Title:    d.Title(),
			Nodes:    d.NodeCount(),
			Edges:    d.EdgeCount(),
			Clusters: d.ClusterCount(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	name, format, err := splitFile(chi.URLParam(r, "file"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, err)
		return
	}
	e, err := catalog.Lookup(name)
	if err != nil {
		s.writeError(w, err)
		return
	}
	d, err := s.runner.Build(e)
	if err != nil {
		s.writeError(w, err)
		return
	}

	data, hit, err := s.runner.RenderFormat(r.Context(), d, format, s.opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", pipeline.ContentType(format))
	w.Header().Set("Cache-Control", "no-cache")
	if hit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	_, _ = w.Write(data)
}

// splitFile splits "<name>.<format>" at the last dot.
func splitFile(file string) (name, format string, err error) {
	i := strings.LastIndexByte(file, '.')
	if i <= 0 || i == len(file)-1 {
		return "", "", apperrors.New(apperrors.ErrCodeInvalidInput, "expected <name>.<format>, got %q", file)
	}
	return file[:i], file[i+1:], nil
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	code := apperrors.GetCode(err)
	if code == "" {
		code = apperrors.ErrCodeInternal
	}
	writeJSON(w, status, errorBody{Error: apperrors.UserMessage(err), Code: string(code)})
}

func statusFor(err error) int {
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidFormat, apperrors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
