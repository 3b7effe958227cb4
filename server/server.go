// Package server exposes the taper-model computations over HTTP for
// integration with the wider inventory tooling.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	treevol "github.com/bikuz/carbonapi-sub001"
)

// Server is the HTTP API around one calibrated model.
type Server struct {
	router chi.Router
	par    *treevol.Parameter
	pol    treevol.BreakPolicy
	log    *slog.Logger
}

// New creates and configures the HTTP server.
func New(par *treevol.Parameter, pol treevol.BreakPolicy, log *slog.Logger) *Server {
	s := &Server{par: par, pol: pol, log: log}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.log))

	r.Get("/health", s.handleHealth)
	r.Post("/api/volume-ratio", s.handleVolumeRatio)
	r.Post("/api/volume", s.handleVolume)
	r.Post("/api/taper", s.handleTaper)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t0 := time.Now()
			next.ServeHTTP(w, r)
			log.Info("request", "method", r.Method, "path", r.URL.Path, "elapsed", time.Since(t0))
		})
	}
}
