// Package server is the HTTP glue around the analysis pipeline: multipart
// upload in, JSON AnalysisResult out. It performs no analysis of its own.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ChicagoSwoles/PDF-Intelligence/pipeline"
)

// Server exposes the analysis pipeline over HTTP.
type Server struct {
	cfg  *Config
	pipe *pipeline.Pipeline
	log  *slog.Logger
}

// New creates a Server. A nil logger falls back to the process default.
func New(cfg *Config, pipe *pipeline.Pipeline, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{cfg: cfg, pipe: pipe, log: log}
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Post("/analyze", s.handleAnalyze)
	r.Get("/healthz", s.handleHealth)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
