// Package server exposes the record store over HTTP for local tooling.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/atelierhq/atelier/internal/store"
)

// Server serves read and mutation endpoints over the store. Mutations run
// the same store pipeline as CLI commands, so registered observers (for
// example the snapshot writer) fire on every change.
type Server struct {
	store *store.Store
	reg   *prometheus.Registry
	log   zerolog.Logger
}

// New creates a Server over st. Gauges registered on reg are exposed at
// /metrics.
func New(st *store.Store, reg *prometheus.Registry, log zerolog.Logger) *Server {
	return &Server{store: st, reg: reg, log: log}
}

// Router builds the chi router for the server.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", s.handleHealth)
	r.Get("/artworks", s.handleListArtworks)
	r.Get("/artworks/{id}", s.handleGetArtwork)
	r.Post("/artworks/{id}/like", s.handleToggleLike)
	r.Get("/requests", s.handleListRequests)
	r.Get("/requests/active", s.handleListActiveRequests)
	r.Post("/requests/{id}/complete", s.handleCompleteRequest)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.reg, promhttp.HandlerOpts{}))

	return r
}

// ListenAndServe blocks serving the router on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.log.Info().Str("addr", addr).Msg("atelier server listening")
	return http.ListenAndServe(addr, s.Router())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) handleListArtworks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.store.AllArtworks())
}

func (s *Server) handleGetArtwork(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	a, ok := s.store.GetArtwork(id)
	if !ok {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
		return
	}
	writeJSON(w, a)
}

func (s *Server) handleToggleLike(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	// ToggleLike on an unknown id is a logged no-op in the store; surface
	// not-found here so HTTP callers get a status to check.
	if _, ok := s.store.GetArtwork(id); !ok {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
		return
	}
	s.store.ToggleLike(id)
	writeJSON(w, map[string]bool{"liked": s.store.HasLiked(id)})
}

func (s *Server) handleListRequests(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.store.AllRequests())
}

func (s *Server) handleListActiveRequests(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.store.ActiveRequests())
}

func (s *Server) handleCompleteRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.store.CompleteRequest(id) {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
		return
	}
	writeJSON(w, map[string]string{"status": "completed"})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
