// Package api exposes the tier reports over a JSON API. Thin surface: every
// handler reads from the intelligence service and serializes; the engine
// stays the single source of truth.
package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"prosignal/app"
	"prosignal/domain/core"
	"prosignal/domain/report"
	"prosignal/internal/errors"
)

// Server serves the JSON report API
type Server struct {
	router *chi.Mux
	svc    *app.IntelligenceService
}

// NewServer creates the API server around an intelligence service
func NewServer(svc *app.IntelligenceService) *Server {
	s := &Server{
		router: chi.NewRouter(),
		svc:    svc,
	}

	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/reports/{tier}", s.handleReport)
		r.Get("/stats", s.handleStats)
		r.Get("/queries", s.handleQueries)
	})
	return s
}

// Router returns the underlying handler for mounting
func (s *Server) Router() http.Handler {
	return s.router
}

// ListenAndServe blocks serving the API on the given port
func (s *Server) ListenAndServe(port string) error {
	log.Printf("[API] Listening on :%s", port)
	return http.ListenAndServe(":"+port, s.router)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"signals": s.svc.Engine().Count(),
	})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	tier, err := report.ParseTier(chi.URLParam(r, "tier"))
	if err != nil {
		writeError(w, http.StatusNotFound, errors.NotFound("report tier"))
		return
	}

	engine := s.svc.Engine()
	var payload interface{}
	switch tier {
	case report.TierExecutive:
		payload = engine.GenerateExecutive()
	case report.TierStrategic:
		payload = engine.GenerateStrategic()
	case report.TierInterventions:
		payload = engine.GenerateInterventions()
	case report.TierDetail:
		payload = engine.GenerateDetail()
	}
	writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Engine().Stats())
}

func (s *Server) handleQueries(w http.ResponseWriter, r *http.Request) {
	queries, err := s.svc.Queries(r.Context())
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, queries)
}

// statusFor maps domain error classes onto HTTP statuses
func statusFor(err error) int {
	switch {
	case core.IsNotFoundError(err):
		return http.StatusNotFound
	case core.IsInputError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[API] Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{
		"error": err.Error(),
		"code":  errors.GetCode(err),
	})
}
