// Package api provides the HTTP server for EcoTrack.
// It exposes the tracker operations as a small JSON REST API for the
// browser dashboard and any local tooling.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ecotrack-app/ecotrack/internal/app/tracker"
	"github.com/ecotrack-app/ecotrack/internal/health"
)

// Server is the EcoTrack HTTP API server.
type Server struct {
	session        *tracker.Session
	checker        *health.Checker
	version        string
	metricsEnabled bool
}

// NewServer creates a new API server over the tracker session.
func NewServer(session *tracker.Session, version string) *Server {
	return &Server{session: session, version: version}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// SetHealthChecker wires the daemon's health checker into /health.
func (s *Server) SetHealthChecker(c *health.Checker) { s.checker = c }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(corsMiddleware)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/version", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
		})

		r.Get("/practices", s.handleListPractices)
		r.Post("/practices/{id}/toggle", s.handleTogglePractice)

		r.Route("/quiz", func(r chi.Router) {
			r.Post("/start", s.handleStartQuiz)
			r.Post("/answer", s.handleAnswerQuiz)
			r.Post("/advance", s.handleAdvanceQuiz)
		})

		r.Post("/footprint", s.handleFootprint)

		r.Get("/progress", s.handleProgress)
		r.Get("/achievements", s.handleAchievements)
		r.Put("/streak", s.handleSetStreak)
	})

	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.checker == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}

	status := http.StatusOK
	overall := "ok"
	if !s.checker.IsHealthy() {
		status = http.StatusServiceUnavailable
		overall = "degraded"
	}
	writeJSON(w, status, map[string]interface{}{
		"status": overall,
		"checks": s.checker.Statuses(),
	})
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}

// corsMiddleware adds CORS headers for the local dashboard.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
