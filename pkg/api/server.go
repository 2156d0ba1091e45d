// Package api exposes the route progress engine over HTTP. It is a thin
// consumer shim: every response is a straight serialization of what the
// tracker computes.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/trekline/server/pkg/infrastructure/sentry"
	"github.com/trekline/server/pkg/routes"
	activitysync "github.com/trekline/server/pkg/sync"
	"github.com/trekline/server/pkg/tracker"
)

type Server struct {
	tracker *tracker.Tracker
	logger  *slog.Logger
}

// NewRouter builds the HTTP routes over the tracker.
func NewRouter(t *tracker.Tracker, logger *slog.Logger) http.Handler {
	s := &Server{tracker: t, logger: logger.With("component", "api")}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/routes", s.handleRoutes)
		r.Get("/routes/active", s.handleActiveRoute)
		r.Post("/routes/{id}/activate", s.handleActivate)
		r.Get("/progress", s.handleProgress)
		r.Get("/progress/path", s.handlePath)
		r.Post("/sync", s.handleSync)
		r.Get("/poi", s.handlePOI)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRoutes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tracker.Routes())
}

func (s *Server) handleActiveRoute(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tracker.ActiveRoute())
}

func (s *Server) handleActivate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := routes.Lookup(id); !ok {
		writeError(w, http.StatusNotFound, "unknown route")
		return
	}

	if err := s.tracker.SwitchRoute(r.Context(), id); err != nil {
		s.logger.Error("Route switch failed", "route_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to switch route")
		return
	}

	writeJSON(w, http.StatusOK, s.tracker.ActiveRoute())
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	snap, err := s.tracker.Progress(r.Context())
	if err != nil {
		s.logger.Error("Progress projection failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to compute progress")
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handlePath(w http.ResponseWriter, r *http.Request) {
	completed, remaining, err := s.tracker.PathSplit(r.Context())
	if err != nil {
		s.logger.Error("Path split failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to compute path")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"completed": completed,
		"remaining": remaining,
	})
}

func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	res := s.tracker.Sync(r.Context())
	if res.Err != nil {
		sentry.CaptureException(res.Err, map[string]interface{}{
			"category": string(res.Err.Category),
		}, s.logger)
		writeJSON(w, syncStatusCode(res.Err.Category), map[string]interface{}{
			"gain_miles": 0,
			"error":      res.Err.UserMessage(),
			"category":   res.Err.Category,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"gain_miles": res.GainMiles,
	})
}

func (s *Server) handlePOI(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	pois, err := s.tracker.NearestPointsOfInterest(r.Context(), limit)
	if err != nil {
		s.logger.Error("POI lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to look up points of interest")
		return
	}
	writeJSON(w, http.StatusOK, pois)
}

// syncStatusCode maps a sync failure category onto an HTTP status for the
// shim's own response. The category itself is what consumers act on.
func syncStatusCode(c activitysync.Category) int {
	switch c {
	case activitysync.CategoryNotAuthenticated, activitysync.CategoryUnauthorized:
		return http.StatusUnauthorized
	case activitysync.CategoryRateLimited:
		return http.StatusTooManyRequests
	case activitysync.CategoryProviderUnavailable, activitysync.CategoryInvalidResponse:
		return http.StatusBadGateway
	default:
		return http.StatusServiceUnavailable
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("Request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
