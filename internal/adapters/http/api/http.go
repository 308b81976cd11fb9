// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pandacall/skills-getting-started-with-github-copilot/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// ListActivities exposes the full registry snapshot keyed by name.
	ListActivities(ctx context.Context) map[string]Activity

	// Signup enrolls email in the named activity.
	Signup(ctx context.Context, name, email string) error

	// Unregister withdraws email from the named activity.
	Unregister(ctx context.Context, name, email string) error
}

// Activity mirrors the read shape returned by registry queries.
type Activity = types.Activity

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	activitiesHandler *ActivitiesHandler
	rosterHandler     *RosterHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		activitiesHandler: NewActivitiesHandler(deps),
		rosterHandler:     NewRosterHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", RequestIDMiddleware(MetricsMiddleware(s.healthHandler.HandleHealth, "healthz")))
	mux.HandleFunc("/stats", RequestIDMiddleware(MetricsMiddleware(s.statsHandler.HandleStats, "stats")))
	mux.HandleFunc("/activities", RequestIDMiddleware(MetricsMiddleware(s.activitiesHandler.HandleListActivities, "activities")))
	mux.HandleFunc("/activities/", RequestIDMiddleware(MetricsMiddleware(s.rosterHandler.HandleRosterAction, "roster")))
}

// messageResponse is the success body for roster mutations.
type messageResponse struct {
	Message string `json:"message"`
}

// detailResponse is the error body shared by all failure modes.
type detailResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailResponse{Detail: detail})
}

// isNotFound allows the API to translate upstream not-found errors to 404
// without coupling the handler layer to the repository package.
func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "not found")
}
