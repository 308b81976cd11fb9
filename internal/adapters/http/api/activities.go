// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// ActivitiesHandler handles registry enumeration requests.
type ActivitiesHandler struct {
	deps Dependencies
}

// NewActivitiesHandler creates a new activities handler.
func NewActivitiesHandler(deps Dependencies) *ActivitiesHandler {
	return &ActivitiesHandler{deps: deps}
}

// HandleListActivities handles GET /activities requests. The response is a
// JSON object mapping activity name to its record, participants included.
func (h *ActivitiesHandler) HandleListActivities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.ListActivities(r.Context()))
}
