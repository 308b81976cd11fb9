// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/pandacall/skills-getting-started-with-github-copilot/internal/domain/roster"
)

// Roster action path segments under /activities/{name}/.
const (
	actionSignup     = "signup"
	actionUnregister = "unregister"
)

// RosterHandler handles signup and unregister requests.
type RosterHandler struct {
	deps Dependencies
}

// NewRosterHandler creates a new roster handler.
func NewRosterHandler(deps Dependencies) *RosterHandler {
	return &RosterHandler{deps: deps}
}

// HandleRosterAction handles POST /activities/{name}/signup and
// POST /activities/{name}/unregister requests. The activity name segment
// arrives percent-decoded on r.URL.Path, so "Chess%20Club" matches the
// "Chess Club" registry key.
func (h *RosterHandler) HandleRosterAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/activities/")
	idx := strings.LastIndex(rest, "/")
	if idx <= 0 {
		http.NotFound(w, r)
		return
	}
	name, action := rest[:idx], rest[idx+1:]
	if action != actionSignup && action != actionUnregister {
		http.NotFound(w, r)
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		writeDetail(w, http.StatusBadRequest, "Missing email query parameter")
		return
	}

	switch action {
	case actionSignup:
		if err := h.deps.Signup(r.Context(), name, email); err != nil {
			h.writeRosterError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{
			Message: fmt.Sprintf("Signed up %s for %s", email, name),
		})
	case actionUnregister:
		if err := h.deps.Unregister(r.Context(), name, email); err != nil {
			h.writeRosterError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{
			Message: fmt.Sprintf("Unregistered %s from %s", email, name),
		})
	}
}

// writeRosterError maps registry errors to the HTTP error contract.
func (h *RosterHandler) writeRosterError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, roster.ErrAlreadyRegistered):
		writeDetail(w, http.StatusBadRequest, "Student is already signed up")
	case errors.Is(err, roster.ErrNotRegistered):
		writeDetail(w, http.StatusBadRequest, "Student is not registered")
	case isNotFound(err):
		writeDetail(w, http.StatusNotFound, "Activity not found")
	default:
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
	}
}
