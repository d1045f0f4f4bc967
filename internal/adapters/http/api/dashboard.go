// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// DashboardHandler serves every derived view in one payload, so the
// presentation layer can re-pull the whole dashboard atomically.
type DashboardHandler struct {
	deps        Dependencies
	maxQueryLen int
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(deps Dependencies, maxQueryLen int) *DashboardHandler {
	return &DashboardHandler{deps: deps, maxQueryLen: maxQueryLen}
}

// HandleGetDashboard handles GET /api/dashboard?q=&diet= requests.
func (h *DashboardHandler) HandleGetDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	c, err := criteriaFromRequest(r, h.maxQueryLen)
	if err != nil {
		writeError(w, http.StatusBadRequest, "query_too_long", err)
		return
	}
	views := h.deps.Views(r.Context(), c)
	writeJSON(w, http.StatusOK, views)
}
