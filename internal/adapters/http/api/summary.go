// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// SummaryHandler serves the summary statistics view.
type SummaryHandler struct {
	deps        Dependencies
	maxQueryLen int
}

// NewSummaryHandler creates a new summary handler.
func NewSummaryHandler(deps Dependencies, maxQueryLen int) *SummaryHandler {
	return &SummaryHandler{deps: deps, maxQueryLen: maxQueryLen}
}

// HandleGetSummary handles GET /api/summary?q=&diet= requests.
func (h *SummaryHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, views.Summary)
}
