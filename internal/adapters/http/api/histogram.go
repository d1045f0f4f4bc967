// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// HistogramHandler serves the cooking-time histogram view.
type HistogramHandler struct {
	deps        Dependencies
	maxQueryLen int
}

// NewHistogramHandler creates a new histogram handler.
func NewHistogramHandler(deps Dependencies, maxQueryLen int) *HistogramHandler {
	return &HistogramHandler{deps: deps, maxQueryLen: maxQueryLen}
}

// HandleGetHistogram handles GET /api/histogram?q=&diet= requests.
// All four buckets are always present, zero counts included.
func (h *HistogramHandler) HandleGetHistogram(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, views.Buckets)
}
