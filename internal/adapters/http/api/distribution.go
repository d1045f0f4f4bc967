// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// DistributionHandler serves the diet-tag distribution view.
type DistributionHandler struct {
	deps        Dependencies
	maxQueryLen int
}

// NewDistributionHandler creates a new distribution handler.
func NewDistributionHandler(deps Dependencies, maxQueryLen int) *DistributionHandler {
	return &DistributionHandler{deps: deps, maxQueryLen: maxQueryLen}
}

// HandleGetDistribution handles GET /api/distribution?q=&diet= requests.
// Zero-count categories are omitted; an empty filtered set yields [].
func (h *DistributionHandler) HandleGetDistribution(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, views.Distribution)
}
