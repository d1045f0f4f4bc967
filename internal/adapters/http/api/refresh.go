// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"fmt"
	"net/http"
)

// refreshResponse acknowledges a collection reload.
type refreshResponse struct {
	Status string `json:"status"`
}

// RefreshHandler triggers a collection reload from the source.
type RefreshHandler struct {
	deps Dependencies
}

// NewRefreshHandler creates a new refresh handler.
func NewRefreshHandler(deps Dependencies) *RefreshHandler {
	return &RefreshHandler{deps: deps}
}

// HandlePostRefresh handles POST /api/refresh requests.
func (h *RefreshHandler) HandlePostRefresh(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_refresh"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	if err := h.deps.Refresh(r.Context()); err != nil {
		writeError(w, http.StatusBadGateway, "refresh_failed", fmt.Errorf("%s: %w: %w", op, ErrRefresh, err))
		return
	}
	writeJSON(w, http.StatusOK, refreshResponse{Status: "refreshed"})
}
