// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// RecipesHandler serves the filtered recipe set.
type RecipesHandler struct {
	deps        Dependencies
	maxQueryLen int
}

// NewRecipesHandler creates a new recipes handler.
func NewRecipesHandler(deps Dependencies, maxQueryLen int) *RecipesHandler {
	return &RecipesHandler{deps: deps, maxQueryLen: maxQueryLen}
}

// HandleGetRecipes handles GET /api/recipes?q=&diet= requests.
func (h *RecipesHandler) HandleGetRecipes(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, views.Filtered)
}
