// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/platterhq/platter/internal/domain/model"
	"github.com/platterhq/platter/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Views recomputes every derived view for the given criteria.
	Views(ctx context.Context, c model.Criteria) types.Views

	// Refresh reloads the recipe collection from the source.
	Refresh(ctx context.Context) error
}

// defaultMaxQueryLength bounds the q parameter when no option is given.
const defaultMaxQueryLength = 256

// Server wires HTTP routes for the business API.
type Server struct {
	maxQueryLen int

	healthHandler       *HealthHandler
	statsHandler        *StatsHandler
	recipesHandler      *RecipesHandler
	summaryHandler      *SummaryHandler
	histogramHandler    *HistogramHandler
	distributionHandler *DistributionHandler
	dashboardHandler    *DashboardHandler
	refreshHandler      *RefreshHandler
}

// Option applies a configuration option to the Server.
type Option func(*Server)

// WithMaxQueryLength bounds the q search parameter. Requests with a
// longer query are rejected with 400.
func WithMaxQueryLength(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxQueryLen = n
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...Option) *Server {
	s := &Server{maxQueryLen: defaultMaxQueryLength}

	for _, opt := range opts {
		opt(s)
	}

	s.healthHandler = NewHealthHandler()
	s.statsHandler = NewStatsHandler(statsProvider)
	s.recipesHandler = NewRecipesHandler(deps, s.maxQueryLen)
	s.summaryHandler = NewSummaryHandler(deps, s.maxQueryLen)
	s.histogramHandler = NewHistogramHandler(deps, s.maxQueryLen)
	s.distributionHandler = NewDistributionHandler(deps, s.maxQueryLen)
	s.dashboardHandler = NewDashboardHandler(deps, s.maxQueryLen)
	s.refreshHandler = NewRefreshHandler(deps)

	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/recipes", MetricsMiddleware(s.recipesHandler.HandleGetRecipes, "recipes"))
	mux.HandleFunc("/api/summary", MetricsMiddleware(s.summaryHandler.HandleGetSummary, "summary"))
	mux.HandleFunc("/api/histogram", MetricsMiddleware(s.histogramHandler.HandleGetHistogram, "histogram"))
	mux.HandleFunc("/api/distribution", MetricsMiddleware(s.distributionHandler.HandleGetDistribution, "distribution"))
	mux.HandleFunc("/api/dashboard", MetricsMiddleware(s.dashboardHandler.HandleGetDashboard, "dashboard"))
	mux.HandleFunc("/api/refresh", MetricsMiddleware(s.refreshHandler.HandlePostRefresh, "refresh"))
}

// criteriaFromRequest parses the shared q/diet query parameters. Both
// are optional: an absent query matches everything and an unrecognized
// diet fails open to "all". A query longer than maxQueryLen is the one
// rejected input.
func criteriaFromRequest(r *http.Request, maxQueryLen int) (model.Criteria, error) {
	q := r.URL.Query()

	query := q.Get("q")
	if maxQueryLen > 0 && len(query) > maxQueryLen {
		return model.Criteria{}, fmt.Errorf("%w: query longer than %d characters", ErrBadRequest, maxQueryLen)
	}

	return model.Criteria{
		Query: query,
		Diet:  model.ParseDiet(q.Get("diet")),
	}, nil
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
