// Package app provides the core business service that implements
// the dependencies required by the HTTP API.
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/platterhq/platter/internal/adapters/repository"
	"github.com/platterhq/platter/internal/adapters/source"
	"github.com/platterhq/platter/internal/domain/aggregate"
	"github.com/platterhq/platter/internal/domain/model"
	"github.com/platterhq/platter/internal/domain/types"
	"github.com/platterhq/platter/pkg/logger"
	"github.com/platterhq/platter/pkg/metrics"
)

// Service wires the recipe source, the catalog, and the pure pipeline
// together for the HTTP layer.
type Service struct {
	mu sync.RWMutex

	// Core components
	catalog repository.Catalog
	recipes source.Source

	// State
	started      bool
	fallbackUsed bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithSource sets the recipe source.
func WithSource(src source.Source) Option {
	return func(s *Service) {
		if src != nil {
			s.recipes = src
		}
	}
}

// WithCatalog sets the collection store.
func WithCatalog(catalog repository.Catalog) Option {
	return func(s *Service) {
		if catalog != nil {
			s.catalog = catalog
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		catalog: repository.NewInMemoryCatalog(),
		recipes: source.NewMockSource(),
		logger:  nil, // resolved on Start
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start loads the initial collection from the source. The collection
// is loaded once per session; later reloads go through Refresh.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting dashboard service...")

	if err := s.load(ctx); err != nil {
		return fmt.Errorf("initial recipe load: %w", err)
	}

	s.started = true
	s.logger.Info(ctx, "dashboard service started",
		logger.Int("recipes", s.catalog.Count(ctx)),
		logger.String("source", s.recipes.Kind()),
	)

	return nil
}

// Stop shuts the service down. The catalog is in-memory only, so there
// is nothing to flush.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "dashboard service stopped")
}

// Refresh re-fetches the collection from the source and swaps it in.
func (s *Service) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(ctx); err != nil {
		return fmt.Errorf("recipe refresh: %w", err)
	}

	s.logger.Info(ctx, "recipe collection refreshed",
		logger.Int("recipes", s.catalog.Count(ctx)),
		logger.Int64("generation", s.catalog.Generation(ctx)),
	)
	return nil
}

// load fetches and stores a collection. Caller holds s.mu.
func (s *Service) load(ctx context.Context) error {
	recipes, err := s.recipes.Fetch(ctx)
	if err != nil {
		return err
	}
	s.catalog.Replace(ctx, recipes)
	s.fallbackUsed = s.recipes.Kind() == "mock"
	return nil
}

// Views recomputes every derived view for the given criteria over the
// current collection. The snapshot copy pins one generation for the
// whole recomputation, so a concurrent Refresh never tears a result.
func (s *Service) Views(ctx context.Context, c model.Criteria) types.Views {
	start := time.Now()

	views := aggregate.Recompute(s.catalog.All(ctx), c)

	metrics.RecordRecomputeDuration(float64(time.Since(start).Milliseconds()))
	metrics.RecordFilteredSetSize(len(views.Filtered))
	return views
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	return map[string]interface{}{
		"started":      s.started,
		"recipes":      s.catalog.Count(ctx),
		"generation":   s.catalog.Generation(ctx),
		"source":       s.recipes.Kind(),
		"fallbackUsed": s.fallbackUsed,
	}
}
