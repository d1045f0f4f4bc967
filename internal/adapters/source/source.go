// Package source supplies the recipe collection consumed by the core
// pipeline. It hides whether the collection came from the upstream API
// or from the local mock generator; downstream code only ever sees a
// validated []model.Recipe.
package source

import (
	"context"

	"github.com/platterhq/platter/internal/domain/model"
	"github.com/platterhq/platter/pkg/logger"
	"github.com/platterhq/platter/pkg/metrics"
)

// Source yields the current recipe collection.
type Source interface {
	// Fetch retrieves a validated recipe collection, honoring ctx.
	Fetch(ctx context.Context) ([]model.Recipe, error)

	// Kind names the source for logging and stats.
	Kind() string
}

// Fallback tries a primary source and resolves any failure into the
// secondary one, so callers always receive a usable collection. The
// core is never handed a sentinel error value in place of recipes.
type Fallback struct {
	primary   Source
	secondary Source
	log       logger.Logger

	lastKind string
}

// NewFallback creates a fallback source over primary and secondary.
func NewFallback(primary, secondary Source) *Fallback {
	return &Fallback{
		primary:   primary,
		secondary: secondary,
		log:       logger.Named("source"),
	}
}

// Fetch returns the primary collection, or the secondary one when the
// primary fails for any reason.
func (f *Fallback) Fetch(ctx context.Context) ([]model.Recipe, error) {
	recipes, err := f.primary.Fetch(ctx)
	if err == nil {
		f.lastKind = f.primary.Kind()
		metrics.UpdateSourceRecipes(len(recipes))
		return recipes, nil
	}

	f.log.Warn(ctx, "primary source failed, falling back",
		logger.String("primary", f.primary.Kind()),
		logger.String("secondary", f.secondary.Kind()),
		logger.Error(err),
	)
	metrics.RecordSourceFallback()

	recipes, err = f.secondary.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	f.lastKind = f.secondary.Kind()
	metrics.UpdateSourceRecipes(len(recipes))
	return recipes, nil
}

// Kind reports which underlying source served the last fetch.
func (f *Fallback) Kind() string {
	if f.lastKind == "" {
		return "fallback"
	}
	return f.lastKind
}
