// Package repository holds the current recipe collection between
// source fetches. The collection is immutable once stored; updates
// replace it wholesale under a new generation.
package repository

import (
	"context"
	"sync"
	"time"

	"github.com/platterhq/platter/internal/domain/model"
	"github.com/platterhq/platter/pkg/metrics"
)

// Catalog provides read access to the collection and atomic replacement.
type Catalog interface {
	// Replace swaps in a new collection, bumping the generation.
	// Records with a duplicate id are dropped, first occurrence wins.
	Replace(ctx context.Context, recipes []model.Recipe)

	// All returns a copy of the current collection in stored order.
	All(ctx context.Context) []model.Recipe

	// Count returns the current collection size.
	Count(ctx context.Context) int

	// Generation returns the monotonic collection generation. It is 0
	// until the first Replace.
	Generation(ctx context.Context) int64
}

// InMemoryCatalog implements Catalog with a mutex-guarded slice.
type InMemoryCatalog struct {
	mu         sync.RWMutex
	recipes    []model.Recipe
	generation int64
}

// NewInMemoryCatalog creates an empty catalog.
func NewInMemoryCatalog() *InMemoryCatalog {
	c := &InMemoryCatalog{}

	metrics.UpdateCatalogSize(0)
	metrics.UpdateCatalogGeneration(0)

	return c
}

// Replace swaps in a new collection. The input is copied and deduped
// by id so callers cannot mutate stored state afterwards; relative
// order of the kept records is preserved.
func (c *InMemoryCatalog) Replace(ctx context.Context, recipes []model.Recipe) {
	start := time.Now()

	seen := make(map[int]struct{}, len(recipes))
	kept := make([]model.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if _, dup := seen[r.ID]; dup {
			metrics.RecordCatalogDuplicate()
			continue
		}
		seen[r.ID] = struct{}{}
		kept = append(kept, r)
	}

	c.mu.Lock()
	c.recipes = kept
	c.generation++
	gen := c.generation
	c.mu.Unlock()

	metrics.RecordCatalogSwap()
	metrics.RecordCatalogSwapDuration(float64(time.Since(start).Milliseconds()))
	metrics.UpdateCatalogSize(len(kept))
	metrics.UpdateCatalogGeneration(gen)
}

// All returns a copy of the current collection.
func (c *InMemoryCatalog) All(ctx context.Context) []model.Recipe {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.Recipe, len(c.recipes))
	copy(out, c.recipes)
	return out
}

// Count returns the current collection size.
func (c *InMemoryCatalog) Count(ctx context.Context) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.recipes)
}

// Generation returns the monotonic collection generation.
func (c *InMemoryCatalog) Generation(ctx context.Context) int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}
