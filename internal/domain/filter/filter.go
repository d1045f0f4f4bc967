// Package filter implements the recipe filter engine: the pure,
// two-stage narrowing of a recipe collection by search text and diet.
package filter

import (
	"strings"

	"github.com/platterhq/platter/internal/domain/model"
)

// Apply returns the subsequence of recipes matching both criteria
// stages. The text stage keeps a recipe when the query is empty or the
// case-folded title contains the case-folded query. The diet stage
// keeps a recipe when the diet is "all" (or unrecognized, which fails
// open) or the matching tag is set. Input order is preserved and the
// input slice is never mutated.
func Apply(recipes []model.Recipe, c model.Criteria) []model.Recipe {
	query := strings.ToLower(c.Query)

	out := make([]model.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if !matchesQuery(r, query) {
			continue
		}
		if !matchesDiet(r, c.Diet) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesQuery(r model.Recipe, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Title), query)
}

func matchesDiet(r model.Recipe, diet model.Diet) bool {
	switch diet {
	case model.DietVegetarian:
		return r.Vegetarian
	case model.DietVegan:
		return r.Vegan
	case model.DietGlutenFree:
		return r.GlutenFree
	default:
		// DietAll and anything unrecognized pass everything through.
		return true
	}
}
