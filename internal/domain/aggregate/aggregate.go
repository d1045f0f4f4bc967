// Package aggregate reduces a filtered recipe set to the derived views
// shown on the dashboard: summary stats, a cooking-time histogram, and
// a diet-tag distribution. Every function here is pure and stateless;
// the full pipeline is recomputed on each invocation.
package aggregate

import (
	"math"

	"github.com/platterhq/platter/internal/domain/filter"
	"github.com/platterhq/platter/internal/domain/model"
	"github.com/platterhq/platter/internal/domain/types"
)

// timeRange is one fixed histogram range. Max < 0 means unbounded.
type timeRange struct {
	label string
	min   int
	max   int
}

// Histogram ranges, in presentation order. A recipe lands in the first
// range containing its ReadyInMinutes; negative values land nowhere.
var timeRanges = []timeRange{
	{label: "0-30 min", min: 0, max: 30},
	{label: "31-60 min", min: 31, max: 60},
	{label: "61-90 min", min: 61, max: 90},
	{label: "90+ min", min: 91, max: -1},
}

// dietCategory is one distribution category with its chart color.
type dietCategory struct {
	label   string
	color   string
	matches func(model.Recipe) bool
}

// Distribution categories, in presentation order. The first three are
// independent tags, so one recipe may be counted more than once; Other
// collects recipes carrying none of them.
var dietCategories = []dietCategory{
	{label: "Vegetarian", color: "#22c55e", matches: func(r model.Recipe) bool { return r.Vegetarian }},
	{label: "Vegan", color: "#a855f7", matches: func(r model.Recipe) bool { return r.Vegan }},
	{label: "Gluten Free", color: "#3b82f6", matches: func(r model.Recipe) bool { return r.GlutenFree }},
	{label: "Other", color: "#ef4444", matches: func(r model.Recipe) bool {
		return !r.Vegetarian && !r.Vegan && !r.GlutenFree
	}},
}

// Summarize reduces the filtered set to its headline numbers. An empty
// set yields all zeros rather than dividing by zero. Averages round
// half away from zero.
func Summarize(filtered []model.Recipe) types.Summary {
	if len(filtered) == 0 {
		return types.Summary{}
	}

	var timeSum, healthSum int
	for _, r := range filtered {
		timeSum += r.ReadyInMinutes
		healthSum += r.HealthScore
	}

	n := float64(len(filtered))
	return types.Summary{
		TotalRecipes: len(filtered),
		AvgTime:      int(math.Round(float64(timeSum) / n)),
		AvgHealth:    int(math.Round(float64(healthSum) / n)),
	}
}

// Bucketize histograms the filtered set over the fixed cooking-time
// ranges. All four buckets are always present, zero counts included.
// Recipes with a negative ReadyInMinutes match no range and are
// silently excluded; there is deliberately no catch-all bucket.
func Bucketize(filtered []model.Recipe) []types.Bucket {
	buckets := make([]types.Bucket, len(timeRanges))
	for i, tr := range timeRanges {
		buckets[i] = types.Bucket{Label: tr.label}
	}

	for _, r := range filtered {
		for i, tr := range timeRanges {
			if r.ReadyInMinutes < tr.min {
				continue
			}
			if tr.max >= 0 && r.ReadyInMinutes > tr.max {
				continue
			}
			buckets[i].Count++
			break
		}
	}
	return buckets
}

// Distribute counts the filtered set per diet category. Categories are
// evaluated independently, so the counts may sum past the total; that
// is intended multi-label semantics. Only categories with a non-zero
// count are returned, in declaration order.
func Distribute(filtered []model.Recipe) []types.Slice {
	slices := make([]types.Slice, 0, len(dietCategories))
	for _, cat := range dietCategories {
		count := 0
		for _, r := range filtered {
			if cat.matches(r) {
				count++
			}
		}
		if count > 0 {
			slices = append(slices, types.Slice{Label: cat.label, Count: count, Color: cat.color})
		}
	}
	return slices
}

// Recompute runs the full pipeline over the current collection and
// criteria: filter once, then derive every view from the filtered set.
// The hosting layer calls this after any state change; there is no
// incremental update path.
func Recompute(recipes []model.Recipe, c model.Criteria) types.Views {
	filtered := filter.Apply(recipes, c)
	return types.Views{
		Filtered:     filtered,
		Summary:      Summarize(filtered),
		Buckets:      Bucketize(filtered),
		Distribution: Distribute(filtered),
	}
}
