// Package types contains the derived-view shapes served by the API.
package types

import "github.com/platterhq/platter/internal/domain/model"

// Summary holds the headline numbers for the filtered set. Averages are
// integers, rounded half away from zero.
type Summary struct {
	TotalRecipes int `json:"totalRecipes"`
	AvgTime      int `json:"avgTime"`
	AvgHealth    int `json:"avgHealth"`
}

// Bucket is one fixed cooking-time range of the histogram.
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Slice is one diet category of the distribution, with its chart color.
type Slice struct {
	Label string `json:"label"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

// Views bundles every derived view computed from one (collection,
// criteria) pair. It is recomputed wholesale; nothing in it is ever
// updated incrementally.
type Views struct {
	Filtered     []model.Recipe `json:"filtered"`
	Summary      Summary        `json:"summary"`
	Buckets      []Bucket       `json:"buckets"`
	Distribution []Slice        `json:"distribution"`
}
