// Package model contains domain models passed between layers.
package model

// Recipe represents a single food-preparation record. Fields mirror the
// upstream recipe API schema; optional numeric fields default to 0 and
// optional boolean tags default to false, so the zero value of every
// field is the documented fallback.
type Recipe struct {
	ID              int     `json:"id" validate:"required"`
	Title           string  `json:"title" validate:"required"`
	ReadyInMinutes  int     `json:"readyInMinutes"`
	Servings        int     `json:"servings"`
	HealthScore     int     `json:"healthScore" validate:"min=0,max=100"`
	Vegetarian      bool    `json:"vegetarian"`
	Vegan           bool    `json:"vegan"`
	GlutenFree      bool    `json:"glutenFree"`
	DairyFree       bool    `json:"dairyFree"`
	VeryHealthy     bool    `json:"veryHealthy"`
	VeryPopular     bool    `json:"veryPopular"`
	Cheap           bool    `json:"cheap"`
	Sustainable     bool    `json:"sustainable"`
	Image           string  `json:"image"`
	PricePerServing float64 `json:"pricePerServing"`
}

// Diet is the user-selected diet category used to narrow the collection.
type Diet string

// Recognized diet filters. Anything else behaves like DietAll.
const (
	DietAll        Diet = "all"
	DietVegetarian Diet = "vegetarian"
	DietVegan      Diet = "vegan"
	DietGlutenFree Diet = "gluten-free"
)

// Criteria is the pair of user-selected filters applied to the collection.
type Criteria struct {
	Query string
	Diet  Diet
}

// ParseDiet normalizes a raw diet value. Unrecognized values fail open
// to DietAll so that filtering never rejects a request.
func ParseDiet(raw string) Diet {
	switch Diet(raw) {
	case DietVegetarian, DietVegan, DietGlutenFree:
		return Diet(raw)
	default:
		return DietAll
	}
}
