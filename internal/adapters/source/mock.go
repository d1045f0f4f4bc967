package source

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/platterhq/platter/internal/domain/model"
)

// Default mock generation constants.
const (
	defaultMockCount = 24
	defaultMockSeed  = 42

	mockMaxMinutes    = 120
	mockMaxServings   = 8
	mockMaxHealth     = 100
	mockMaxPriceCents = 900
	mockMinPriceCents = 75
)

// Title fragments for synthetic recipes.
var (
	mockStyles = []string{
		"Classic", "Spicy", "Creamy", "Rustic", "Smoky",
		"Fresh", "Roasted", "Grilled", "Slow-Cooked", "Zesty",
	}
	mockDishes = []string{
		"Margherita Pizza", "Lentil Soup", "Chicken Tacos", "Veggie Stir Fry",
		"Mushroom Risotto", "Quinoa Salad", "Beef Stew", "Falafel Wrap",
		"Pad Thai", "Shakshuka", "Buddha Bowl", "Pumpkin Curry",
	}
)

// MockSource generates a deterministic synthetic collection that
// conforms to the same schema as the upstream API. It backs the
// dashboard whenever the real source is unreachable.
type MockSource struct {
	count int
	seed  int64
}

// NewMockSource creates a mock source with configuration options.
func NewMockSource(opts ...MockOption) *MockSource {
	s := &MockSource{
		count: defaultMockCount,
		seed:  defaultMockSeed, // deterministic for reproducible dashboards and tests
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Kind names the source.
func (s *MockSource) Kind() string { return "mock" }

// Fetch generates the synthetic collection. The same seed always
// yields the same recipes, ids stay unique, and every tag combination
// (including untagged "Other" recipes) shows up at realistic rates.
func (s *MockSource) Fetch(ctx context.Context) ([]model.Recipe, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("mock fetch cancelled: %w", ctx.Err())
	default:
	}

	rng := rand.New(rand.NewSource(s.seed)) //nolint:gosec // deterministic seed for reproducible data

	recipes := make([]model.Recipe, s.count)
	for i := range recipes {
		style := mockStyles[rng.Intn(len(mockStyles))]
		dish := mockDishes[rng.Intn(len(mockDishes))]

		vegetarian := rng.Intn(100) < 40
		// Vegan implies vegetarian with the upstream API's tagging.
		vegan := vegetarian && rng.Intn(100) < 35
		glutenFree := rng.Intn(100) < 30

		recipes[i] = model.Recipe{
			ID:              i + 1,
			Title:           fmt.Sprintf("%s %s", style, dish),
			ReadyInMinutes:  rng.Intn(mockMaxMinutes + 1),
			Servings:        1 + rng.Intn(mockMaxServings),
			HealthScore:     rng.Intn(mockMaxHealth + 1),
			Vegetarian:      vegetarian,
			Vegan:           vegan,
			GlutenFree:      glutenFree,
			DairyFree:       rng.Intn(100) < 25,
			VeryHealthy:     rng.Intn(100) < 15,
			VeryPopular:     rng.Intn(100) < 20,
			Cheap:           rng.Intn(100) < 30,
			Sustainable:     rng.Intn(100) < 10,
			Image:           fmt.Sprintf("https://img.platter.dev/recipes/%d.jpg", i+1),
			PricePerServing: float64(mockMinPriceCents + rng.Intn(mockMaxPriceCents)),
		}
	}

	return recipes, nil
}
