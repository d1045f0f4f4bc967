package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/platterhq/platter/internal/domain/model"
	"github.com/platterhq/platter/pkg/logger"
	"github.com/platterhq/platter/pkg/metrics"
)

// Default API source configuration constants.
const (
	defaultFetchCount  = 50
	defaultFetchPath   = "/recipes/random"
	defaultHTTPTimeout = 10 * time.Second
)

// APISource fetches recipes from a spoonacular-style HTTP endpoint.
type APISource struct {
	baseURL string
	apiKey  string
	count   int
	client  *http.Client
	valid   *validator.Validate
	log     logger.Logger
}

// randomRecipesResponse mirrors the upstream envelope.
type randomRecipesResponse struct {
	Recipes []model.Recipe `json:"recipes"`
}

// NewAPISource creates an API-backed source with configuration options.
func NewAPISource(baseURL, apiKey string, opts ...APIOption) *APISource {
	s := &APISource{
		baseURL: baseURL,
		apiKey:  apiKey,
		count:   defaultFetchCount,
		client:  &http.Client{Timeout: defaultHTTPTimeout},
		valid:   validator.New(),
		log:     logger.Named("source-api"),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Kind names the source.
func (s *APISource) Kind() string { return "api" }

// Fetch retrieves recipes from the upstream API. Records failing
// per-record validation are dropped rather than failing the fetch; a
// fetch that yields zero usable records is an error so the caller can
// fall back.
func (s *APISource) Fetch(ctx context.Context) ([]model.Recipe, error) {
	if s.apiKey == "" {
		metrics.RecordSourceFetchError()
		return nil, ErrMissingKey
	}

	start := time.Now()
	defer func() {
		metrics.RecordSourceFetchLatency(float64(time.Since(start).Milliseconds()))
	}()

	endpoint, err := s.fetchURL()
	if err != nil {
		metrics.RecordSourceFetchError()
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		metrics.RecordSourceFetchError()
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		metrics.RecordSourceFetchError()
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		metrics.RecordSourceFetchError()
		return nil, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	var payload randomRecipesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		metrics.RecordSourceFetchError()
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	recipes := make([]model.Recipe, 0, len(payload.Recipes))
	for _, r := range payload.Recipes {
		if err := s.valid.Struct(r); err != nil {
			metrics.RecordSourceInvalidRecord()
			s.log.Warn(ctx, "dropping invalid upstream record",
				logger.Int("id", r.ID),
				logger.Error(err),
			)
			continue
		}
		recipes = append(recipes, r)
	}

	if len(recipes) == 0 {
		metrics.RecordSourceFetchError()
		return nil, ErrNoRecipes
	}

	s.log.Info(ctx, "fetched recipes from upstream",
		logger.Int("count", len(recipes)),
		logger.Int("dropped", len(payload.Recipes)-len(recipes)),
	)
	return recipes, nil
}

// fetchURL assembles the upstream request URL with the key and count.
func (s *APISource) fetchURL() (string, error) {
	u, err := url.Parse(s.baseURL)
	if err != nil {
		return "", err
	}
	u = u.JoinPath(defaultFetchPath)

	q := u.Query()
	q.Set("number", strconv.Itoa(s.count))
	q.Set("apiKey", s.apiKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
