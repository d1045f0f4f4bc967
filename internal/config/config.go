// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() defaults and Load(ctx) that layers file and env on top.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// APIBaseURL is the upstream recipe API root.
	APIBaseURL string `koanf:"api_base_url"`

	// APIKey authenticates against the upstream recipe API. Empty means
	// the service runs on the mock source only.
	APIKey string `koanf:"api_key"`

	// FetchCount is how many recipes a single upstream fetch requests.
	FetchCount int `koanf:"fetch_count"`

	// FetchTimeoutMS bounds one upstream request.
	FetchTimeoutMS int `koanf:"fetch_timeout_ms"`

	// MockCount sizes the synthetic fallback collection.
	MockCount int `koanf:"mock_count"`

	// MockSeed makes the synthetic collection reproducible.
	MockSeed int64 `koanf:"mock_seed"`

	// MaxQueryLength bounds the q search parameter; longer queries are
	// rejected at the HTTP boundary.
	MaxQueryLength int `koanf:"max_query_length"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":9080",
		APIBaseURL:     "https://api.spoonacular.com",
		APIKey:         "",
		FetchCount:     50,
		FetchTimeoutMS: 10_000,
		MockCount:      24,
		MockSeed:       42,
		MaxQueryLength: 256,
	}
}
