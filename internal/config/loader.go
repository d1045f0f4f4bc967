package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if PLATTER_CONFIG is set
//  3. env (prefix PLATTER_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("PLATTER_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: PLATTER_ADDR, PLATTER_API_KEY, ...
	// Map env keys like PLATTER_FETCH_COUNT -> fetch_count (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("PLATTER_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "platter_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Basic validation
	switch {
	case cfg.Addr == "":
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case cfg.APIBaseURL == "":
		return nil, fmt.Errorf("%w: api_base_url must not be empty", ErrInvalidConfig)
	case cfg.FetchCount < 1:
		return nil, fmt.Errorf("%w: fetch_count must be positive", ErrInvalidConfig)
	case cfg.MockCount < 1:
		return nil, fmt.Errorf("%w: mock_count must be positive", ErrInvalidConfig)
	case cfg.FetchTimeoutMS < 1:
		return nil, fmt.Errorf("%w: fetch_timeout_ms must be positive", ErrInvalidConfig)
	case cfg.MaxQueryLength < 1:
		return nil, fmt.Errorf("%w: max_query_length must be positive", ErrInvalidConfig)
	}
	return &cfg, nil
}
