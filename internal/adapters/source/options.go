package source

import (
	"net/http"
	"time"
)

// APIOption applies a configuration option to the APISource.
type APIOption func(*APISource)

// WithFetchCount sets how many recipes one fetch requests.
func WithFetchCount(count int) APIOption {
	return func(s *APISource) {
		if count > 0 {
			s.count = count
		}
	}
}

// WithHTTPTimeout sets the upstream request timeout.
func WithHTTPTimeout(timeout time.Duration) APIOption {
	return func(s *APISource) {
		if timeout > 0 {
			s.client.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) APIOption {
	return func(s *APISource) {
		if client != nil {
			s.client = client
		}
	}
}

// MockOption applies a configuration option to the MockSource.
type MockOption func(*MockSource)

// WithMockCount sets the size of the generated collection.
func WithMockCount(count int) MockOption {
	return func(s *MockSource) {
		if count > 0 {
			s.count = count
		}
	}
}

// WithMockSeed sets the generator seed.
func WithMockSeed(seed int64) MockOption {
	return func(s *MockSource) {
		s.seed = seed
	}
}
