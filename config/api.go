package config

import "time"

const (
	minTimeout = time.Second
	maxTimeout = 2 * time.Minute
)

// APIConfig contains backend endpoint configuration.
type APIConfig struct {
	// BaseURL is the backend root, including any path prefix
	// (e.g. "https://taskdeck.example.com/api").
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:3000/api"`

	// Timeout bounds each request end to end. A timed-out request is a
	// network failure, never an authorization failure.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`

	// RetryMaxElapsed bounds backoff retries of failed GET dispatches.
	// Zero disables retrying.
	RetryMaxElapsed time.Duration `env:"RETRY_MAX_ELAPSED" envDefault:"5s"`
}

// Sanitize applies guardrails to endpoint configuration values.
func (a *APIConfig) Sanitize() {
	if a.Timeout < minTimeout {
		a.Timeout = minTimeout
	}
	if a.Timeout > maxTimeout {
		a.Timeout = maxTimeout
	}
	if a.RetryMaxElapsed < 0 {
		a.RetryMaxElapsed = 0
	}
	if a.RetryMaxElapsed > a.Timeout {
		a.RetryMaxElapsed = a.Timeout
	}
}
