package config

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library, with an optional YAML config file
// supplying defaults for unset variables (see internal/bootstrap).
// See individual domain config files for available variables:
//   - api.go: backend endpoint configuration
//   - session.go: session persistence configuration
type AppConfig struct {
	// IsDev enables verbose logging and development conveniences.
	IsDev bool `env:"DEV" envDefault:"false"`

	// API is the backend endpoint configuration.
	API APIConfig `envPrefix:"API_"`

	// Session is the session persistence configuration.
	Session SessionConfig `envPrefix:"SESSION_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading.
func (c *AppConfig) Sanitize() {
	c.API.Sanitize()
}
