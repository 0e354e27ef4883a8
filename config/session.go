package config

// SessionConfig contains session persistence configuration. Sessions
// are scoped to one terminal context; see internal/adapters/sessionfile.
type SessionConfig struct {
	// Dir overrides the directory holding session files.
	// Defaults to <user cache dir>/taskdeck/sessions.
	Dir string `env:"DIR"`

	// Context overrides the terminal context id owning the session.
	// Defaults to the parent shell PID, so the session ends with the
	// shell. Set an explicit value to share a session between shells
	// deliberately.
	Context string `env:"CONTEXT"`
}
