package ports

// Package ports defines interfaces (hexagonal ports) for session
// persistence and navigation. Implementations live in internal/adapters
// and internal/nav; orchestration in internal/session and internal/api.

// SessionStorage persists the two session keys (token and serialized
// user profile) for a single terminal context, the way a browser tab
// scopes its storage. Load reports an absent session as empty values,
// not an error; a context that has only one of the two keys is treated
// as having neither.
type SessionStorage interface {
	// Load reads both keys. token == "" or user == nil means no session.
	Load() (token string, user []byte, err error)

	// Store writes both keys together.
	Store(token string, user []byte) error

	// Clear removes both keys. Clearing absent keys is a no-op.
	Clear() error
}
