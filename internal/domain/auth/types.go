package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of transport/adapter concerns.

// GlobalRole represents an account-wide authorization role.
// Keep string form for easy persistence and wire round-trips.
type GlobalRole string

const (
	GlobalRoleUser  GlobalRole = "USER"
	GlobalRoleAdmin GlobalRole = "ADMIN"
)

// ProjectRole represents a per-project membership role, distinct from
// the global role.
type ProjectRole string

const (
	ProjectRoleOwner ProjectRole = "OWNER"
	ProjectRoleUser  ProjectRole = "USER"
)

// UserProfile is the account as the backend reports it. Field names keep
// the backend's snake_case wire form.
type UserProfile struct {
	ID        int        `json:"user_id"`
	Email     string     `json:"user_email"`
	Name      string     `json:"user_name"`
	Role      GlobalRole `json:"user_role"`
	CreatedAt string     `json:"created_at,omitempty"`
	UpdatedAt string     `json:"updated_at,omitempty"`
}

// IsAdmin returns true if the profile carries the account-wide admin role.
func (u UserProfile) IsAdmin() bool { return u.Role == GlobalRoleAdmin }

// Session pairs the bearer token with the profile it belongs to.
// The two are always set and cleared together; a session missing either
// half is no session at all.
type Session struct {
	Token string
	User  UserProfile
}
