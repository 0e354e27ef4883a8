package model

// EditUser is the body for PATCH /users/:id. The backend ignores IsAdmin
// unless the caller holds the account-wide admin role.
type EditUser struct {
	Name    string `json:"user_name,omitempty"`
	Email   string `json:"user_email,omitempty"`
	IsAdmin *bool  `json:"is_admin,omitempty"`
}

// UserQuery carries list parameters for the admin user listing.
type UserQuery struct {
	// IsDeleted selects the soft-deleted view when set ("true"/"false").
	IsDeleted string
}
