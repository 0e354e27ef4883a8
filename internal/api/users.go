package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/taskdeck/taskdeck/internal/domain/auth"
	"github.com/taskdeck/taskdeck/internal/domain/model"
)

// UserService wraps the user endpoints. Listing, editing other users,
// and deleting are admin operations; the backend enforces that, the
// client only hides the affordances via the access package.
type UserService struct {
	c *Client
}

// List fetches all users. Query selects the soft-deleted view when set.
func (s *UserService) List(ctx context.Context, query model.UserQuery) ([]auth.UserProfile, error) {
	values := url.Values{}
	if query.IsDeleted != "" {
		values.Set("isDeleted", query.IsDeleted)
	}

	var users []auth.UserProfile
	if err := s.c.doJSON(ctx, http.MethodGet, "/users", values, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Get fetches one user's profile.
func (s *UserService) Get(ctx context.Context, userID int) (auth.UserProfile, error) {
	var user auth.UserProfile
	path := fmt.Sprintf("/users/%d", userID)
	if err := s.c.doJSON(ctx, http.MethodGet, path, nil, nil, &user); err != nil {
		return auth.UserProfile{}, err
	}
	return user, nil
}

// Edit patches a user's profile. IsAdmin is honored only when the
// caller is an admin.
func (s *UserService) Edit(ctx context.Context, userID int, updates model.EditUser) (model.StatusMessage, error) {
	path := fmt.Sprintf("/users/%d", userID)
	return s.c.doMessage(ctx, http.MethodPatch, path, nil, updates)
}

// Delete soft-deletes a user.
func (s *UserService) Delete(ctx context.Context, userID int) (model.StatusMessage, error) {
	path := fmt.Sprintf("/users/%d", userID)
	return s.c.doMessage(ctx, http.MethodDelete, path, nil, nil)
}
