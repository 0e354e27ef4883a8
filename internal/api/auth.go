package api

import (
	"context"
	"net/http"

	"github.com/taskdeck/taskdeck/internal/domain/auth"
	"github.com/taskdeck/taskdeck/internal/domain/model"
)

// AuthService performs the two unauthenticated exchanges: login and
// register. It classifies results but never touches the session store;
// committing a successful login is the caller's job, so the store's
// no-partial-session invariant stays enforceable from one call site.
type AuthService struct {
	c *Client
}

type loginRequest struct {
	Email    string `json:"user_mail"`
	Password string `json:"user_password"`
}

type registerRequest struct {
	Name     string `json:"user_name"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// LoginResult is the payload of a successful login exchange.
type LoginResult struct {
	Token string           `json:"token"`
	User  auth.UserProfile `json:"user"`
}

// Login exchanges credentials for a token and profile. A response body
// carrying the fail discriminator comes back as an *AppError with the
// backend's message, even when the transport status was 2xx; network
// failures are plain errors. No bearer token accompanies this call,
// since it precedes having one.
func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var result LoginResult
	body := loginRequest{Email: email, Password: password}
	if err := s.c.doJSON(ctx, http.MethodPost, "/auth/login", nil, body, &result); err != nil {
		return LoginResult{}, err
	}
	return result, nil
}

// Register creates an account. Registration never produces a session;
// the user logs in afterwards.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (model.StatusMessage, error) {
	body := registerRequest{Name: name, Email: email, Password: password}
	return s.c.doMessage(ctx, http.MethodPost, "/auth/register", nil, body)
}
