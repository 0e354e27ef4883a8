package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/domain/model"
)

// A login rejected inside a 200 body leaves the store untouched: no
// storage writes, no session, and the backend's message is surfaced.
func TestAuthService_LoginFail(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"status_type":"fail","response_message":"bad credentials"}`)
	})

	_, err := env.client.Auth().Login(context.Background(), "a@x.com", "pw")

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "bad credentials", DisplayMessage(err))
	assert.False(t, env.store.IsAuthenticated())
	assert.Zero(t, env.mem.StoreCalls)
}

// A successful login returns the payload; once the caller commits it,
// the next call carries the bearer token.
func TestAuthService_LoginSuccessThenAuthenticatedCall(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			body, _ := io.ReadAll(r.Body)
			var req map[string]string
			require.NoError(t, json.Unmarshal(body, &req))
			assert.Equal(t, "a@x.com", req["user_mail"])
			assert.Equal(t, "pw", req["user_password"])
			assert.Empty(t, r.Header.Get("Authorization"))
			writeJSON(w, http.StatusOK,
				`{"token":"abc","user":{"user_id":1,"user_email":"a@x.com","user_name":"Ada","user_role":"USER"}}`)
		case "/projects":
			writeJSON(w, http.StatusOK, `[]`)
		default:
			http.NotFound(w, r)
		}
	})

	result, err := env.client.Auth().Login(context.Background(), "a@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "abc", result.Token)
	assert.Equal(t, 1, result.User.ID)

	// The gateway itself never commits.
	assert.False(t, env.store.IsAuthenticated())

	require.NoError(t, env.store.Commit(result.Token, result.User))
	assert.True(t, env.store.IsAuthenticated())
	assert.Equal(t, "abc", env.store.Token())

	_, err = env.client.Projects().List(context.Background(), model.ProjectQuery{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", env.lastReq.Header.Get("Authorization"))
}

func TestAuthService_Register(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/register", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		var req map[string]string
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "Ada", req["user_name"])
		assert.Equal(t, "a@x.com", req["email"])
		assert.Equal(t, "pw", req["password"])
		writeJSON(w, http.StatusCreated, `{"status_type":"success","response_message":"registered"}`)
	})

	msg, err := env.client.Auth().Register(context.Background(), "Ada", "a@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "registered", msg.Message)

	// Registration never logs the user in.
	assert.False(t, env.store.IsAuthenticated())
}

func TestAuthService_NetworkFailureIsNotAppFail(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{}`)
	})
	env.server.Close()

	_, err := env.client.Auth().Login(context.Background(), "a@x.com", "pw")

	require.Error(t, err)
	var appErr *AppError
	assert.False(t, errors.As(err, &appErr))
	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
}
