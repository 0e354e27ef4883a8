package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/domain/auth"
	"github.com/taskdeck/taskdeck/internal/mocks/storage"
	"github.com/taskdeck/taskdeck/internal/nav"
	"github.com/taskdeck/taskdeck/internal/session"
)

// testEnv wires a real session store and router around a client pointed
// at a test server, mirroring production wiring.
type testEnv struct {
	client  *Client
	store   *session.Store
	router  *nav.Router
	mem     *storage.MemoryStorage
	server  *httptest.Server
	lastReq *http.Request
}

func newTestEnv(t *testing.T, handler http.HandlerFunc) *testEnv {
	t.Helper()

	env := &testEnv{}
	env.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env.lastReq = r.Clone(r.Context())
		handler(w, r)
	}))
	t.Cleanup(env.server.Close)

	env.mem = storage.NewMemoryStorage()
	env.store = session.NewStore(env.mem)
	env.router = nav.NewRouter(nil)

	client, err := NewClient(Options{
		BaseURL:         env.server.URL,
		Sessions:        env.store,
		Navigator:       env.router,
		Timeout:         5 * time.Second,
		RetryMaxElapsed: -1, // keep unit tests deterministic
	})
	require.NoError(t, err)
	env.client = client
	return env
}

func (e *testEnv) login(t *testing.T, token string) {
	t.Helper()
	user := auth.UserProfile{ID: 1, Email: "a@x.com", Name: "Ada", Role: auth.GlobalRoleUser}
	require.NoError(t, e.store.Commit(token, user))
	e.router.To(nav.ViewProjects)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

const okEnvelope = `{"status_type":"success","response_message":"done"}`
