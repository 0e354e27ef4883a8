package sessionfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(Options{Dir: t.TempDir(), Context: "test"})
	require.NoError(t, err)
	return s
}

func TestStorage_RoundTrip(t *testing.T) {
	s := newTestStorage(t)

	require.NoError(t, s.Store("abc", []byte(`{"user_id":1}`)))

	token, user, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
	assert.JSONEq(t, `{"user_id":1}`, string(user))
}

func TestStorage_EmptyDirHasNoSession(t *testing.T) {
	s := newTestStorage(t)

	token, user, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Nil(t, user)
}

func TestStorage_PartialPairIsNoSession(t *testing.T) {
	s := newTestStorage(t)
	require.NoError(t, s.Store("abc", []byte(`{}`)))
	require.NoError(t, os.Remove(s.userPath()))

	token, user, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Nil(t, user)
}

func TestStorage_ClearIsIdempotent(t *testing.T) {
	s := newTestStorage(t)
	require.NoError(t, s.Store("abc", []byte(`{}`)))

	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())

	token, _, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestStorage_ContextsAreIsolated(t *testing.T) {
	dir := t.TempDir()
	first, err := New(Options{Dir: dir, Context: "shell-1"})
	require.NoError(t, err)
	second, err := New(Options{Dir: dir, Context: "shell-2"})
	require.NoError(t, err)

	require.NoError(t, first.Store("tok-1", []byte(`{"user_id":1}`)))
	require.NoError(t, second.Store("tok-2", []byte(`{"user_id":2}`)))

	require.NoError(t, first.Clear())

	token, _, err := second.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-2", token)
}

func TestStorage_FilePermissions(t *testing.T) {
	s := newTestStorage(t)
	require.NoError(t, s.Store("abc", []byte(`{}`)))

	info, err := os.Stat(filepath.Join(s.dir, "session-test.token"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
