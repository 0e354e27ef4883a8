package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/domain/auth"
	"github.com/taskdeck/taskdeck/internal/mocks/storage"
)

func testUser() auth.UserProfile {
	return auth.UserProfile{
		ID:    1,
		Email: "a@x.com",
		Name:  "Ada",
		Role:  auth.GlobalRoleUser,
	}
}

// A reader must never observe token and user out of step, whatever the
// sequence of commits and clears.
func TestStore_NoPartialSession(t *testing.T) {
	store := NewStore(storage.NewMemoryStorage())

	check := func() {
		t.Helper()
		_, hasUser := store.CurrentUser()
		assert.Equal(t, store.Token() != "", store.IsAuthenticated())
		assert.Equal(t, hasUser, store.IsAuthenticated())
	}

	check()
	require.NoError(t, store.Commit("tok-1", testUser()))
	check()
	require.NoError(t, store.Clear())
	check()
	require.NoError(t, store.Commit("tok-2", testUser()))
	require.NoError(t, store.Commit("tok-3", testUser()))
	check()
	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
	check()
}

func TestStore_CommitRoundTrip(t *testing.T) {
	mem := storage.NewMemoryStorage()
	store := NewStore(mem)
	user := testUser()

	require.NoError(t, store.Commit("abc", user))

	assert.Equal(t, "abc", store.Token())
	got, ok := store.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, user, got)
	assert.True(t, store.IsAuthenticated())

	token, blob := mem.Contents()
	assert.Equal(t, "abc", token)
	assert.NotEmpty(t, blob)
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	mem := storage.NewMemoryStorage()
	store := NewStore(mem)
	require.NoError(t, store.Commit("abc", testUser()))

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())

	assert.False(t, store.IsAuthenticated())
	assert.Equal(t, 2, mem.ClearCalls)
}

func TestStore_CommitRejectsEmptyToken(t *testing.T) {
	store := NewStore(storage.NewMemoryStorage())
	require.ErrorIs(t, store.Commit("", testUser()), ErrEmptyToken)
	assert.False(t, store.IsAuthenticated())
}

func TestStore_CommitStorageFailureLeavesStoreEmpty(t *testing.T) {
	mem := storage.NewMemoryStorage()
	mem.StoreErr = assert.AnError
	store := NewStore(mem)

	require.Error(t, store.Commit("abc", testUser()))

	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.Token())
}

func TestStore_ClearWinsOverStorageFailure(t *testing.T) {
	mem := storage.NewMemoryStorage()
	store := NewStore(mem)
	require.NoError(t, store.Commit("abc", testUser()))

	mem.ClearErr = assert.AnError
	require.Error(t, store.Clear())

	// Memory is cleared even though the persisted copy could not be removed.
	assert.False(t, store.IsAuthenticated())
}

func TestStore_Initialize(t *testing.T) {
	t.Run("loads a full persisted session", func(t *testing.T) {
		mem := storage.NewMemoryStorage()
		mem.Seed("abc", []byte(`{"user_id":1,"user_email":"a@x.com","user_name":"Ada","user_role":"USER"}`))
		store := NewStore(mem)

		require.NoError(t, store.Initialize())

		assert.True(t, store.IsAuthenticated())
		assert.Equal(t, "abc", store.Token())
		got, ok := store.CurrentUser()
		require.True(t, ok)
		assert.Equal(t, 1, got.ID)
	})

	t.Run("partial keys leave the session absent", func(t *testing.T) {
		mem := storage.NewMemoryStorage()
		mem.Seed("abc", nil)
		store := NewStore(mem)

		require.NoError(t, store.Initialize())
		assert.False(t, store.IsAuthenticated())
	})

	t.Run("unparseable user blob leaves the session absent", func(t *testing.T) {
		mem := storage.NewMemoryStorage()
		mem.Seed("abc", []byte("not json"))
		store := NewStore(mem)

		require.NoError(t, store.Initialize())
		assert.False(t, store.IsAuthenticated())
	})

	t.Run("storage read failure is surfaced", func(t *testing.T) {
		mem := storage.NewMemoryStorage()
		mem.LoadErr = assert.AnError
		store := NewStore(mem)

		require.Error(t, store.Initialize())
		assert.False(t, store.IsAuthenticated())
	})
}
