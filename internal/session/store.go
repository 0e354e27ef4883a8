// Package session holds the process-wide authentication state: the
// bearer token and the profile it belongs to. The Store is the single
// source of truth for "am I logged in, and as whom"; all mutation goes
// through Commit and Clear so a partial session is never observable.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/taskdeck/taskdeck/internal/domain/auth"
	"github.com/taskdeck/taskdeck/internal/ports"
)

// ErrEmptyToken is returned by Commit when no token is supplied.
var ErrEmptyToken = errors.New("session token cannot be empty")

// Store is the in-memory session backed by context-scoped storage.
// Reads are served from memory only; storage is touched by Initialize,
// Commit and Clear.
type Store struct {
	mu      sync.RWMutex
	storage ports.SessionStorage
	token   string
	user    *auth.UserProfile
}

// NewStore creates an empty Store over the given storage.
func NewStore(storage ports.SessionStorage) *Store {
	return &Store{storage: storage}
}

// Initialize loads the persisted session, if any. A missing key or an
// unparseable user blob leaves the session absent; only a storage read
// failure is an error.
func (s *Store) Initialize() error {
	token, userData, err := s.storage.Load()
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if token == "" || len(userData) == 0 {
		return nil
	}

	var user auth.UserProfile
	if unmarshalErr := json.Unmarshal(userData, &user); unmarshalErr != nil {
		// Half a session is no session; leave the store empty.
		return nil
	}

	s.mu.Lock()
	s.token = token
	s.user = &user
	s.mu.Unlock()
	return nil
}

// Commit establishes a session, writing token and user to storage and
// memory together. It is the only way a non-empty session comes to be.
// On a storage failure nothing is committed.
func (s *Store) Commit(token string, user auth.UserProfile) error {
	if token == "" {
		return ErrEmptyToken
	}

	userData, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user profile: %w", err)
	}
	if storeErr := s.storage.Store(token, userData); storeErr != nil {
		return fmt.Errorf("persist session: %w", storeErr)
	}

	s.mu.Lock()
	s.token = token
	s.user = &user
	s.mu.Unlock()
	return nil
}

// Clear tears the session down in memory and storage. Clearing an
// already-clear session is a no-op. Memory is cleared even when storage
// removal fails, so a forced logout always wins.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.storage.Clear(); err != nil {
		return fmt.Errorf("clear persisted session: %w", err)
	}
	return nil
}

// IsAuthenticated reports whether a full session is present.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user != nil
}

// Token returns the current bearer token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// CurrentUser returns the current profile. The second return is false
// when logged out.
func (s *Store) CurrentUser() (auth.UserProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return auth.UserProfile{}, false
	}
	return *s.user, true
}
