// Package sessionfile persists session keys as files scoped to one
// terminal context, the way a browser tab scopes its session storage.
// Each context gets its own pair of files, so logging out in one shell
// never disturbs a session in another.
package sessionfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/taskdeck/taskdeck/internal/ports"
)

// Compile-time conformance to the port.
var _ ports.SessionStorage = (*Storage)(nil)

// Options configures a Storage.
type Options struct {
	// Dir is the directory holding session files. Defaults to
	// <user cache dir>/taskdeck/sessions.
	Dir string

	// Context identifies the terminal context owning the session.
	// Defaults to the parent shell PID, which ends with the shell.
	Context string
}

// Storage is a file-backed ports.SessionStorage.
type Storage struct {
	dir     string
	context string
}

// New constructs a Storage, resolving defaults for unset options.
func New(opts Options) (*Storage, error) {
	dir := opts.Dir
	if dir == "" {
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("resolve session dir: %w", err)
		}
		dir = filepath.Join(cacheDir, "taskdeck", "sessions")
	}

	ctx := opts.Context
	if ctx == "" {
		ctx = strconv.Itoa(os.Getppid())
	}

	return &Storage{dir: dir, context: ctx}, nil
}

func (s *Storage) tokenPath() string {
	return filepath.Join(s.dir, "session-"+s.context+".token")
}

func (s *Storage) userPath() string {
	return filepath.Join(s.dir, "session-"+s.context+".user.json")
}

// Load reads both keys. A context missing either file has no session.
func (s *Storage) Load() (string, []byte, error) {
	token, err := os.ReadFile(s.tokenPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil, nil
		}
		return "", nil, fmt.Errorf("read session token: %w", err)
	}

	user, err := os.ReadFile(s.userPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil, nil
		}
		return "", nil, fmt.Errorf("read session user: %w", err)
	}

	if len(token) == 0 || len(user) == 0 {
		return "", nil, nil
	}
	return string(token), user, nil
}

// Store writes both keys. The user file is written before the token
// file; an interrupted write leaves a partial pair, which Load treats
// as no session.
func (s *Storage) Store(token string, user []byte) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(s.userPath(), user, 0o600); err != nil {
		return fmt.Errorf("write session user: %w", err)
	}
	if err := os.WriteFile(s.tokenPath(), []byte(token), 0o600); err != nil {
		return fmt.Errorf("write session token: %w", err)
	}
	return nil
}

// Clear removes both keys; absent files are fine.
func (s *Storage) Clear() error {
	var errs []error
	for _, path := range []string{s.tokenPath(), s.userPath()} {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, fmt.Errorf("remove %s: %w", filepath.Base(path), err))
		}
	}
	return errors.Join(errs...)
}
