// Package nav models the application's navigation surface: the set of
// views, the navigator that tracks the current one, and the guard that
// keeps unauthenticated sessions out of protected views.
package nav

import (
	"log/slog"
	"sync"
)

// View names a navigable surface of the application.
type View string

const (
	ViewLogin         View = "login"
	ViewRegister      View = "register"
	ViewProjects      View = "projects"
	ViewProjectDetail View = "project-detail"
	ViewEditProject   View = "edit-project"
	ViewTaskDetail    View = "task-detail"
	ViewUsers         View = "users"
	ViewProfile       View = "profile"
)

// Protected reports whether the view requires an authenticated session.
// Only the two auth views are public.
func (v View) Protected() bool {
	switch v {
	case ViewLogin, ViewRegister:
		return false
	default:
		return true
	}
}

// Navigator moves between views. ToLogin when already on the login view
// is a no-op; implementations must be safe for concurrent use since a
// 401 can arrive from any in-flight call.
type Navigator interface {
	Current() View
	To(view View)
	ToLogin()
}

// Router is the Navigator used by the application. It records view
// transitions so redirect behavior can be asserted in tests.
type Router struct {
	mu          sync.Mutex
	current     View
	transitions []View
	logger      *slog.Logger
}

// Compile-time conformance.
var _ Navigator = (*Router)(nil)

// NewRouter starts at the login view.
func NewRouter(logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{current: ViewLogin, logger: logger}
}

// Current returns the view the router is on.
func (r *Router) Current() View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// To moves to the given view. Moving to the current view records nothing.
func (r *Router) To(view View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == view {
		return
	}
	r.current = view
	r.transitions = append(r.transitions, view)
	r.logger.Debug("navigate", slog.String("view", string(view)))
}

// ToLogin moves to the login view.
func (r *Router) ToLogin() { r.To(ViewLogin) }

// Transitions returns the recorded view changes in order.
func (r *Router) Transitions() []View {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]View, len(r.transitions))
	copy(out, r.transitions)
	return out
}

// SessionState is the slice of the session store the guard needs.
type SessionState interface {
	IsAuthenticated() bool
}

// Guard gates navigation to protected views. It consults the session on
// every attempt; nothing is cached, since the session can be torn down
// between navigations.
type Guard struct {
	sessions SessionState
	nav      Navigator
}

// NewGuard constructs a Guard.
func NewGuard(sessions SessionState, navigator Navigator) *Guard {
	return &Guard{sessions: sessions, nav: navigator}
}

// Allow reports whether navigation to the view may proceed. A refused
// navigation redirects to the login view.
func (g *Guard) Allow(view View) bool {
	if !view.Protected() {
		g.nav.To(view)
		return true
	}
	if !g.sessions.IsAuthenticated() {
		g.nav.ToLogin()
		return false
	}
	g.nav.To(view)
	return true
}
