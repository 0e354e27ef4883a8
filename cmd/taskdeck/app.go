package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/taskdeck/taskdeck/config"
	"github.com/taskdeck/taskdeck/internal/adapters/sessionfile"
	"github.com/taskdeck/taskdeck/internal/api"
	"github.com/taskdeck/taskdeck/internal/bootstrap"
	"github.com/taskdeck/taskdeck/internal/nav"
	"github.com/taskdeck/taskdeck/internal/session"
	"github.com/taskdeck/taskdeck/internal/views"
)

// errLoginRequired is returned by protected commands when no session is
// present; the guard has already redirected to the login view.
var errLoginRequired = errors.New("not logged in; run `taskdeck auth login` first")

// app holds the wired dependencies shared by all commands.
type app struct {
	cfg    config.AppConfig
	logger *slog.Logger

	store  *session.Store
	router *nav.Router
	guard  *nav.Guard
	client *api.Client
	loader *views.Loader

	out io.Writer

	// Persistent flags.
	jsonOut bool
	query   string
}

// newApp loads configuration and wires the session store, navigation
// and the backend client.
func newApp(out io.Writer) (*app, error) {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger := bootstrap.InitLogger(cfg.IsDev)

	storage, err := sessionfile.New(sessionfile.Options{
		Dir:     cfg.Session.Dir,
		Context: cfg.Session.Context,
	})
	if err != nil {
		return nil, err
	}

	store := session.NewStore(storage)
	if err := store.Initialize(); err != nil {
		// An unreadable session file means starting logged out, not
		// failing the whole command.
		logger.Warn("restore session failed", "error", err)
	}

	router := nav.NewRouter(logger)
	guard := nav.NewGuard(store, router)

	retryMaxElapsed := cfg.API.RetryMaxElapsed
	if retryMaxElapsed == 0 {
		retryMaxElapsed = -1
	}
	client, err := api.NewClient(api.Options{
		BaseURL:         cfg.API.BaseURL,
		Sessions:        store,
		Navigator:       router,
		Timeout:         cfg.API.Timeout,
		RetryMaxElapsed: retryMaxElapsed,
		Logger:          logger,
	})
	if err != nil {
		return nil, err
	}

	loader := views.NewLoader(views.LoaderOptions{
		Sessions: store,
		Projects: client.Projects(),
		Tasks:    client.Tasks(),
		Users:    client.Users(),
	})

	return &app{
		cfg:    cfg,
		logger: logger,
		store:  store,
		router: router,
		guard:  guard,
		client: client,
		loader: loader,
		out:    out,
	}, nil
}

// require gates a command on its view. Protected views need a session.
func (a *app) require(view nav.View) error {
	if !a.guard.Allow(view) {
		return errLoginRequired
	}
	return nil
}

func parseID(arg, what string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", what, arg)
	}
	return id, nil
}
