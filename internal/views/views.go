// Package views assembles the data each screen needs from independent
// backend calls. Calls within one load run concurrently; a joined batch
// is all-or-nothing-visible: when any member fails, no member's result
// is applied and the error is surfaced (the backend stays untouched by
// the failure, only the local view discards the batch).
package views

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/taskdeck/taskdeck/internal/access"
	"github.com/taskdeck/taskdeck/internal/domain/auth"
	"github.com/taskdeck/taskdeck/internal/domain/model"
)

// ProjectAPI is the slice of the project service the loader needs.
type ProjectAPI interface {
	Get(ctx context.Context, projectID int) (model.Project, error)
	Tags(ctx context.Context, projectID int) (model.ProjectTags, error)
}

// TaskAPI is the slice of the task service the loader needs.
type TaskAPI interface {
	List(ctx context.Context, projectID int, query model.TaskQuery) (model.TaskList, error)
}

// UserAPI is the slice of the user service the loader needs.
type UserAPI interface {
	List(ctx context.Context, query model.UserQuery) ([]auth.UserProfile, error)
}

// SessionState is the slice of the session store the loader needs.
type SessionState interface {
	CurrentUser() (auth.UserProfile, bool)
}

// LoaderOptions groups dependencies for Loader.
type LoaderOptions struct {
	Sessions SessionState
	Projects ProjectAPI
	Tasks    TaskAPI
	Users    UserAPI
}

// Loader builds screen data.
type Loader struct {
	sessions SessionState
	projects ProjectAPI
	tasks    TaskAPI
	users    UserAPI
}

// NewLoader constructs a Loader.
func NewLoader(opts LoaderOptions) *Loader {
	return &Loader{
		sessions: opts.Sessions,
		projects: opts.Projects,
		tasks:    opts.Tasks,
		users:    opts.Users,
	}
}

// ProjectDetail is everything the project detail screen shows.
type ProjectDetail struct {
	Project model.Project
	Tags    []model.Tag
	Tasks   []model.Task

	// Candidates are users who may be invited. Non-admin viewers are
	// not offered admin accounts.
	Candidates []auth.UserProfile
}

// ProjectDetail loads the detail screen's four sources concurrently.
func (l *Loader) ProjectDetail(ctx context.Context, projectID int) (*ProjectDetail, error) {
	var (
		project    model.Project
		tags       model.ProjectTags
		tasks      model.TaskList
		candidates []auth.UserProfile
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		project, err = l.projects.Get(gctx, projectID)
		return err
	})
	g.Go(func() error {
		var err error
		tags, err = l.projects.Tags(gctx, projectID)
		return err
	})
	g.Go(func() error {
		var err error
		tasks, err = l.tasks.List(gctx, projectID, model.TaskQuery{})
		return err
	})
	g.Go(func() error {
		var err error
		candidates, err = l.users.List(gctx, model.UserQuery{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load project %d: %w", projectID, err)
	}

	if viewer, ok := l.sessions.CurrentUser(); ok && !access.IsAdmin(viewer) {
		filtered := candidates[:0]
		for _, candidate := range candidates {
			if !candidate.IsAdmin() {
				filtered = append(filtered, candidate)
			}
		}
		candidates = filtered
	}

	return &ProjectDetail{
		Project:    project,
		Tags:       tags.Tags,
		Tasks:      tasks.Tasks,
		Candidates: candidates,
	}, nil
}

// TaskBoard is the three status buckets of a project's tasks.
type TaskBoard struct {
	Pending    []model.Task
	InProgress []model.Task
	Completed  []model.Task
}

// TaskBoard loads the three buckets as one joined batch. The buckets
// share sort parameters; Status on the base query is ignored.
func (l *Loader) TaskBoard(ctx context.Context, projectID int, base model.TaskQuery) (*TaskBoard, error) {
	fetch := func(gctx context.Context, status model.Status, into *[]model.Task) func() error {
		return func() error {
			query := base
			query.Status = status
			list, err := l.tasks.List(gctx, projectID, query)
			if err != nil {
				return fmt.Errorf("load %s tasks: %w", status, err)
			}
			*into = append((*into)[:0], list.Tasks...)
			return nil
		}
	}

	var board TaskBoard
	g, gctx := errgroup.WithContext(ctx)
	g.Go(fetch(gctx, model.StatusPending, &board.Pending))
	g.Go(fetch(gctx, model.StatusInProgress, &board.InProgress))
	g.Go(fetch(gctx, model.StatusCompleted, &board.Completed))
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &board, nil
}
