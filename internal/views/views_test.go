package views

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/domain/auth"
	"github.com/taskdeck/taskdeck/internal/domain/model"
	"github.com/taskdeck/taskdeck/internal/testutil"
)

type projectStub struct {
	project model.Project
	tags    model.ProjectTags
	err     error
}

func (p projectStub) Get(_ context.Context, _ int) (model.Project, error) {
	return p.project, p.err
}

func (p projectStub) Tags(_ context.Context, _ int) (model.ProjectTags, error) {
	return p.tags, p.err
}

type taskStub struct {
	lists   map[model.Status]model.TaskList
	failOn  model.Status
	calls   atomic.Int32
	listErr error
}

func (t *taskStub) List(_ context.Context, _ int, query model.TaskQuery) (model.TaskList, error) {
	t.calls.Add(1)
	if t.listErr != nil {
		return model.TaskList{}, t.listErr
	}
	if t.failOn != "" && query.Status == t.failOn {
		return model.TaskList{}, errors.New("bucket exploded")
	}
	return t.lists[query.Status], nil
}

type userStub struct {
	users []auth.UserProfile
}

func (u userStub) List(_ context.Context, _ model.UserQuery) ([]auth.UserProfile, error) {
	return u.users, nil
}

type viewerStub struct {
	user auth.UserProfile
	ok   bool
}

func (v viewerStub) CurrentUser() (auth.UserProfile, bool) { return v.user, v.ok }

func newLoader(viewer viewerStub, tasks *taskStub, users userStub) *Loader {
	return NewLoader(LoaderOptions{
		Sessions: viewer,
		Projects: projectStub{
			project: testutil.NewProject(7).WithName("Alpha").Build(),
			tags:    model.ProjectTags{ProjectID: 7, Tags: []model.Tag{{ID: 1, Name: "urgent"}}},
		},
		Tasks: tasks,
		Users: users,
	})
}

func TestLoader_ProjectDetail(t *testing.T) {
	tasks := &taskStub{lists: map[model.Status]model.TaskList{
		"": {ProjectID: 7, Tasks: []model.Task{{ID: 1, Name: "t"}}},
	}}
	users := userStub{users: []auth.UserProfile{
		testutil.NewUser(1).WithName("Ada").Build(),
		testutil.NewUser(2).WithName("Root").AsAdmin().Build(),
	}}

	t.Run("non-admin viewer is not offered admin candidates", func(t *testing.T) {
		loader := newLoader(viewerStub{user: auth.UserProfile{ID: 1, Role: auth.GlobalRoleUser}, ok: true}, tasks, users)

		detail, err := loader.ProjectDetail(context.Background(), 7)
		require.NoError(t, err)

		assert.Equal(t, "Alpha", detail.Project.Name)
		require.Len(t, detail.Tags, 1)
		require.Len(t, detail.Tasks, 1)
		require.Len(t, detail.Candidates, 1)
		assert.Equal(t, "Ada", detail.Candidates[0].Name)
	})

	t.Run("admin viewer sees everyone", func(t *testing.T) {
		loader := newLoader(viewerStub{user: auth.UserProfile{ID: 2, Role: auth.GlobalRoleAdmin}, ok: true}, tasks, users)

		detail, err := loader.ProjectDetail(context.Background(), 7)
		require.NoError(t, err)
		assert.Len(t, detail.Candidates, 2)
	})

	t.Run("any source failing fails the load", func(t *testing.T) {
		broken := &taskStub{listErr: errors.New("boom")}
		loader := newLoader(viewerStub{ok: false}, broken, users)

		_, err := loader.ProjectDetail(context.Background(), 7)
		require.Error(t, err)
	})
}

func TestLoader_TaskBoard(t *testing.T) {
	t.Run("three buckets load together", func(t *testing.T) {
		tasks := &taskStub{lists: map[model.Status]model.TaskList{
			model.StatusPending: {Tasks: []model.Task{testutil.NewTask(1).Build()}},
			model.StatusInProgress: {Tasks: []model.Task{
				testutil.NewTask(2).WithStatus(model.StatusInProgress).Build(),
				testutil.NewTask(3).WithStatus(model.StatusInProgress).Build(),
			}},
			model.StatusCompleted: {Tasks: []model.Task{testutil.NewTask(4).WithStatus(model.StatusCompleted).Build()}},
		}}
		loader := newLoader(viewerStub{}, tasks, userStub{})

		board, err := loader.TaskBoard(context.Background(), 7, model.TaskQuery{SortBy: model.TaskSortByCreatedAt})
		require.NoError(t, err)

		assert.Len(t, board.Pending, 1)
		assert.Len(t, board.InProgress, 2)
		assert.Len(t, board.Completed, 1)
		assert.Equal(t, int32(3), tasks.calls.Load())
	})

	// One bucket failing discards the whole batch; no partial board is
	// ever visible.
	t.Run("partial failure discards all buckets", func(t *testing.T) {
		tasks := &taskStub{
			lists: map[model.Status]model.TaskList{
				model.StatusPending:   {Tasks: []model.Task{{ID: 1}}},
				model.StatusCompleted: {Tasks: []model.Task{{ID: 4}}},
			},
			failOn: model.StatusInProgress,
		}
		loader := newLoader(viewerStub{}, tasks, userStub{})

		board, err := loader.TaskBoard(context.Background(), 7, model.TaskQuery{})
		require.Error(t, err)
		assert.Nil(t, board)
	})

	t.Run("cancelled context stops the batch", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		tasks := &taskStub{listErr: ctx.Err()}
		loader := newLoader(viewerStub{}, tasks, userStub{})

		_, err := loader.TaskBoard(ctx, 7, model.TaskQuery{})
		require.ErrorIs(t, err, context.Canceled)
	})
}
