// Package testutil provides fixture builders shared by tests.
package testutil

import (
	"github.com/taskdeck/taskdeck/internal/domain/auth"
	"github.com/taskdeck/taskdeck/internal/domain/model"
)

// UserBuilder provides a fluent interface for building UserProfile fixtures.
type UserBuilder struct {
	user auth.UserProfile
}

// NewUser creates a UserBuilder with sensible defaults.
func NewUser(id int) *UserBuilder {
	return &UserBuilder{
		user: auth.UserProfile{
			ID:    id,
			Email: "user@example.com",
			Name:  "Test User",
			Role:  auth.GlobalRoleUser,
		},
	}
}

// WithName sets the display name.
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.user.Name = name
	return b
}

// WithEmail sets the email address.
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

// AsAdmin marks the account as a global admin.
func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.user.Role = auth.GlobalRoleAdmin
	return b
}

// Build returns the built profile.
func (b *UserBuilder) Build() auth.UserProfile {
	return b.user
}

// ProjectBuilder provides a fluent interface for building Project fixtures.
type ProjectBuilder struct {
	project model.Project
}

// NewProject creates a ProjectBuilder with sensible defaults: the creator
// is user 1 and also the sole OWNER member.
func NewProject(id int) *ProjectBuilder {
	return &ProjectBuilder{
		project: model.Project{
			ID:          id,
			CreatorID:   1,
			CreatorName: "Test User",
			Name:        "Test Project",
			Status:      model.StatusInProgress,
			Members: []model.ProjectMember{
				{UserID: 1, Name: "Test User", Role: auth.ProjectRoleOwner},
			},
		},
	}
}

// WithName sets the project name.
func (b *ProjectBuilder) WithName(name string) *ProjectBuilder {
	b.project.Name = name
	return b
}

// WithCreator sets the creator and rewrites the default owner membership.
func (b *ProjectBuilder) WithCreator(userID int, name string) *ProjectBuilder {
	b.project.CreatorID = userID
	b.project.CreatorName = name
	b.project.Members = []model.ProjectMember{
		{UserID: userID, Name: name, Role: auth.ProjectRoleOwner},
	}
	return b
}

// WithStatus sets the project status.
func (b *ProjectBuilder) WithStatus(status model.Status) *ProjectBuilder {
	b.project.Status = status
	return b
}

// WithMember appends a member with the given project role.
func (b *ProjectBuilder) WithMember(userID int, role auth.ProjectRole) *ProjectBuilder {
	b.project.Members = append(b.project.Members, model.ProjectMember{
		UserID: userID,
		Name:   "Member",
		Role:   role,
	})
	return b
}

// Build returns the built project.
func (b *ProjectBuilder) Build() model.Project {
	return b.project
}

// TaskBuilder provides a fluent interface for building Task fixtures.
type TaskBuilder struct {
	task model.Task
}

// NewTask creates a TaskBuilder with sensible defaults.
func NewTask(id int) *TaskBuilder {
	return &TaskBuilder{
		task: model.Task{
			ID:      id,
			Name:    "Test Task",
			Creator: "Test User",
			Status:  model.StatusPending,
		},
	}
}

// WithName sets the task name.
func (b *TaskBuilder) WithName(name string) *TaskBuilder {
	b.task.Name = name
	return b
}

// WithStatus sets the task status.
func (b *TaskBuilder) WithStatus(status model.Status) *TaskBuilder {
	b.task.Status = status
	return b
}

// WithDeadline sets the yyyy-MM-dd deadline.
func (b *TaskBuilder) WithDeadline(deadline string) *TaskBuilder {
	b.task.Deadline = deadline
	return b
}

// Build returns the built task.
func (b *TaskBuilder) Build() model.Task {
	return b.task
}
