package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taskdeck/taskdeck/internal/domain/auth"
	"github.com/taskdeck/taskdeck/internal/domain/model"
)

func user(id int) auth.UserProfile {
	return auth.UserProfile{ID: id, Role: auth.GlobalRoleUser}
}

func TestCanEditProject(t *testing.T) {
	tests := []struct {
		name     string
		user     auth.UserProfile
		project  model.Project
		expected bool
	}{
		{
			name:     "creator not in member list",
			user:     user(1),
			project:  model.Project{CreatorID: 1},
			expected: true,
		},
		{
			name: "owner member who is not the creator",
			user: user(2),
			project: model.Project{
				CreatorID: 1,
				Members:   []model.ProjectMember{{UserID: 2, Role: auth.ProjectRoleOwner}},
			},
			expected: true,
		},
		{
			name: "plain member",
			user: user(2),
			project: model.Project{
				CreatorID: 1,
				Members:   []model.ProjectMember{{UserID: 2, Role: auth.ProjectRoleUser}},
			},
			expected: false,
		},
		{
			name:     "stranger",
			user:     user(9),
			project:  model.Project{CreatorID: 1},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanEditProject(tt.user, tt.project))
		})
	}
}

func TestCanFullyEdit(t *testing.T) {
	creator := user(1)

	assert.True(t, CanFullyEdit(creator, model.Project{CreatorID: 1, Status: model.StatusInProgress}))
	assert.False(t, CanFullyEdit(creator, model.Project{CreatorID: 1, Status: model.StatusCompleted}))
	assert.False(t, CanFullyEdit(user(2), model.Project{CreatorID: 1, Status: model.StatusPending}))
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, IsAdmin(auth.UserProfile{Role: auth.GlobalRoleAdmin}))
	assert.False(t, IsAdmin(auth.UserProfile{Role: auth.GlobalRoleUser}))
}

func TestCanLeaveProject(t *testing.T) {
	project := model.Project{
		CreatorID: 1,
		Members: []model.ProjectMember{
			{UserID: 1, Role: auth.ProjectRoleOwner},
			{UserID: 2, Role: auth.ProjectRoleUser},
		},
	}

	// The creator cannot leave, even while listed as a member.
	assert.False(t, CanLeaveProject(user(1), project))
	// Any non-creator member can.
	assert.True(t, CanLeaveProject(user(2), project))
	// Non-members have nothing to leave.
	assert.False(t, CanLeaveProject(user(3), project))
}
