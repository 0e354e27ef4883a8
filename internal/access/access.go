// Package access derives UI-level permissions from the current user and
// a resource's ownership and membership. Every function is pure and
// advisory only: the backend re-validates all of these rules, these
// exist so the client does not offer actions that will be rejected.
package access

import (
	"github.com/taskdeck/taskdeck/internal/domain/auth"
	"github.com/taskdeck/taskdeck/internal/domain/model"
)

// CanEditProject reports whether the user may edit the project: either
// the user created it, or the user is a member with the OWNER role.
func CanEditProject(user auth.UserProfile, project model.Project) bool {
	if user.ID == project.CreatorID {
		return true
	}
	role, ok := project.MemberRole(user.ID)
	return ok && role == auth.ProjectRoleOwner
}

// CanFullyEdit reports whether every project field may be edited. A
// completed project restricts mutation to status-only changes; the
// field-level restriction itself lives with the edit form, this only
// gates the full-edit affordance.
func CanFullyEdit(user auth.UserProfile, project model.Project) bool {
	return CanEditProject(user, project) && project.Status != model.StatusCompleted
}

// IsAdmin reports whether the user holds the account-wide admin role.
func IsAdmin(user auth.UserProfile) bool {
	return user.Role == auth.GlobalRoleAdmin
}

// CanLeaveProject reports whether the user may leave the project: the
// user must be a member and must not be the creator, who has no way out
// of their own project through this path.
func CanLeaveProject(user auth.UserProfile, project model.Project) bool {
	if user.ID == project.CreatorID {
		return false
	}
	_, ok := project.MemberRole(user.ID)
	return ok
}
