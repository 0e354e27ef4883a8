package model

// Package model contains wire-level domain types for the Taskdeck backend.
// Field names keep the backend's snake_case form; the backend owns all
// validation and authorization, these types only carry data.

import (
	"net/url"
	"strconv"

	"github.com/taskdeck/taskdeck/internal/domain/auth"
)

// SortBy names a server-side sort key for project listings.
type SortBy string

const (
	SortByCreatedAt   SortBy = "createdAt"
	SortByUpdatedAt   SortBy = "updatedAt"
	SortByProjectName SortBy = "projectName"
)

// Order is a server-side sort direction.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// ProjectMember is one row of a project's member list.
type ProjectMember struct {
	UserID    int              `json:"user_id"`
	Email     string           `json:"user_email"`
	Name      string           `json:"user_name"`
	Role      auth.ProjectRole `json:"user_project_role"`
	InvitedBy string           `json:"invited_by,omitempty"`
}

// Project is the backend's project detail shape, shared by list and get.
type Project struct {
	ID          int             `json:"project_id"`
	CreatorID   int             `json:"creator_id"`
	CreatorName string          `json:"creator_name"`
	Name        string          `json:"project_name"`
	Description string          `json:"project_description,omitempty"`
	Status      Status          `json:"project_status,omitempty"`
	Members     []ProjectMember `json:"member_list,omitempty"`
	CreatedAt   string          `json:"project_created_time,omitempty"`
	UpdatedAt   string          `json:"project_updated_time,omitempty"`
}

// MemberRole returns the project role of the given user and whether the
// user appears in the member list at all.
func (p Project) MemberRole(userID int) (auth.ProjectRole, bool) {
	for _, m := range p.Members {
		if m.UserID == userID {
			return m.Role, true
		}
	}
	return "", false
}

// ProjectQuery carries list parameters echoed to the backend; zero values
// are omitted from the query string.
type ProjectQuery struct {
	SortBy   SortBy
	Order    Order
	Page     int // starts from 1
	PageSize int
	Status   Status
}

// Values encodes the query for the /projects list endpoint.
func (q ProjectQuery) Values() url.Values {
	v := url.Values{}
	if q.SortBy != "" {
		v.Set("sortBy", string(q.SortBy))
	}
	if q.Order != "" {
		v.Set("order", string(q.Order))
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		v.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	if q.Status != "" {
		v.Set("status", string(q.Status))
	}
	return v
}

// CreateProject is the body for POST /projects.
type CreateProject struct {
	Name        string `json:"project_name"`
	Description string `json:"project_description,omitempty"`
	Status      Status `json:"project_status,omitempty"`
}

// EditProject is the body for PATCH /projects/:id. Empty fields are left
// untouched by the backend.
type EditProject struct {
	Name        string `json:"project_name,omitempty"`
	Description string `json:"project_description,omitempty"`
	Status      Status `json:"project_status,omitempty"`
}

// MemberRoleChange is the body for inviting a member or changing a
// member's project role.
type MemberRoleChange struct {
	UserID int              `json:"user_id"`
	Role   auth.ProjectRole `json:"user_role"`
}

// Tag is a label owned by a project, attachable to its tasks.
type Tag struct {
	ID        int    `json:"tag_id"`
	Name      string `json:"tag_name"`
	Creator   string `json:"creator,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// ProjectTags is the response of GET /projects/:id/tags.
type ProjectTags struct {
	ProjectID int   `json:"project_id"`
	Tags      []Tag `json:"tags"`
}

// TagContent is the body for creating or renaming a tag.
type TagContent struct {
	Name string `json:"tag_name"`
}
