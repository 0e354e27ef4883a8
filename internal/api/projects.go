package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/taskdeck/taskdeck/internal/domain/model"
)

// ProjectService wraps the project CRUD, membership, and tag endpoints.
// Pagination, sorting, and filtering are the backend's; queries are
// echoed through untouched.
type ProjectService struct {
	c *Client
}

// List fetches projects visible to the current user.
func (s *ProjectService) List(ctx context.Context, query model.ProjectQuery) ([]model.Project, error) {
	var projects []model.Project
	if err := s.c.doJSON(ctx, http.MethodGet, "/projects", query.Values(), nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Get fetches one project with its member list.
func (s *ProjectService) Get(ctx context.Context, projectID int) (model.Project, error) {
	var project model.Project
	path := fmt.Sprintf("/projects/%d", projectID)
	if err := s.c.doJSON(ctx, http.MethodGet, path, nil, nil, &project); err != nil {
		return model.Project{}, err
	}
	return project, nil
}

// Create creates a project; the creator becomes its owner.
func (s *ProjectService) Create(ctx context.Context, project model.CreateProject) (model.StatusMessage, error) {
	return s.c.doMessage(ctx, http.MethodPost, "/projects", nil, project)
}

// Update patches project fields. A completed project accepts status-only
// changes; the backend enforces that, callers consult the access package
// before offering more.
func (s *ProjectService) Update(ctx context.Context, projectID int, updates model.EditProject) (model.StatusMessage, error) {
	path := fmt.Sprintf("/projects/%d", projectID)
	return s.c.doMessage(ctx, http.MethodPatch, path, nil, updates)
}

// Delete removes a project.
func (s *ProjectService) Delete(ctx context.Context, projectID int) (model.StatusMessage, error) {
	path := fmt.Sprintf("/projects/%d", projectID)
	return s.c.doMessage(ctx, http.MethodDelete, path, nil, nil)
}

// InviteMembers invites users to the project with their roles.
func (s *ProjectService) InviteMembers(ctx context.Context, projectID int, invites []model.MemberRoleChange) (model.StatusMessage, error) {
	path := fmt.Sprintf("/projects/%d/users", projectID)
	return s.c.doMessage(ctx, http.MethodPost, path, nil, invites)
}

// SetMemberRole changes one member's project role.
func (s *ProjectService) SetMemberRole(ctx context.Context, projectID int, change model.MemberRoleChange) (model.StatusMessage, error) {
	path := fmt.Sprintf("/projects/%d/users", projectID)
	return s.c.doMessage(ctx, http.MethodPatch, path, nil, change)
}

// RemoveMember removes a member from the project. Leaving a project is
// this call with the current user's own id.
func (s *ProjectService) RemoveMember(ctx context.Context, projectID, userID int) (model.StatusMessage, error) {
	path := fmt.Sprintf("/projects/%d/users/%d", projectID, userID)
	return s.c.doMessage(ctx, http.MethodDelete, path, nil, nil)
}

// Tags lists the project's tags.
func (s *ProjectService) Tags(ctx context.Context, projectID int) (model.ProjectTags, error) {
	var tags model.ProjectTags
	path := fmt.Sprintf("/projects/%d/tags", projectID)
	if err := s.c.doJSON(ctx, http.MethodGet, path, nil, nil, &tags); err != nil {
		return model.ProjectTags{}, err
	}
	return tags, nil
}

// AddTag creates a tag on the project.
func (s *ProjectService) AddTag(ctx context.Context, projectID int, name string) (model.StatusMessage, error) {
	path := fmt.Sprintf("/projects/%d/tags", projectID)
	return s.c.doMessage(ctx, http.MethodPost, path, nil, model.TagContent{Name: name})
}

// EditTag renames a tag.
func (s *ProjectService) EditTag(ctx context.Context, projectID, tagID int, name string) (model.StatusMessage, error) {
	path := fmt.Sprintf("/projects/%d/tags/%d", projectID, tagID)
	return s.c.doMessage(ctx, http.MethodPut, path, nil, model.TagContent{Name: name})
}

// DeleteTag removes a tag from the project and from any tasks carrying it.
func (s *ProjectService) DeleteTag(ctx context.Context, projectID, tagID int) (model.StatusMessage, error) {
	path := fmt.Sprintf("/projects/%d/tags/%d", projectID, tagID)
	return s.c.doMessage(ctx, http.MethodDelete, path, nil, nil)
}
