package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/taskdeck/taskdeck/internal/domain/model"
)

// TaskService wraps task CRUD plus the task-scoped membership, comment,
// tag, and attachment endpoints.
type TaskService struct {
	c *Client
}

type taskMemberRef struct {
	UserID int `json:"user_id"`
}

type taskTagRef struct {
	TagID int `json:"tag_id"`
}

// List fetches the project's tasks, optionally filtered and sorted
// server-side.
func (s *TaskService) List(ctx context.Context, projectID int, query model.TaskQuery) (model.TaskList, error) {
	var list model.TaskList
	path := fmt.Sprintf("/projects/%d/tasks", projectID)
	if err := s.c.doJSON(ctx, http.MethodGet, path, query.Values(), nil, &list); err != nil {
		return model.TaskList{}, err
	}
	return list, nil
}

// Get fetches one task with members, comments, tags, and attachments.
func (s *TaskService) Get(ctx context.Context, projectID, taskID int) (model.TaskDetail, error) {
	var detail model.TaskDetail
	path := fmt.Sprintf("/projects/%d/tasks/%d", projectID, taskID)
	if err := s.c.doJSON(ctx, http.MethodGet, path, nil, nil, &detail); err != nil {
		return model.TaskDetail{}, err
	}
	return detail, nil
}

// Add creates a task on the project.
func (s *TaskService) Add(ctx context.Context, projectID int, task model.NewTask) (model.StatusMessage, error) {
	path := fmt.Sprintf("/projects/%d/tasks", projectID)
	return s.c.doMessage(ctx, http.MethodPost, path, nil, task)
}

// Update patches task fields. A completed task accepts status-only
// changes, enforced by the backend.
func (s *TaskService) Update(ctx context.Context, projectID, taskID int, updates model.EditTask) (model.StatusMessage, error) {
	path := fmt.Sprintf("/projects/%d/tasks/%d", projectID, taskID)
	return s.c.doMessage(ctx, http.MethodPatch, path, nil, updates)
}

// Delete removes a task.
func (s *TaskService) Delete(ctx context.Context, projectID, taskID int) (model.StatusMessage, error) {
	path := fmt.Sprintf("/projects/%d/tasks/%d", projectID, taskID)
	return s.c.doMessage(ctx, http.MethodDelete, path, nil, nil)
}

// AssignMembers assigns project members to the task.
func (s *TaskService) AssignMembers(ctx context.Context, projectID, taskID int, userIDs []int) (model.StatusMessage, error) {
	refs := make([]taskMemberRef, 0, len(userIDs))
	for _, id := range userIDs {
		refs = append(refs, taskMemberRef{UserID: id})
	}
	path := fmt.Sprintf("/projects/%d/tasks/%d/users", projectID, taskID)
	return s.c.doMessage(ctx, http.MethodPost, path, nil, refs)
}

// RemoveMember unassigns a member from the task.
func (s *TaskService) RemoveMember(ctx context.Context, projectID, taskID, userID int) (model.StatusMessage, error) {
	path := fmt.Sprintf("/projects/%d/tasks/%d/users/%d", projectID, taskID, userID)
	return s.c.doMessage(ctx, http.MethodDelete, path, nil, nil)
}

// AddComment posts a comment on the task.
func (s *TaskService) AddComment(ctx context.Context, projectID, taskID int, content string) (model.StatusMessage, error) {
	path := fmt.Sprintf("/projects/%d/tasks/%d/comments", projectID, taskID)
	return s.c.doMessage(ctx, http.MethodPost, path, nil, model.CommentContent{Content: content})
}

// UpdateComment replaces a comment's content.
func (s *TaskService) UpdateComment(ctx context.Context, projectID, taskID, commentID int, content string) (model.StatusMessage, error) {
	path := fmt.Sprintf("/projects/%d/tasks/%d/comments/%d", projectID, taskID, commentID)
	return s.c.doMessage(ctx, http.MethodPut, path, nil, model.CommentContent{Content: content})
}

// DeleteComment removes a comment.
func (s *TaskService) DeleteComment(ctx context.Context, projectID, taskID, commentID int) (model.StatusMessage, error) {
	path := fmt.Sprintf("/projects/%d/tasks/%d/comments/%d", projectID, taskID, commentID)
	return s.c.doMessage(ctx, http.MethodDelete, path, nil, nil)
}

// AttachTag associates one of the project's tags with the task.
func (s *TaskService) AttachTag(ctx context.Context, projectID, taskID, tagID int) (model.StatusMessage, error) {
	path := fmt.Sprintf("/projects/%d/tasks/%d/tags", projectID, taskID)
	return s.c.doMessage(ctx, http.MethodPost, path, nil, taskTagRef{TagID: tagID})
}

// DetachTag removes a tag association from the task.
func (s *TaskService) DetachTag(ctx context.Context, projectID, taskID, tagID int) (model.StatusMessage, error) {
	path := fmt.Sprintf("/projects/%d/tasks/%d/tags/%d", projectID, taskID, tagID)
	return s.c.doMessage(ctx, http.MethodDelete, path, nil, nil)
}

// DownloadAttachment streams an attachment's content. The caller closes
// the returned reader.
func (s *TaskService) DownloadAttachment(ctx context.Context, projectID, taskID, attachmentID int) (io.ReadCloser, error) {
	path := fmt.Sprintf("/projects/%d/tasks/%d/attachments/%d", projectID, taskID, attachmentID)
	return s.c.download(ctx, path)
}

// UploadAttachment uploads a file as multipart form data under the
// "file" field.
func (s *TaskService) UploadAttachment(ctx context.Context, projectID, taskID int, fileName string, content io.Reader) (model.StatusMessage, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return model.StatusMessage{}, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return model.StatusMessage{}, fmt.Errorf("copy attachment content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return model.StatusMessage{}, fmt.Errorf("finalize multipart body: %w", err)
	}

	path := fmt.Sprintf("/projects/%d/tasks/%d/attachments", projectID, taskID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.c.endpoint(path, nil), &buf)
	if err != nil {
		return model.StatusMessage{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := s.c.send(req)
	if err != nil {
		return model.StatusMessage{}, fmt.Errorf("POST %s: %w", path, err)
	}
	respBody, err := readAndClose(resp)
	if err != nil {
		return model.StatusMessage{}, fmt.Errorf("POST %s: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.StatusMessage{}, &StatusError{StatusCode: resp.StatusCode, Message: failMessage(respBody)}
	}

	var msg model.StatusMessage
	if err := json.Unmarshal(respBody, &msg); err != nil {
		return model.StatusMessage{}, fmt.Errorf("POST %s: decode response: %w", path, err)
	}
	if msg.Failed() {
		return model.StatusMessage{}, &AppError{Message: msg.Message}
	}
	return msg, nil
}

// DeleteAttachment removes an attachment.
func (s *TaskService) DeleteAttachment(ctx context.Context, projectID, taskID, attachmentID int) (model.StatusMessage, error) {
	path := fmt.Sprintf("/projects/%d/tasks/%d/attachments/%d", projectID, taskID, attachmentID)
	return s.c.doMessage(ctx, http.MethodDelete, path, nil, nil)
}
