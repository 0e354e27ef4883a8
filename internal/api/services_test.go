package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/domain/auth"
	"github.com/taskdeck/taskdeck/internal/domain/model"
)

func TestProjectService_ListDecodes(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/projects", r.URL.Path)
		assert.Equal(t, "desc", r.URL.Query().Get("order"))
		assert.Equal(t, "IN_PROGRESS", r.URL.Query().Get("status"))
		writeJSON(w, http.StatusOK, `[
			{"project_id":1,"creator_id":2,"creator_name":"Bo","project_name":"Alpha",
			 "project_status":"IN_PROGRESS",
			 "member_list":[{"user_id":2,"user_name":"Bo","user_project_role":"OWNER"}]}
		]`)
	})
	env.login(t, "tok")

	projects, err := env.client.Projects().List(context.Background(), model.ProjectQuery{
		Order:  model.OrderDesc,
		Status: model.StatusInProgress,
	})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Alpha", projects[0].Name)
	role, ok := projects[0].MemberRole(2)
	require.True(t, ok)
	assert.Equal(t, auth.ProjectRoleOwner, role)
}

func TestProjectService_MemberAndTagEndpoints(t *testing.T) {
	type call struct {
		method, path, body string
	}
	var calls []call
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		calls = append(calls, call{r.Method, r.URL.Path, string(body)})
		writeJSON(w, http.StatusOK, okEnvelope)
	})
	env.login(t, "tok")
	ctx := context.Background()
	svc := env.client.Projects()

	_, err := svc.InviteMembers(ctx, 7, []model.MemberRoleChange{{UserID: 3, Role: auth.ProjectRoleUser}})
	require.NoError(t, err)
	_, err = svc.SetMemberRole(ctx, 7, model.MemberRoleChange{UserID: 3, Role: auth.ProjectRoleOwner})
	require.NoError(t, err)
	_, err = svc.RemoveMember(ctx, 7, 3)
	require.NoError(t, err)
	_, err = svc.AddTag(ctx, 7, "urgent")
	require.NoError(t, err)
	_, err = svc.EditTag(ctx, 7, 9, "later")
	require.NoError(t, err)
	_, err = svc.DeleteTag(ctx, 7, 9)
	require.NoError(t, err)

	require.Len(t, calls, 6)
	assert.Equal(t, call{"POST", "/projects/7/users", `[{"user_id":3,"user_role":"USER"}]`}, calls[0])
	assert.Equal(t, call{"PATCH", "/projects/7/users", `{"user_id":3,"user_role":"OWNER"}`}, calls[1])
	assert.Equal(t, call{"DELETE", "/projects/7/users/3", ""}, calls[2])
	assert.Equal(t, call{"POST", "/projects/7/tags", `{"tag_name":"urgent"}`}, calls[3])
	assert.Equal(t, call{"PUT", "/projects/7/tags/9", `{"tag_name":"later"}`}, calls[4])
	assert.Equal(t, call{"DELETE", "/projects/7/tags/9", ""}, calls[5])
}

func TestTaskService_ListAndDetail(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/projects/7/tasks":
			assert.Equal(t, "PENDING", r.URL.Query().Get("status"))
			writeJSON(w, http.StatusOK,
				`{"project_id":7,"tasks_list":[{"task_id":1,"task_name":"t","creator":"Bo","status":"PENDING"}]}`)
		case "/projects/7/tasks/1":
			writeJSON(w, http.StatusOK,
				`{"task_id":1,"task_name":"t","creator_name":"Bo","status":"PENDING",
				  "task_comments":[{"comment_id":5,"user_name":"Ada","content":"hi"}],
				  "task_attachments":[{"id":4,"file_name":"spec.pdf","content_path":"/x","creator_name":"Bo"}]}`)
		default:
			http.NotFound(w, r)
		}
	})
	env.login(t, "tok")
	ctx := context.Background()

	list, err := env.client.Tasks().List(ctx, 7, model.TaskQuery{Status: model.StatusPending})
	require.NoError(t, err)
	require.Len(t, list.Tasks, 1)
	assert.Equal(t, 7, list.ProjectID)

	detail, err := env.client.Tasks().Get(ctx, 7, 1)
	require.NoError(t, err)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, "hi", detail.Comments[0].Content)
	require.Len(t, detail.Attachments, 1)
	assert.Equal(t, "spec.pdf", detail.Attachments[0].FileName)
}

func TestTaskService_MembershipCommentsTags(t *testing.T) {
	type call struct {
		method, path, body string
	}
	var calls []call
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		calls = append(calls, call{r.Method, r.URL.Path, string(body)})
		writeJSON(w, http.StatusOK, okEnvelope)
	})
	env.login(t, "tok")
	ctx := context.Background()
	svc := env.client.Tasks()

	_, err := svc.AssignMembers(ctx, 7, 1, []int{3, 4})
	require.NoError(t, err)
	_, err = svc.RemoveMember(ctx, 7, 1, 3)
	require.NoError(t, err)
	_, err = svc.AddComment(ctx, 7, 1, "hello")
	require.NoError(t, err)
	_, err = svc.UpdateComment(ctx, 7, 1, 5, "edited")
	require.NoError(t, err)
	_, err = svc.DeleteComment(ctx, 7, 1, 5)
	require.NoError(t, err)
	_, err = svc.AttachTag(ctx, 7, 1, 9)
	require.NoError(t, err)
	_, err = svc.DetachTag(ctx, 7, 1, 9)
	require.NoError(t, err)

	require.Len(t, calls, 7)
	assert.Equal(t, call{"POST", "/projects/7/tasks/1/users", `[{"user_id":3},{"user_id":4}]`}, calls[0])
	assert.Equal(t, call{"DELETE", "/projects/7/tasks/1/users/3", ""}, calls[1])
	assert.Equal(t, call{"POST", "/projects/7/tasks/1/comments", `{"content":"hello"}`}, calls[2])
	assert.Equal(t, call{"PUT", "/projects/7/tasks/1/comments/5", `{"content":"edited"}`}, calls[3])
	assert.Equal(t, call{"DELETE", "/projects/7/tasks/1/comments/5", ""}, calls[4])
	assert.Equal(t, call{"POST", "/projects/7/tasks/1/tags", `{"tag_id":9}`}, calls[5])
	assert.Equal(t, call{"DELETE", "/projects/7/tasks/1/tags/9", ""}, calls[6])
}

func TestTaskService_Attachments(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			require.NoError(t, r.ParseMultipartForm(1<<20))
			file, header, err := r.FormFile("file")
			require.NoError(t, err)
			defer file.Close()
			content, _ := io.ReadAll(file)
			assert.Equal(t, "notes.txt", header.Filename)
			assert.Equal(t, "file content", string(content))
			writeJSON(w, http.StatusCreated, okEnvelope)
		case r.Method == http.MethodGet:
			w.Header().Set("Content-Type", "application/octet-stream")
			_, _ = w.Write([]byte("binary blob"))
		default:
			http.NotFound(w, r)
		}
	})
	env.login(t, "tok")
	ctx := context.Background()
	svc := env.client.Tasks()

	msg, err := svc.UploadAttachment(ctx, 7, 1, "notes.txt", strings.NewReader("file content"))
	require.NoError(t, err)
	assert.Equal(t, "done", msg.Message)

	rc, err := svc.DownloadAttachment(ctx, 7, 1, 4)
	require.NoError(t, err)
	defer rc.Close()
	blob, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "binary blob", string(blob))
	assert.Equal(t, "/projects/7/tasks/1/attachments/4", env.lastReq.URL.Path)
}

func TestUserService(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/users":
			assert.Equal(t, "true", r.URL.Query().Get("isDeleted"))
			writeJSON(w, http.StatusOK, `[{"user_id":3,"user_email":"c@x.com","user_name":"Cy","user_role":"USER"}]`)
		case r.Method == http.MethodGet && r.URL.Path == "/users/3":
			writeJSON(w, http.StatusOK, `{"user_id":3,"user_email":"c@x.com","user_name":"Cy","user_role":"USER"}`)
		case r.Method == http.MethodPatch && r.URL.Path == "/users/3":
			body, _ := io.ReadAll(r.Body)
			var req map[string]any
			require.NoError(t, json.Unmarshal(body, &req))
			assert.Equal(t, true, req["is_admin"])
			writeJSON(w, http.StatusOK, okEnvelope)
		case r.Method == http.MethodDelete && r.URL.Path == "/users/3":
			writeJSON(w, http.StatusOK, okEnvelope)
		default:
			http.NotFound(w, r)
		}
	})
	env.login(t, "tok")
	ctx := context.Background()
	svc := env.client.Users()

	users, err := svc.List(ctx, model.UserQuery{IsDeleted: "true"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Cy", users[0].Name)

	user, err := svc.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, user.ID)

	isAdmin := true
	_, err = svc.Edit(ctx, 3, model.EditUser{IsAdmin: &isAdmin})
	require.NoError(t, err)

	_, err = svc.Delete(ctx, 3)
	require.NoError(t, err)
}
