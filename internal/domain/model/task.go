package model

import (
	"net/url"
	"sort"
)

// TaskSortBy names a server-side sort key for task listings.
type TaskSortBy string

const (
	TaskSortByCreatedAt TaskSortBy = "createdAt"
	TaskSortByUpdatedAt TaskSortBy = "updatedAt"
	TaskSortByTaskName  TaskSortBy = "taskName"
)

// TaskMember is one row of a task's member list.
type TaskMember struct {
	UserID    int    `json:"user_id"`
	Email     string `json:"user_email"`
	Name      string `json:"user_name"`
	InvitedBy string `json:"invited_by,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// Task is one row of a project's task list.
type Task struct {
	ID          int          `json:"task_id"`
	Name        string       `json:"task_name"`
	Creator     string       `json:"creator"`
	Description string       `json:"task_description,omitempty"`
	Status      Status       `json:"status,omitempty"`
	Deadline    string       `json:"task_deadline,omitempty"`
	Members     []TaskMember `json:"member_list,omitempty"`
	CreatedAt   string       `json:"created_at,omitempty"`
	UpdatedAt   string       `json:"updated_at,omitempty"`
	Editable    bool         `json:"is_editable,omitempty"`
}

// TaskList is the response of GET /projects/:id/tasks.
type TaskList struct {
	ProjectID int    `json:"project_id"`
	Tasks     []Task `json:"tasks_list"`
}

// Attachment is a file attached to a task.
type Attachment struct {
	ID          int    `json:"id"`
	FileName    string `json:"file_name"`
	ContentPath string `json:"content_path"`
	CreatorName string `json:"creator_name"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// Comment is a comment on a task.
type Comment struct {
	ID        int    `json:"comment_id"`
	UserName  string `json:"user_name"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// CommentContent is the body for creating or editing a comment.
type CommentContent struct {
	Content string `json:"content"`
}

// TaskDetail is the response of GET /projects/:id/tasks/:taskId.
type TaskDetail struct {
	ID          int          `json:"task_id"`
	Name        string       `json:"task_name"`
	Description string       `json:"description,omitempty"`
	CreatorName string       `json:"creator_name"`
	Status      Status       `json:"status"`
	Deadline    string       `json:"deadline,omitempty"`
	Members     []TaskMember `json:"member_lists,omitempty"`
	Attachments []Attachment `json:"task_attachments,omitempty"`
	Comments    []Comment    `json:"task_comments,omitempty"`
	Tags        []Tag        `json:"tags,omitempty"`
	CreatedAt   string       `json:"created_at,omitempty"`
	UpdatedAt   string       `json:"updated_at,omitempty"`
	Editable    bool         `json:"is_editable,omitempty"`
}

// NewTask is the body for POST /projects/:id/tasks.
type NewTask struct {
	Name        string `json:"task_name"`
	Description string `json:"task_description,omitempty"`
	Status      Status `json:"task_status,omitempty"`
	Deadline    string `json:"task_deadline"` // yyyy-MM-dd
}

// EditTask is the body for PATCH /projects/:id/tasks/:taskId.
type EditTask struct {
	Name        string `json:"task_name,omitempty"`
	Description string `json:"task_description,omitempty"`
	Status      Status `json:"status,omitempty"`
	Deadline    string `json:"task_deadline,omitempty"`
}

// TaskQuery carries list parameters echoed to the backend.
type TaskQuery struct {
	Status Status
	SortBy TaskSortBy
	Order  Order
}

// Values encodes the query for the task list endpoint.
func (q TaskQuery) Values() url.Values {
	v := url.Values{}
	if q.Status != "" {
		v.Set("status", string(q.Status))
	}
	if q.SortBy != "" {
		v.Set("sortBy", string(q.SortBy))
	}
	if q.Order != "" {
		v.Set("order", string(q.Order))
	}
	return v
}

// SortTasksByDeadline sorts tasks by their deadline string in place,
// earliest first. Tasks without a deadline sort last. Deadlines are
// ISO-ordered strings so a plain string compare is enough; this is the
// client-side fallback used when the backend was not asked to sort.
func SortTasksByDeadline(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i].Deadline, tasks[j].Deadline
		if a == "" {
			return false
		}
		if b == "" {
			return true
		}
		return a < b
	})
}
