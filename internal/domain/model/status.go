package model

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state shared by projects and tasks.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// ParseStatus validates a user-supplied status string.
// Matching is case-insensitive; the canonical upper-case form is returned.
func ParseStatus(s string) (Status, error) {
	switch v := Status(strings.ToUpper(strings.TrimSpace(s))); v {
	case StatusPending, StatusInProgress, StatusCompleted:
		return v, nil
	default:
		return "", fmt.Errorf("invalid status: %q (valid options: PENDING, IN_PROGRESS, COMPLETED)", s)
	}
}

// Statuses lists all valid states in board order.
func Statuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted}
}
