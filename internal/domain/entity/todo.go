package entity

import (
	"strings"
	"time"
)

type Todo struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"userId" db:"user_id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description" db:"description"`
	Notes       *string   `json:"notes" db:"notes"`
	Status      Status    `json:"statusId" db:"status_id"`
	Completed   bool      `json:"completed" db:"completed"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
	Subtasks    []Subtask `json:"subtasks" db:"-"`
}

// HasSubtasks reports whether the todo's status is derived from its subtasks.
func (t Todo) HasSubtasks() bool {
	return len(t.Subtasks) > 0
}

// OptionalText trims s and returns nil when nothing is left.
func OptionalText(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
