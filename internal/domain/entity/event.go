package entity

import "time"

type TodoEventType string

const (
	TodoCreated        TodoEventType = "todo.created"
	TodoUpdated        TodoEventType = "todo.updated"
	TodoStatusChanged  TodoEventType = "todo.status-changed"
	TodoSubtaskToggled TodoEventType = "todo.subtask-toggled"
	TodoDeleted        TodoEventType = "todo.deleted"
	TodosCleared       TodoEventType = "todos.cleared"
)

// TodoEvent is published after a todo mutation has been persisted.
type TodoEvent struct {
	ID         string        `json:"id"`
	Type       TodoEventType `json:"type"`
	UserID     string        `json:"userId"`
	TodoID     string        `json:"todoId,omitempty"`
	Status     Status        `json:"statusId,omitempty"`
	Completed  bool          `json:"completed"`
	Progress   int           `json:"progress"`
	OccurredAt time.Time     `json:"occurredAt"`
}
