package db

import (
	"context"
	"time"

	"todo-api/internal/domain/entity"
)

type TodoGateway interface {
	// FindAllByUser returns the user's todos with their subtasks, newest first.
	FindAllByUser(ctx context.Context, userID string) ([]entity.Todo, error)
	// FindByID returns model.ErrTodoNotFound when the todo is missing or owned by someone else.
	FindByID(ctx context.Context, userID string, id string) (*entity.Todo, error)

	Create(ctx context.Context, todo entity.Todo) error
	// Update writes the todo row and replaces all of its subtasks atomically.
	Update(ctx context.Context, todo entity.Todo) error
	// SaveProgress writes the completed flag of the given subtasks and, when
	// updateTodo is set, the todo's status and completed flag, atomically.
	SaveProgress(ctx context.Context, todo entity.Todo, subtasks []entity.Subtask, updateTodo bool) error

	// Delete removes the todo. Subtasks go with it through the schema cascade.
	Delete(ctx context.Context, userID string, id string) error
	DeleteAllByUser(ctx context.Context, userID string) (int64, error)
}

type TodoStatsGateway interface {
	FindStatusesCreatedSince(ctx context.Context, userID string, since time.Time) ([]entity.Status, error)
	// FindOldestOpen returns non-completed todos ordered by creation, oldest first.
	FindOldestOpen(ctx context.Context, userID string, limit int) ([]entity.Todo, error)
	// FindRecentlyCompleted returns completed todos ordered by last update, newest first.
	FindRecentlyCompleted(ctx context.Context, userID string, limit int) ([]entity.Todo, error)
}
