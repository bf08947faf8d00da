package todo

import (
	"context"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

// UseCase manages the todos of the signed-in user. A nil session reads as
// an empty list and rejects every other operation with model.ErrNotAuthenticated.
type UseCase interface {
	List(ctx context.Context, session *entity.Session, query model.ListTodosQuery) (*model.TodoListResponse, error)
	Get(ctx context.Context, session *entity.Session, id string) (*model.TodoResponse, error)
	Create(ctx context.Context, session *entity.Session, dto model.CreateTodoDTO) (*model.TodoResponse, error)
	Update(ctx context.Context, session *entity.Session, id string, dto model.UpdateTodoDTO) (*model.TodoResponse, error)
	ToggleComplete(ctx context.Context, session *entity.Session, id string) (*model.TodoResponse, error)
	ToggleSubtask(ctx context.Context, session *entity.Session, todoID string, subtaskID string) (*model.TodoResponse, error)
	ChangeStatus(ctx context.Context, session *entity.Session, id string, statusID int) (*model.TodoResponse, error)
	Delete(ctx context.Context, session *entity.Session, id string) error
}
