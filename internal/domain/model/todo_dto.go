package model

import "todo-api/internal/domain/entity"

type SubtaskDTO struct {
	Title     string `json:"title" validate:"required"`
	Weight    int    `json:"weight"`
	Completed bool   `json:"completed"`
}

type CreateTodoDTO struct {
	Title       string       `json:"title" validate:"required"`
	Description *string      `json:"description"`
	Notes       *string      `json:"notes"`
	StatusID    int          `json:"statusId" validate:"omitempty,min=1,max=3"`
	Subtasks    []SubtaskDTO `json:"subtasks" validate:"dive"`
}

type UpdateTodoDTO struct {
	Title       string       `json:"title" validate:"required"`
	Description *string      `json:"description"`
	Notes       *string      `json:"notes"`
	StatusID    *int         `json:"statusId" validate:"omitempty,min=1,max=3"`
	Subtasks    []SubtaskDTO `json:"subtasks" validate:"dive"`
}

type ChangeStatusDTO struct {
	StatusID int `json:"statusId" validate:"required,min=1,max=3"`
}

// TodoFilter narrows the todo list the way the dashboard tabs do.
type TodoFilter string

const (
	FilterAll       TodoFilter = "all"
	FilterPending   TodoFilter = "pending"
	FilterCompleted TodoFilter = "completed"
)

func ParseTodoFilter(value string) (TodoFilter, error) {
	switch TodoFilter(value) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterPending, FilterCompleted:
		return TodoFilter(value), nil
	}
	return "", ErrInvalidFilter
}

type ListTodosQuery struct {
	Filter TodoFilter
	Status *entity.Status
}

type TodoResponse struct {
	entity.Todo
	StatusName string `json:"status"`
	Progress   int    `json:"progress"`
}

type TodoListResponse struct {
	Todos          []TodoResponse `json:"todos"`
	PendingCount   int            `json:"pendingCount"`
	CompletedCount int            `json:"completedCount"`
}
