package entity

import (
	"time"

	"todo-api/pkg/util/numberutils"
)

const (
	MinSubtaskWeight = 1
	MaxSubtaskWeight = 5
)

type Subtask struct {
	ID        string    `json:"id" db:"id"`
	TodoID    string    `json:"todoId" db:"todo_id"`
	Title     string    `json:"title" db:"title"`
	Weight    int       `json:"weight" db:"weight"`
	Completed bool      `json:"completed" db:"completed"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// ClampWeight bounds a subtask weight to [MinSubtaskWeight, MaxSubtaskWeight].
func ClampWeight(weight int) int {
	return numberutils.ClampInt(weight, MinSubtaskWeight, MaxSubtaskWeight)
}
