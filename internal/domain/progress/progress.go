// Package progress derives a todo's completion percentage and status from its subtasks.
//
// Every function here is pure: it takes entity snapshots and returns new values.
// Callers are responsible for persisting whatever changed.
package progress

import (
	"math"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
	"todo-api/pkg/util/numberutils"
)

// Calculate returns the todo's completion percentage in [0, 100].
func Calculate(todo entity.Todo) int {
	return CalculateSubtasks(todo.Completed, todo.Subtasks)
}

// CalculateSubtasks is Calculate over an explicit completed flag and subtask list.
// Without subtasks the result is 100 or 0 from the flag. Otherwise it is the
// completed share of the total subtask weight, rounded half away from zero.
func CalculateSubtasks(completed bool, subtasks []entity.Subtask) int {
	if len(subtasks) == 0 {
		if completed {
			return 100
		}
		return 0
	}

	totalWeight, completedWeight := 0, 0
	for _, subtask := range subtasks {
		totalWeight += subtask.Weight
		if subtask.Completed {
			completedWeight += subtask.Weight
		}
	}
	if totalWeight <= 0 {
		return 0
	}

	percent := int(math.Round(float64(completedWeight) * 100 / float64(totalWeight)))
	return numberutils.ClampInt(percent, 0, 100)
}

// Outcome is the result of reconciling a todo against its subtasks.
type Outcome struct {
	Status    entity.Status
	Completed bool
	Changed   bool
}

// Reconcile derives the status implied by the subtasks.
//
// All subtasks completed promotes to Completed. Some completed promotes a
// Pending todo to InProgress. Anything else keeps the current values, so an
// InProgress todo whose subtasks were all unchecked stays InProgress.
// Without subtasks the input is returned unchanged.
func Reconcile(status entity.Status, completed bool, subtasks []entity.Subtask) Outcome {
	current := Outcome{Status: status, Completed: completed}
	if len(subtasks) == 0 {
		return current
	}

	done := 0
	for _, subtask := range subtasks {
		if subtask.Completed {
			done++
		}
	}

	next := current
	switch {
	case done == len(subtasks):
		next = Outcome{Status: entity.StatusCompleted, Completed: true}
	case done > 0 && status == entity.StatusPending:
		next = Outcome{Status: entity.StatusInProgress, Completed: false}
	}

	next.Changed = next.Status != current.Status || next.Completed != current.Completed
	return next
}

// ReconcileTodo applies Reconcile to todo and returns the updated copy.
func ReconcileTodo(todo entity.Todo) (entity.Todo, bool) {
	outcome := Reconcile(todo.Status, todo.Completed, todo.Subtasks)
	todo.Status = outcome.Status
	todo.Completed = outcome.Completed
	return todo, outcome.Changed
}

// Toggle flips the todo's completed flag, bypassing subtask weights.
// Completing forces every subtask to completed. Un-completing resets the
// status to Pending and leaves subtasks untouched.
func Toggle(todo entity.Todo) entity.Todo {
	todo.Completed = !todo.Completed
	if !todo.Completed {
		todo.Status = entity.StatusPending
		return todo
	}

	todo.Status = entity.StatusCompleted
	if len(todo.Subtasks) > 0 {
		subtasks := make([]entity.Subtask, len(todo.Subtasks))
		copy(subtasks, todo.Subtasks)
		for i := range subtasks {
			subtasks[i].Completed = true
		}
		todo.Subtasks = subtasks
	}
	return todo
}

// Select applies a status picked directly by the user. Subtasks are not touched.
func Select(todo entity.Todo, status entity.Status) (entity.Todo, error) {
	if !status.IsValid() {
		return todo, model.ErrInvalidStatus
	}
	todo.Status = status
	todo.Completed = status == entity.StatusCompleted
	return todo, nil
}

// ToggleSubtask flips the completion of one subtask and reconciles the todo.
// The bool result reports whether the todo's own status or completed flag changed.
func ToggleSubtask(todo entity.Todo, subtaskID string) (entity.Todo, entity.Subtask, bool, error) {
	subtasks := make([]entity.Subtask, len(todo.Subtasks))
	copy(subtasks, todo.Subtasks)

	index := -1
	for i := range subtasks {
		if subtasks[i].ID == subtaskID {
			index = i
			break
		}
	}
	if index < 0 {
		return todo, entity.Subtask{}, false, model.ErrSubtaskNotFound
	}

	subtasks[index].Completed = !subtasks[index].Completed
	todo.Subtasks = subtasks

	reconciled, changed := ReconcileTodo(todo)
	return reconciled, subtasks[index], changed, nil
}
