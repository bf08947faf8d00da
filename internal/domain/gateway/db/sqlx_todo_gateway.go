package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

const (
	todoColumns    = "id, user_id, title, description, notes, status_id, completed, created_at, updated_at"
	subtaskColumns = "id, todo_id, title, weight, completed, created_at, updated_at"
)

type SQLXTodoGateway struct {
	DB *sqlx.DB
}

var (
	_ TodoGateway      = (*SQLXTodoGateway)(nil)
	_ TodoStatsGateway = (*SQLXTodoGateway)(nil)
)

func NewSQLXTodoGateway(db *sqlx.DB) *SQLXTodoGateway {
	return &SQLXTodoGateway{DB: db}
}

func (gateway *SQLXTodoGateway) FindAllByUser(ctx context.Context, userID string) ([]entity.Todo, error) {
	todos := make([]entity.Todo, 0)
	query := gateway.DB.Rebind(`
		SELECT ` + todoColumns + `
		FROM todos
		WHERE user_id = ?
		ORDER BY created_at DESC, id`)
	if err := gateway.DB.SelectContext(ctx, &todos, query, userID); err != nil {
		return nil, fmt.Errorf("listing todos of user %s: %w", userID, err)
	}

	if err := gateway.attachSubtasks(ctx, todos); err != nil {
		return nil, err
	}
	return todos, nil
}

func (gateway *SQLXTodoGateway) FindByID(ctx context.Context, userID string, id string) (*entity.Todo, error) {
	var todo entity.Todo
	query := gateway.DB.Rebind(`SELECT ` + todoColumns + ` FROM todos WHERE id = ? AND user_id = ?`)
	err := gateway.DB.GetContext(ctx, &todo, query, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrTodoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("finding todo %s: %w", id, err)
	}

	todos := []entity.Todo{todo}
	if err := gateway.attachSubtasks(ctx, todos); err != nil {
		return nil, err
	}
	return &todos[0], nil
}

// attachSubtasks loads the subtasks of every todo in one query, oldest first.
func (gateway *SQLXTodoGateway) attachSubtasks(ctx context.Context, todos []entity.Todo) error {
	if len(todos) == 0 {
		return nil
	}

	ids := make([]string, len(todos))
	index := make(map[string]int, len(todos))
	for i := range todos {
		ids[i] = todos[i].ID
		index[todos[i].ID] = i
		todos[i].Subtasks = make([]entity.Subtask, 0)
	}

	query, args, err := sqlx.In(`
		SELECT `+subtaskColumns+`
		FROM subtasks
		WHERE todo_id IN (?)
		ORDER BY created_at, id`, ids)
	if err != nil {
		return fmt.Errorf("building subtask query: %w", err)
	}

	var subtasks []entity.Subtask
	if err := gateway.DB.SelectContext(ctx, &subtasks, gateway.DB.Rebind(query), args...); err != nil {
		return fmt.Errorf("loading subtasks: %w", err)
	}

	for _, subtask := range subtasks {
		i := index[subtask.TodoID]
		todos[i].Subtasks = append(todos[i].Subtasks, subtask)
	}
	return nil
}

func (gateway *SQLXTodoGateway) Create(ctx context.Context, todo entity.Todo) error {
	return gateway.inTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO todos (`+todoColumns+`)
			VALUES (:id, :user_id, :title, :description, :notes, :status_id, :completed, :created_at, :updated_at)`,
			todo)
		if err != nil {
			return fmt.Errorf("creating todo: %w", err)
		}
		return insertSubtasks(ctx, tx, todo.Subtasks)
	})
}

func (gateway *SQLXTodoGateway) Update(ctx context.Context, todo entity.Todo) error {
	return gateway.inTx(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.NamedExecContext(ctx, `
			UPDATE todos SET
				title = :title, description = :description, notes = :notes,
				status_id = :status_id, completed = :completed, updated_at = :updated_at
			WHERE id = :id AND user_id = :user_id`,
			todo)
		if err != nil {
			return fmt.Errorf("updating todo %s: %w", todo.ID, err)
		}
		if err := expectRow(result); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM subtasks WHERE todo_id = ?"), todo.ID); err != nil {
			return fmt.Errorf("clearing subtasks of todo %s: %w", todo.ID, err)
		}
		return insertSubtasks(ctx, tx, todo.Subtasks)
	})
}

func (gateway *SQLXTodoGateway) SaveProgress(ctx context.Context, todo entity.Todo, subtasks []entity.Subtask, updateTodo bool) error {
	return gateway.inTx(ctx, func(tx *sqlx.Tx) error {
		updateSubtask := tx.Rebind("UPDATE subtasks SET completed = ?, updated_at = ? WHERE id = ? AND todo_id = ?")
		for _, subtask := range subtasks {
			result, err := tx.ExecContext(ctx, updateSubtask, subtask.Completed, subtask.UpdatedAt, subtask.ID, todo.ID)
			if err != nil {
				return fmt.Errorf("updating subtask %s: %w", subtask.ID, err)
			}
			if affected, _ := result.RowsAffected(); affected == 0 {
				return model.ErrSubtaskNotFound
			}
		}

		if !updateTodo {
			return nil
		}
		result, err := tx.ExecContext(ctx,
			tx.Rebind("UPDATE todos SET status_id = ?, completed = ?, updated_at = ? WHERE id = ? AND user_id = ?"),
			todo.Status, todo.Completed, todo.UpdatedAt, todo.ID, todo.UserID)
		if err != nil {
			return fmt.Errorf("updating status of todo %s: %w", todo.ID, err)
		}
		return expectRow(result)
	})
}

func (gateway *SQLXTodoGateway) Delete(ctx context.Context, userID string, id string) error {
	result, err := gateway.DB.ExecContext(ctx, gateway.DB.Rebind("DELETE FROM todos WHERE id = ? AND user_id = ?"), id, userID)
	if err != nil {
		return fmt.Errorf("deleting todo %s: %w", id, err)
	}
	return expectRow(result)
}

func (gateway *SQLXTodoGateway) DeleteAllByUser(ctx context.Context, userID string) (int64, error) {
	result, err := gateway.DB.ExecContext(ctx, gateway.DB.Rebind("DELETE FROM todos WHERE user_id = ?"), userID)
	if err != nil {
		return 0, fmt.Errorf("deleting todos of user %s: %w", userID, err)
	}
	return result.RowsAffected()
}

func (gateway *SQLXTodoGateway) FindStatusesCreatedSince(ctx context.Context, userID string, since time.Time) ([]entity.Status, error) {
	statuses := make([]entity.Status, 0)
	query := gateway.DB.Rebind("SELECT status_id FROM todos WHERE user_id = ? AND created_at >= ?")
	if err := gateway.DB.SelectContext(ctx, &statuses, query, userID, since.UTC()); err != nil {
		return nil, fmt.Errorf("counting todos of user %s: %w", userID, err)
	}
	return statuses, nil
}

func (gateway *SQLXTodoGateway) FindOldestOpen(ctx context.Context, userID string, limit int) ([]entity.Todo, error) {
	todos := make([]entity.Todo, 0)
	query := gateway.DB.Rebind(`
		SELECT ` + todoColumns + `
		FROM todos
		WHERE user_id = ? AND status_id <> ?
		ORDER BY created_at ASC, id
		LIMIT ?`)
	if err := gateway.DB.SelectContext(ctx, &todos, query, userID, entity.StatusCompleted, limit); err != nil {
		return nil, fmt.Errorf("finding open todos of user %s: %w", userID, err)
	}
	return todos, nil
}

func (gateway *SQLXTodoGateway) FindRecentlyCompleted(ctx context.Context, userID string, limit int) ([]entity.Todo, error) {
	todos := make([]entity.Todo, 0)
	query := gateway.DB.Rebind(`
		SELECT ` + todoColumns + `
		FROM todos
		WHERE user_id = ? AND status_id = ?
		ORDER BY updated_at DESC, id
		LIMIT ?`)
	if err := gateway.DB.SelectContext(ctx, &todos, query, userID, entity.StatusCompleted, limit); err != nil {
		return nil, fmt.Errorf("finding completed todos of user %s: %w", userID, err)
	}
	return todos, nil
}

func (gateway *SQLXTodoGateway) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := gateway.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func insertSubtasks(ctx context.Context, tx *sqlx.Tx, subtasks []entity.Subtask) error {
	for _, subtask := range subtasks {
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO subtasks (`+subtaskColumns+`)
			VALUES (:id, :todo_id, :title, :weight, :completed, :created_at, :updated_at)`,
			subtask)
		if err != nil {
			return fmt.Errorf("creating subtask %q: %w", subtask.Title, err)
		}
	}
	return nil
}

func expectRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrTodoNotFound
	}
	return nil
}
