package todo

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/cache"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/model"
	"todo-api/internal/domain/progress"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

type todoUseCase struct {
	gateway    db.TodoGateway
	statsCache cache.StatsCache
	publisher  queue.EventPublisher
	now        func() time.Time
	newID      func() string
}

func NewTodoUseCase(gateway db.TodoGateway, statsCache cache.StatsCache, publisher queue.EventPublisher) UseCase {
	return &todoUseCase{
		gateway:    gateway,
		statsCache: statsCache,
		publisher:  publisher,
		now:        func() time.Time { return time.Now().UTC() },
		newID:      uuid.NewString,
	}
}

func (uc *todoUseCase) List(ctx context.Context, session *entity.Session, query model.ListTodosQuery) (*model.TodoListResponse, error) {
	response := &model.TodoListResponse{Todos: make([]model.TodoResponse, 0)}
	if session == nil {
		return response, nil
	}

	todos, err := uc.gateway.FindAllByUser(ctx, session.UserID)
	if err != nil {
		log.Error(msg.GetMessage("todo.error.load-failed", session.UserID, err))
		return nil, err
	}

	for _, todo := range todos {
		if todo.Completed {
			response.CompletedCount++
		} else {
			response.PendingCount++
		}

		if !matches(todo, query) {
			continue
		}
		response.Todos = append(response.Todos, toResponse(todo))
	}
	return response, nil
}

func matches(todo entity.Todo, query model.ListTodosQuery) bool {
	switch query.Filter {
	case model.FilterPending:
		if todo.Completed {
			return false
		}
	case model.FilterCompleted:
		if !todo.Completed {
			return false
		}
	}
	return query.Status == nil || todo.Status == *query.Status
}

func (uc *todoUseCase) Get(ctx context.Context, session *entity.Session, id string) (*model.TodoResponse, error) {
	if session == nil {
		return nil, model.ErrNotAuthenticated
	}

	todo, err := uc.gateway.FindByID(ctx, session.UserID, id)
	if err != nil {
		return nil, err
	}
	response := toResponse(*todo)
	return &response, nil
}

func (uc *todoUseCase) Create(ctx context.Context, session *entity.Session, dto model.CreateTodoDTO) (*model.TodoResponse, error) {
	if session == nil {
		return nil, model.ErrNotAuthenticated
	}

	title := strings.TrimSpace(dto.Title)
	if title == "" {
		return nil, model.ErrTitleRequired
	}

	status := entity.StatusPending
	if dto.StatusID != 0 {
		parsed, err := entity.ParseStatus(dto.StatusID)
		if err != nil {
			return nil, model.ErrInvalidStatus
		}
		status = parsed
	}

	now := uc.now()
	todo := entity.Todo{
		ID:          uc.newID(),
		UserID:      session.UserID,
		Title:       title,
		Description: entity.OptionalText(dto.Description),
		Notes:       entity.OptionalText(dto.Notes),
		Status:      status,
		Completed:   status == entity.StatusCompleted,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	todo.Subtasks = uc.buildSubtasks(todo.ID, dto.Subtasks, now)
	if todo.HasSubtasks() {
		todo, _ = progress.ReconcileTodo(todo)
	}

	if err := uc.gateway.Create(ctx, todo); err != nil {
		return nil, err
	}

	uc.afterMutation(ctx, entity.TodoCreated, todo)
	response := toResponse(todo)
	return &response, nil
}

func (uc *todoUseCase) Update(ctx context.Context, session *entity.Session, id string, dto model.UpdateTodoDTO) (*model.TodoResponse, error) {
	if session == nil {
		return nil, model.ErrNotAuthenticated
	}

	title := strings.TrimSpace(dto.Title)
	if title == "" {
		return nil, model.ErrTitleRequired
	}

	todo, err := uc.gateway.FindByID(ctx, session.UserID, id)
	if err != nil {
		return nil, err
	}

	updated := *todo
	if dto.StatusID != nil {
		status, err := entity.ParseStatus(*dto.StatusID)
		if err != nil {
			return nil, model.ErrInvalidStatus
		}
		if updated, err = progress.Select(updated, status); err != nil {
			return nil, err
		}
	}

	now := uc.now()
	updated.Title = title
	updated.Description = entity.OptionalText(dto.Description)
	updated.Notes = entity.OptionalText(dto.Notes)
	updated.UpdatedAt = now
	updated.Subtasks = uc.buildSubtasks(updated.ID, dto.Subtasks, now)
	// An explicitly selected status is kept as chosen.
	if updated.HasSubtasks() && dto.StatusID == nil {
		updated, _ = progress.ReconcileTodo(updated)
	}

	if err := uc.gateway.Update(ctx, updated); err != nil {
		return nil, err
	}

	uc.afterMutation(ctx, entity.TodoUpdated, updated)
	response := toResponse(updated)
	return &response, nil
}

func (uc *todoUseCase) ToggleComplete(ctx context.Context, session *entity.Session, id string) (*model.TodoResponse, error) {
	if session == nil {
		return nil, model.ErrNotAuthenticated
	}

	todo, err := uc.gateway.FindByID(ctx, session.UserID, id)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	toggled := progress.Toggle(*todo)
	toggled.UpdatedAt = now

	cascaded := make([]entity.Subtask, 0)
	for i := range toggled.Subtasks {
		if toggled.Subtasks[i].Completed != todo.Subtasks[i].Completed {
			toggled.Subtasks[i].UpdatedAt = now
			cascaded = append(cascaded, toggled.Subtasks[i])
		}
	}

	if err := uc.gateway.SaveProgress(ctx, toggled, cascaded, true); err != nil {
		return nil, err
	}

	uc.afterMutation(ctx, entity.TodoStatusChanged, toggled)
	response := toResponse(toggled)
	return &response, nil
}

func (uc *todoUseCase) ToggleSubtask(ctx context.Context, session *entity.Session, todoID string, subtaskID string) (*model.TodoResponse, error) {
	if session == nil {
		return nil, model.ErrNotAuthenticated
	}

	todo, err := uc.gateway.FindByID(ctx, session.UserID, todoID)
	if err != nil {
		return nil, err
	}

	updated, flipped, changed, err := progress.ToggleSubtask(*todo, subtaskID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	flipped.UpdatedAt = now
	for i := range updated.Subtasks {
		if updated.Subtasks[i].ID == flipped.ID {
			updated.Subtasks[i] = flipped
		}
	}
	if changed {
		updated.UpdatedAt = now
	}

	if err := uc.gateway.SaveProgress(ctx, updated, []entity.Subtask{flipped}, changed); err != nil {
		return nil, err
	}

	uc.afterMutation(ctx, entity.TodoSubtaskToggled, updated)
	response := toResponse(updated)
	return &response, nil
}

func (uc *todoUseCase) ChangeStatus(ctx context.Context, session *entity.Session, id string, statusID int) (*model.TodoResponse, error) {
	if session == nil {
		return nil, model.ErrNotAuthenticated
	}

	status, err := entity.ParseStatus(statusID)
	if err != nil {
		return nil, model.ErrInvalidStatus
	}

	todo, err := uc.gateway.FindByID(ctx, session.UserID, id)
	if err != nil {
		return nil, err
	}

	selected, err := progress.Select(*todo, status)
	if err != nil {
		return nil, err
	}
	selected.UpdatedAt = uc.now()

	if err := uc.gateway.SaveProgress(ctx, selected, nil, true); err != nil {
		return nil, err
	}

	uc.afterMutation(ctx, entity.TodoStatusChanged, selected)
	response := toResponse(selected)
	return &response, nil
}

func (uc *todoUseCase) Delete(ctx context.Context, session *entity.Session, id string) error {
	if session == nil {
		return model.ErrNotAuthenticated
	}

	if err := uc.gateway.Delete(ctx, session.UserID, id); err != nil {
		return err
	}

	uc.afterMutation(ctx, entity.TodoDeleted, entity.Todo{ID: id, UserID: session.UserID})
	return nil
}

// buildSubtasks turns the submitted subtasks into entities, dropping blank titles and clamping weights.
func (uc *todoUseCase) buildSubtasks(todoID string, dtos []model.SubtaskDTO, now time.Time) []entity.Subtask {
	subtasks := make([]entity.Subtask, 0, len(dtos))
	for i, dto := range dtos {
		title := strings.TrimSpace(dto.Title)
		if title == "" {
			continue
		}
		// Keep submission order stable under the created_at ordering.
		createdAt := now.Add(time.Duration(i) * time.Microsecond)
		subtasks = append(subtasks, entity.Subtask{
			ID:        uc.newID(),
			TodoID:    todoID,
			Title:     title,
			Weight:    entity.ClampWeight(dto.Weight),
			Completed: dto.Completed,
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		})
	}
	return subtasks
}

// afterMutation evicts the owner's stats and publishes the change. Failures are only logged.
func (uc *todoUseCase) afterMutation(ctx context.Context, eventType entity.TodoEventType, todo entity.Todo) {
	if err := uc.statsCache.Evict(ctx, todo.UserID); err != nil {
		log.Warn(msg.GetMessage("todo.stats.evict-failed", todo.UserID, err))
	}

	event := entity.TodoEvent{
		ID:         uc.newID(),
		Type:       eventType,
		UserID:     todo.UserID,
		TodoID:     todo.ID,
		Status:     todo.Status,
		Completed:  todo.Completed,
		Progress:   progress.Calculate(todo),
		OccurredAt: uc.now(),
	}
	if err := uc.publisher.Publish(ctx, event); err != nil {
		log.Warn(msg.GetMessage("todo.event.publish-failed", eventType, todo.ID, err),
			zap.String("user_id", todo.UserID))
	}
}

func toResponse(todo entity.Todo) model.TodoResponse {
	return model.TodoResponse{
		Todo:       todo,
		StatusName: todo.Status.String(),
		Progress:   progress.Calculate(todo),
	}
}
