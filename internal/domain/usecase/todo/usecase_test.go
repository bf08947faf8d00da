package todo

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/model"
	"todo-api/internal/infra/database/sqldb"
)

type fakeStatsCache struct {
	evicted []string
	err     error
}

func (f *fakeStatsCache) Get(context.Context, string) (*model.StatsResponse, bool, error) {
	return nil, false, nil
}

func (f *fakeStatsCache) Set(context.Context, string, model.StatsResponse) error {
	return nil
}

func (f *fakeStatsCache) Evict(_ context.Context, userID string) error {
	f.evicted = append(f.evicted, userID)
	return f.err
}

type fakePublisher struct {
	events []entity.TodoEvent
	err    error
}

func (f *fakePublisher) Publish(_ context.Context, event entity.TodoEvent) error {
	f.events = append(f.events, event)
	return f.err
}

// brokenProgressGateway fails every SaveProgress after the real writes have started.
type brokenProgressGateway struct {
	*db.SQLXTodoGateway
}

func (g brokenProgressGateway) SaveProgress(ctx context.Context, todo entity.Todo, subtasks []entity.Subtask, updateTodo bool) error {
	unknown := entity.Subtask{ID: "no-such-subtask", Completed: true}
	return g.SQLXTodoGateway.SaveProgress(ctx, todo, append(subtasks, unknown), updateTodo)
}

type fixture struct {
	useCase   *todoUseCase
	gateway   *db.SQLXTodoGateway
	cache     *fakeStatsCache
	publisher *fakePublisher
	clock     time.Time
}

var session = &entity.Session{UserID: "user-1", Email: "ana@example.com"}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	conn, err := sqldb.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	require.NoError(t, sqldb.Migrate(ctx, conn))

	f := &fixture{
		gateway:   db.NewSQLXTodoGateway(conn),
		cache:     &fakeStatsCache{},
		publisher: &fakePublisher{},
		clock:     time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	ids := 0
	f.useCase = NewTodoUseCase(f.gateway, f.cache, f.publisher).(*todoUseCase)
	f.useCase.now = func() time.Time {
		f.clock = f.clock.Add(time.Second)
		return f.clock
	}
	f.useCase.newID = func() string {
		ids++
		return fmt.Sprintf("id-%03d", ids)
	}
	return f
}

func text(s string) *string {
	return &s
}

func TestCreate(t *testing.T) {
	f := newFixture(t)

	created, err := f.useCase.Create(context.Background(), session, model.CreateTodoDTO{
		Title:       "  Buy groceries ",
		Description: text("  "),
		Notes:       text(" milk first "),
	})
	require.NoError(t, err)

	assert.Equal(t, "Buy groceries", created.Title)
	assert.Nil(t, created.Description)
	assert.Equal(t, "milk first", *created.Notes)
	assert.Equal(t, entity.StatusPending, created.Status)
	assert.Equal(t, "Pending", created.StatusName)
	assert.Equal(t, 0, created.Progress)
	assert.Equal(t, "user-1", created.UserID)

	stored, err := f.gateway.FindByID(context.Background(), "user-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Buy groceries", stored.Title)

	assert.Equal(t, []string{"user-1"}, f.cache.evicted)
	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, entity.TodoCreated, f.publisher.events[0].Type)
	assert.Equal(t, created.ID, f.publisher.events[0].TodoID)
}

func TestCreateCompletedStatus(t *testing.T) {
	f := newFixture(t)

	created, err := f.useCase.Create(context.Background(), session, model.CreateTodoDTO{Title: "Done already", StatusID: 3})
	require.NoError(t, err)
	assert.True(t, created.Completed)
	assert.Equal(t, 100, created.Progress)

	_, err = f.useCase.Create(context.Background(), session, model.CreateTodoDTO{Title: "Bad", StatusID: 7})
	assert.ErrorIs(t, err, model.ErrInvalidStatus)
}

func TestCreateWithSubtasksReconciles(t *testing.T) {
	f := newFixture(t)

	created, err := f.useCase.Create(context.Background(), session, model.CreateTodoDTO{
		Title: "Launch",
		Subtasks: []model.SubtaskDTO{
			{Title: "Design", Weight: 3, Completed: true},
			{Title: "Build", Weight: 9},
			{Title: "   "},
		},
	})
	require.NoError(t, err)

	require.Len(t, created.Subtasks, 2, "blank subtasks are dropped")
	assert.Equal(t, 5, created.Subtasks[1].Weight, "weights are clamped")
	assert.Equal(t, entity.StatusInProgress, created.Status)
	assert.Equal(t, 38, created.Progress)

	stored, err := f.gateway.FindByID(context.Background(), "user-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Design", stored.Subtasks[0].Title)
	assert.Equal(t, "Build", stored.Subtasks[1].Title)
}

func TestCreateRequiresSessionAndTitle(t *testing.T) {
	f := newFixture(t)

	_, err := f.useCase.Create(context.Background(), nil, model.CreateTodoDTO{Title: "x"})
	assert.ErrorIs(t, err, model.ErrNotAuthenticated)

	_, err = f.useCase.Create(context.Background(), session, model.CreateTodoDTO{Title: "   "})
	assert.ErrorIs(t, err, model.ErrTitleRequired)

	assert.Empty(t, f.publisher.events)
}

func TestList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.useCase.Create(ctx, session, model.CreateTodoDTO{Title: "first"})
	require.NoError(t, err)
	_, err = f.useCase.Create(ctx, session, model.CreateTodoDTO{Title: "second", StatusID: 3})
	require.NoError(t, err)
	_, err = f.useCase.Create(ctx, session, model.CreateTodoDTO{Title: "third", StatusID: 2})
	require.NoError(t, err)
	_, err = f.useCase.Create(ctx, &entity.Session{UserID: "user-2"}, model.CreateTodoDTO{Title: "not mine"})
	require.NoError(t, err)

	all, err := f.useCase.List(ctx, session, model.ListTodosQuery{Filter: model.FilterAll})
	require.NoError(t, err)
	require.Len(t, all.Todos, 3)
	assert.Equal(t, "third", all.Todos[0].Title)
	assert.Equal(t, first.ID, all.Todos[2].ID)
	assert.Equal(t, 2, all.PendingCount)
	assert.Equal(t, 1, all.CompletedCount)

	pending, err := f.useCase.List(ctx, session, model.ListTodosQuery{Filter: model.FilterPending})
	require.NoError(t, err)
	assert.Len(t, pending.Todos, 2)
	assert.Equal(t, 2, pending.PendingCount, "counts ignore the filter")

	inProgress := entity.StatusInProgress
	byStatus, err := f.useCase.List(ctx, session, model.ListTodosQuery{Filter: model.FilterAll, Status: &inProgress})
	require.NoError(t, err)
	require.Len(t, byStatus.Todos, 1)
	assert.Equal(t, "third", byStatus.Todos[0].Title)

	anonymous, err := f.useCase.List(ctx, nil, model.ListTodosQuery{})
	require.NoError(t, err)
	assert.Empty(t, anonymous.Todos)
	assert.Zero(t, anonymous.PendingCount)
}

func TestUpdateReplacesSubtasks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.useCase.Create(ctx, session, model.CreateTodoDTO{
		Title:    "Trip",
		Subtasks: []model.SubtaskDTO{{Title: "Flights", Weight: 2}},
	})
	require.NoError(t, err)

	updated, err := f.useCase.Update(ctx, session, created.ID, model.UpdateTodoDTO{
		Title: "Summer trip",
		Notes: text("pack light"),
		Subtasks: []model.SubtaskDTO{
			{Title: "Hotel", Weight: 1, Completed: true},
			{Title: "Visa", Weight: 1, Completed: true},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Summer trip", updated.Title)
	assert.Equal(t, entity.StatusCompleted, updated.Status)
	assert.True(t, updated.Completed)
	assert.Equal(t, 100, updated.Progress)

	stored, err := f.gateway.FindByID(ctx, "user-1", created.ID)
	require.NoError(t, err)
	require.Len(t, stored.Subtasks, 2)
	assert.Equal(t, "Hotel", stored.Subtasks[0].Title)
	assert.True(t, stored.Completed)
	assert.Equal(t, entity.TodoUpdated, f.publisher.events[len(f.publisher.events)-1].Type)
}

func TestUpdateExplicitStatusWithoutSubtasks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.useCase.Create(ctx, session, model.CreateTodoDTO{Title: "Read"})
	require.NoError(t, err)

	status := int(entity.StatusCompleted)
	updated, err := f.useCase.Update(ctx, session, created.ID, model.UpdateTodoDTO{Title: "Read book", StatusID: &status})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Empty(t, updated.Subtasks)

	_, err = f.useCase.Update(ctx, &entity.Session{UserID: "user-2"}, created.ID, model.UpdateTodoDTO{Title: "steal"})
	assert.ErrorIs(t, err, model.ErrTodoNotFound)
}

func TestUpdateExplicitStatusIsNotReconciled(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.useCase.Create(ctx, session, model.CreateTodoDTO{Title: "Move"})
	require.NoError(t, err)

	status := int(entity.StatusPending)
	updated, err := f.useCase.Update(ctx, session, created.ID, model.UpdateTodoDTO{
		Title:    "Move house",
		StatusID: &status,
		Subtasks: []model.SubtaskDTO{
			{Title: "Boxes", Weight: 1, Completed: true},
			{Title: "Truck", Weight: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, updated.Status)
	assert.Equal(t, 50, updated.Progress)

	stored, err := f.gateway.FindByID(ctx, "user-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, stored.Status)

	edited, err := f.useCase.Update(ctx, session, created.ID, model.UpdateTodoDTO{
		Title:    "Move house",
		Subtasks: []model.SubtaskDTO{{Title: "Boxes", Weight: 1, Completed: true}, {Title: "Truck", Weight: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInProgress, edited.Status, "without a status the subtasks drive it")
}

func TestToggleComplete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.useCase.Create(ctx, session, model.CreateTodoDTO{
		Title: "Report",
		Subtasks: []model.SubtaskDTO{
			{Title: "Draft", Weight: 1, Completed: true},
			{Title: "Review", Weight: 3},
		},
	})
	require.NoError(t, err)

	toggled, err := f.useCase.ToggleComplete(ctx, session, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, toggled.Status)
	assert.Equal(t, 100, toggled.Progress)

	stored, err := f.gateway.FindByID(ctx, "user-1", created.ID)
	require.NoError(t, err)
	assert.True(t, stored.Completed)
	for _, subtask := range stored.Subtasks {
		assert.True(t, subtask.Completed, "completing cascades to %s", subtask.Title)
	}

	back, err := f.useCase.ToggleComplete(ctx, session, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, back.Status)
	assert.False(t, back.Completed)
	assert.Equal(t, 100, back.Progress, "un-completing keeps subtasks checked")
}

func TestToggleSubtask(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.useCase.Create(ctx, session, model.CreateTodoDTO{
		Title: "Garden",
		Subtasks: []model.SubtaskDTO{
			{Title: "Dig", Weight: 1},
			{Title: "Plant", Weight: 1},
		},
	})
	require.NoError(t, err)
	dig, plant := created.Subtasks[0].ID, created.Subtasks[1].ID

	step, err := f.useCase.ToggleSubtask(ctx, session, created.ID, dig)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInProgress, step.Status)
	assert.Equal(t, 50, step.Progress)

	step, err = f.useCase.ToggleSubtask(ctx, session, created.ID, plant)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, step.Status)

	step, err = f.useCase.ToggleSubtask(ctx, session, created.ID, plant)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, step.Status, "unchecking never demotes")
	assert.Equal(t, 50, step.Progress)

	stored, err := f.gateway.FindByID(ctx, "user-1", created.ID)
	require.NoError(t, err)
	assert.True(t, stored.Subtasks[0].Completed)
	assert.False(t, stored.Subtasks[1].Completed)
	assert.Equal(t, entity.StatusCompleted, stored.Status)

	_, err = f.useCase.ToggleSubtask(ctx, session, created.ID, "missing")
	assert.ErrorIs(t, err, model.ErrSubtaskNotFound)
}

func TestChangeStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.useCase.Create(ctx, session, model.CreateTodoDTO{
		Title:    "Paint",
		Subtasks: []model.SubtaskDTO{{Title: "Buy paint", Weight: 2}},
	})
	require.NoError(t, err)

	changed, err := f.useCase.ChangeStatus(ctx, session, created.ID, int(entity.StatusCompleted))
	require.NoError(t, err)
	assert.True(t, changed.Completed)
	assert.False(t, changed.Subtasks[0].Completed, "direct selection does not cascade")
	assert.Equal(t, 0, changed.Progress)

	_, err = f.useCase.ChangeStatus(ctx, session, created.ID, 0)
	assert.ErrorIs(t, err, model.ErrInvalidStatus)
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.useCase.Create(ctx, session, model.CreateTodoDTO{Title: "Temp"})
	require.NoError(t, err)

	require.NoError(t, f.useCase.Delete(ctx, session, created.ID))
	assert.ErrorIs(t, f.useCase.Delete(ctx, session, created.ID), model.ErrTodoNotFound)

	_, err = f.useCase.Get(ctx, session, created.ID)
	assert.ErrorIs(t, err, model.ErrTodoNotFound)
	assert.Equal(t, entity.TodoDeleted, f.publisher.events[len(f.publisher.events)-1].Type)
}

func TestSideEffectFailuresDoNotFailMutation(t *testing.T) {
	f := newFixture(t)
	f.cache.err = errors.New("redis down")
	f.publisher.err = errors.New("sqs down")

	created, err := f.useCase.Create(context.Background(), session, model.CreateTodoDTO{Title: "Resilient"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}

func TestFailedProgressWriteLeavesTodoUntouched(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(uc *todoUseCase, todo *model.TodoResponse) error
	}{
		{
			name: "toggle complete",
			mutate: func(uc *todoUseCase, todo *model.TodoResponse) error {
				_, err := uc.ToggleComplete(context.Background(), session, todo.ID)
				return err
			},
		},
		{
			name: "toggle subtask",
			mutate: func(uc *todoUseCase, todo *model.TodoResponse) error {
				_, err := uc.ToggleSubtask(context.Background(), session, todo.ID, todo.Subtasks[1].ID)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()

			created, err := f.useCase.Create(ctx, session, model.CreateTodoDTO{
				Title: "Taxes",
				Subtasks: []model.SubtaskDTO{
					{Title: "Forms", Weight: 1, Completed: true},
					{Title: "Submit", Weight: 1},
				},
			})
			require.NoError(t, err)
			require.Equal(t, entity.StatusInProgress, created.Status)
			f.publisher.events = nil
			f.cache.evicted = nil

			f.useCase.gateway = brokenProgressGateway{SQLXTodoGateway: f.gateway}
			require.Error(t, tt.mutate(f.useCase, created))

			stored, err := f.gateway.FindByID(ctx, "user-1", created.ID)
			require.NoError(t, err)
			assert.Equal(t, entity.StatusInProgress, stored.Status)
			assert.False(t, stored.Completed)
			assert.True(t, stored.Subtasks[0].Completed)
			assert.False(t, stored.Subtasks[1].Completed)
			assert.True(t, stored.UpdatedAt.Equal(created.UpdatedAt))
			assert.Empty(t, f.publisher.events)
			assert.Empty(t, f.cache.evicted)
		})
	}
}
