package settings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/model"
	"todo-api/internal/infra/database/sqldb"
)

type fakeAuthGateway struct {
	updatedPassword string
}

func (f *fakeAuthGateway) SignIn(context.Context, string, string) (*entity.AuthSession, error) {
	return nil, nil
}

func (f *fakeAuthGateway) SignUp(context.Context, string, string) (*entity.AuthUser, error) {
	return nil, nil
}

func (f *fakeAuthGateway) SignOut(context.Context, string) error {
	return nil
}

func (f *fakeAuthGateway) UpdatePassword(_ context.Context, _ string, password string) error {
	f.updatedPassword = password
	return nil
}

func (f *fakeAuthGateway) UpdateEmail(context.Context, string, string) error {
	return nil
}

type fakeStatsCache struct {
	evicted []string
}

func (f *fakeStatsCache) Get(context.Context, string) (*model.StatsResponse, bool, error) {
	return nil, false, nil
}

func (f *fakeStatsCache) Set(context.Context, string, model.StatsResponse) error {
	return nil
}

func (f *fakeStatsCache) Evict(_ context.Context, userID string) error {
	f.evicted = append(f.evicted, userID)
	return nil
}

type fakePublisher struct {
	events []entity.TodoEvent
}

func (f *fakePublisher) Publish(_ context.Context, event entity.TodoEvent) error {
	f.events = append(f.events, event)
	return nil
}

var session = &entity.Session{UserID: "user-1", AccessToken: "jwt"}

func TestChangePassword(t *testing.T) {
	tests := []struct {
		name    string
		dto     model.ChangePasswordDTO
		wantErr error
	}{
		{name: "mismatch", dto: model.ChangePasswordDTO{NewPassword: "secret12", ConfirmPassword: "secret13"}, wantErr: model.ErrPasswordMismatch},
		{name: "too short", dto: model.ChangePasswordDTO{NewPassword: "abc", ConfirmPassword: "abc"}, wantErr: model.ErrPasswordTooShort},
		{name: "accepted", dto: model.ChangePasswordDTO{NewPassword: "secret12", ConfirmPassword: "secret12"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := &fakeAuthGateway{}
			uc := NewSettingsUseCase(gateway, nil, &fakeStatsCache{}, &fakePublisher{}, 6)

			response, err := uc.ChangePassword(context.Background(), session, tt.dto)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, gateway.updatedPassword, "provider is not called")
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, response.Message)
			assert.Equal(t, "secret12", gateway.updatedPassword)
		})
	}
}

func TestChangePasswordRequiresSession(t *testing.T) {
	uc := NewSettingsUseCase(&fakeAuthGateway{}, nil, &fakeStatsCache{}, &fakePublisher{}, 6)

	_, err := uc.ChangePassword(context.Background(), nil, model.ChangePasswordDTO{NewPassword: "secret12", ConfirmPassword: "secret12"})
	assert.ErrorIs(t, err, model.ErrNotAuthenticated)
}

func TestClearAllData(t *testing.T) {
	ctx := context.Background()
	conn, err := sqldb.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, sqldb.Migrate(ctx, conn))

	todos := db.NewSQLXTodoGateway(conn)
	now := time.Now().UTC()
	for _, todo := range []entity.Todo{
		{ID: "t-1", UserID: "user-1", Title: "mine", Status: entity.StatusPending, CreatedAt: now, UpdatedAt: now,
			Subtasks: []entity.Subtask{{ID: "s-1", TodoID: "t-1", Title: "child", Weight: 1, CreatedAt: now, UpdatedAt: now}}},
		{ID: "t-2", UserID: "user-2", Title: "theirs", Status: entity.StatusPending, CreatedAt: now, UpdatedAt: now},
	} {
		require.NoError(t, todos.Create(ctx, todo))
	}

	statsCache := &fakeStatsCache{}
	publisher := &fakePublisher{}
	uc := NewSettingsUseCase(&fakeAuthGateway{}, todos, statsCache, publisher, 6)

	response, err := uc.ClearAllData(ctx, session)
	require.NoError(t, err)
	assert.NotEmpty(t, response.Message)

	mine, err := todos.FindAllByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, mine)
	theirs, err := todos.FindAllByUser(ctx, "user-2")
	require.NoError(t, err)
	assert.Len(t, theirs, 1)

	var subtasks int
	require.NoError(t, conn.GetContext(ctx, &subtasks, "SELECT COUNT(*) FROM subtasks"))
	assert.Zero(t, subtasks)

	assert.Equal(t, []string{"user-1"}, statsCache.evicted)
	require.Len(t, publisher.events, 1)
	assert.Equal(t, entity.TodosCleared, publisher.events[0].Type)
}
