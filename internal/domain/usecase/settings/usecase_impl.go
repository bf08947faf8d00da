package settings

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/auth"
	"todo-api/internal/domain/gateway/cache"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/model"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

type settingsUseCase struct {
	authGateway       auth.AuthGateway
	todoGateway       db.TodoGateway
	statsCache        cache.StatsCache
	publisher         queue.EventPublisher
	passwordMinLength int
}

func NewSettingsUseCase(
	authGateway auth.AuthGateway,
	todoGateway db.TodoGateway,
	statsCache cache.StatsCache,
	publisher queue.EventPublisher,
	passwordMinLength int,
) UseCase {
	return &settingsUseCase{
		authGateway:       authGateway,
		todoGateway:       todoGateway,
		statsCache:        statsCache,
		publisher:         publisher,
		passwordMinLength: passwordMinLength,
	}
}

func (uc *settingsUseCase) ChangePassword(ctx context.Context, session *entity.Session, dto model.ChangePasswordDTO) (*model.MessageResponse, error) {
	if session == nil {
		return nil, model.ErrNotAuthenticated
	}
	if dto.NewPassword != dto.ConfirmPassword {
		return nil, model.ErrPasswordMismatch
	}
	if len(dto.NewPassword) < uc.passwordMinLength {
		return nil, model.ErrPasswordTooShort
	}

	if err := uc.authGateway.UpdatePassword(ctx, session.AccessToken, dto.NewPassword); err != nil {
		return nil, err
	}
	return &model.MessageResponse{Message: msg.GetMessage("settings.password.updated")}, nil
}

func (uc *settingsUseCase) ClearAllData(ctx context.Context, session *entity.Session) (*model.MessageResponse, error) {
	if session == nil {
		return nil, model.ErrNotAuthenticated
	}

	deleted, err := uc.todoGateway.DeleteAllByUser(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	log.Info("Cleared todos", zap.String("user_id", session.UserID), zap.Int64("deleted", deleted))

	if err := uc.statsCache.Evict(ctx, session.UserID); err != nil {
		log.Warn(msg.GetMessage("todo.stats.evict-failed", session.UserID, err))
	}

	event := entity.TodoEvent{
		ID:         uuid.NewString(),
		Type:       entity.TodosCleared,
		UserID:     session.UserID,
		OccurredAt: time.Now().UTC(),
	}
	if err := uc.publisher.Publish(ctx, event); err != nil {
		log.Warn(msg.GetMessage("todo.event.publish-failed", event.Type, "-", err))
	}

	return &model.MessageResponse{Message: msg.GetMessage("settings.data.cleared")}, nil
}
