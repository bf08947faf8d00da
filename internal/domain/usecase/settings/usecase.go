package settings

import (
	"context"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type UseCase interface {
	ChangePassword(ctx context.Context, session *entity.Session, dto model.ChangePasswordDTO) (*model.MessageResponse, error)
	// ClearAllData deletes every todo of the user. Subtasks go with them.
	ClearAllData(ctx context.Context, session *entity.Session) (*model.MessageResponse, error)
}
