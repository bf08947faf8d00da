package profile

import (
	"context"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type UseCase interface {
	Get(ctx context.Context, session *entity.Session) (*model.ProfileResponse, error)
	// Update changes the email through the auth provider when it differs and stores the username.
	Update(ctx context.Context, session *entity.Session, dto model.UpdateProfileDTO) (*model.ProfileResponse, error)
	UpdateTheme(ctx context.Context, session *entity.Session, theme string) (*model.ProfileResponse, error)
}
