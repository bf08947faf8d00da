package auth

import (
	"context"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type UseCase interface {
	SignIn(ctx context.Context, dto model.SignInDTO) (*entity.AuthSession, error)
	SignUp(ctx context.Context, dto model.SignUpDTO) (*model.MessageResponse, error)
	SignOut(ctx context.Context, session *entity.Session) error
}
