package auth

import (
	"context"
	"strings"

	"todo-api/internal/domain/entity"
	authgateway "todo-api/internal/domain/gateway/auth"
	"todo-api/internal/domain/gateway/cache"
	"todo-api/internal/domain/model"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

type authUseCase struct {
	gateway           authgateway.AuthGateway
	limiter           cache.AttemptLimiter
	passwordMinLength int
}

func NewAuthUseCase(gateway authgateway.AuthGateway, limiter cache.AttemptLimiter, passwordMinLength int) UseCase {
	return &authUseCase{
		gateway:           gateway,
		limiter:           limiter,
		passwordMinLength: passwordMinLength,
	}
}

func (uc *authUseCase) SignIn(ctx context.Context, dto model.SignInDTO) (*entity.AuthSession, error) {
	email := normalizeEmail(dto.Email)

	allowed, err := uc.limiter.Allow(ctx, email)
	if err != nil {
		log.Warn(msg.GetMessage("limiter.error.unavailable", email, err))
		allowed = true
	}
	if !allowed {
		return nil, model.ErrTooManyAttempts
	}

	return uc.gateway.SignIn(ctx, email, dto.Password)
}

func (uc *authUseCase) SignUp(ctx context.Context, dto model.SignUpDTO) (*model.MessageResponse, error) {
	if len(dto.Password) < uc.passwordMinLength {
		return nil, model.ErrPasswordTooShort
	}

	if _, err := uc.gateway.SignUp(ctx, normalizeEmail(dto.Email), dto.Password); err != nil {
		return nil, err
	}
	return &model.MessageResponse{Message: msg.GetMessage("auth.sign-up.check-email")}, nil
}

func (uc *authUseCase) SignOut(ctx context.Context, session *entity.Session) error {
	if session == nil {
		return model.ErrNotAuthenticated
	}
	return uc.gateway.SignOut(ctx, session.AccessToken)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
