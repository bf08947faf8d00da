package auth

import (
	"context"

	"todo-api/internal/domain/entity"
)

// AuthGateway delegates account operations to the hosted auth provider.
type AuthGateway interface {
	SignIn(ctx context.Context, email string, password string) (*entity.AuthSession, error)
	SignUp(ctx context.Context, email string, password string) (*entity.AuthUser, error)
	SignOut(ctx context.Context, accessToken string) error
	UpdatePassword(ctx context.Context, accessToken string, password string) error
	UpdateEmail(ctx context.Context, accessToken string, email string) error
}
