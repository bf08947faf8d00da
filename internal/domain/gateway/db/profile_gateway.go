package db

import (
	"context"

	"todo-api/internal/domain/entity"
)

type ProfileGateway interface {
	// FindByID returns nil without error when the user has no profile row yet.
	FindByID(ctx context.Context, id string) (*entity.Profile, error)
	Save(ctx context.Context, profile entity.Profile) error
}
