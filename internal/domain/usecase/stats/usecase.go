package stats

import (
	"context"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type UseCase interface {
	// Summary returns period counts, the longest running open todos and the fastest completions.
	Summary(ctx context.Context, session *entity.Session) (*model.StatsResponse, error)
}
