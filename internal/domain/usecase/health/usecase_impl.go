package health

import (
	"context"

	"todo-api/internal/domain/gateway/cache"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/model"
)

type healthUseCase struct {
	dbGateway        db.HealthDBGateway
	profileDBGateway db.HealthDBGateway
	cacheGateway     cache.HealthGateway
	queueGateway     queue.HealthGateway
}

func NewHealthUseCase(
	dbGateway db.HealthDBGateway,
	profileDBGateway db.HealthDBGateway,
	cacheGateway cache.HealthGateway,
	queueGateway queue.HealthGateway,
) UseCase {
	return &healthUseCase{
		dbGateway:        dbGateway,
		profileDBGateway: profileDBGateway,
		cacheGateway:     cacheGateway,
		queueGateway:     queueGateway,
	}
}

// CheckHealth is DOWN when any component is DOWN. UNKNOWN components do not count.
func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	response := model.HealthResponse{
		Database:        useCase.dbGateway.Health(ctx),
		ProfileDatabase: useCase.profileDBGateway.Health(ctx),
		Cache:           useCase.cacheGateway.Health(ctx),
		Queue:           useCase.queueGateway.Health(ctx),
	}

	response.Status = model.StatusUp
	for _, component := range []model.ComponentHealthStatus{response.Database, response.ProfileDatabase, response.Cache, response.Queue} {
		if component.Status == model.StatusDown {
			response.Status = model.StatusDown
		}
	}
	return response
}
