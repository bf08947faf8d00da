package db

import (
	"context"

	"todo-api/internal/domain/model"
)

type HealthDBGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}

func upStatus(details map[string]string) model.ComponentHealthStatus {
	if details == nil {
		details = map[string]string{}
	}
	details["message"] = string(model.StatusUp)
	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}

func downStatus(err error) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status:  model.StatusDown,
		Details: map[string]string{"message": err.Error()},
	}
}
