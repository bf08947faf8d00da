package queue

import (
	"context"
	"time"

	"todo-api/internal/domain/model"
)

type HealthGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}

// QueueHealthGateway reports whether the events queue is reachable.
// A nil sender means publishing is disabled.
type QueueHealthGateway struct {
	sender    Sender
	queueName string
}

var _ HealthGateway = (*QueueHealthGateway)(nil)

func NewQueueHealthGateway(sender Sender, queueName string) *QueueHealthGateway {
	return &QueueHealthGateway{sender: sender, queueName: queueName}
}

func (gateway *QueueHealthGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	if gateway.sender == nil {
		return model.ComponentHealthStatus{
			Status:  model.StatusUnknown,
			Details: map[string]string{"message": "Event publishing disabled"},
		}
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	details := map[string]string{"queue": gateway.queueName}
	if err := gateway.sender.Ping(ctx, gateway.queueName); err != nil {
		details["error"] = err.Error()
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}
	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}
