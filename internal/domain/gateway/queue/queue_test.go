package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type recordingSender struct {
	queue      string
	body       any
	attributes map[string]string
	pingErr    error
}

func (s *recordingSender) SendMessage(_ context.Context, queueName string, body any, attributes map[string]string) error {
	s.queue, s.body, s.attributes = queueName, body, attributes
	return nil
}

func (s *recordingSender) Ping(context.Context, string) error {
	return s.pingErr
}

func TestSQSEventPublisher(t *testing.T) {
	sender := &recordingSender{}
	event := entity.TodoEvent{ID: "e-1", Type: entity.TodoCreated, UserID: "u-1", TodoID: "t-1", OccurredAt: time.Now()}

	require.NoError(t, NewSQSEventPublisher(sender, "todo-events").Publish(context.Background(), event))

	assert.Equal(t, "todo-events", sender.queue)
	assert.Equal(t, event, sender.body)
	assert.Equal(t, map[string]string{"type": "todo.created"}, sender.attributes)
}

func TestQueueHealth(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, model.StatusUnknown, NewQueueHealthGateway(nil, "todo-events").Health(ctx).Status)
	assert.Equal(t, model.StatusUp, NewQueueHealthGateway(&recordingSender{}, "todo-events").Health(ctx).Status)

	down := NewQueueHealthGateway(&recordingSender{pingErr: errors.New("connection refused")}, "todo-events").Health(ctx)
	assert.Equal(t, model.StatusDown, down.Status)
	assert.Equal(t, "connection refused", down.Details["error"])
}
