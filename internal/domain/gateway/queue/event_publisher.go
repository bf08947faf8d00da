package queue

import (
	"context"

	"todo-api/internal/domain/entity"
)

type EventPublisher interface {
	Publish(ctx context.Context, event entity.TodoEvent) error
}

// SQSEventPublisher sends todo events as JSON with the event type as a message attribute.
type SQSEventPublisher struct {
	sender    Sender
	queueName string
}

var (
	_ EventPublisher = (*SQSEventPublisher)(nil)
	_ EventPublisher = NoopEventPublisher{}
)

func NewSQSEventPublisher(sender Sender, queueName string) *SQSEventPublisher {
	return &SQSEventPublisher{sender: sender, queueName: queueName}
}

func (publisher *SQSEventPublisher) Publish(ctx context.Context, event entity.TodoEvent) error {
	return publisher.sender.SendMessage(ctx, publisher.queueName, event, map[string]string{
		"type": string(event.Type),
	})
}

// NoopEventPublisher drops every event.
type NoopEventPublisher struct{}

func (NoopEventPublisher) Publish(context.Context, entity.TodoEvent) error {
	return nil
}
