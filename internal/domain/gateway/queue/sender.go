package queue

import "context"

type Sender interface {
	SendMessage(ctx context.Context, queueName string, body any, attributes map[string]string) error
	Ping(ctx context.Context, queueName string) error
}
