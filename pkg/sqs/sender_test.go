package sqs

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSQS struct {
	urlCalls int
	urlErr   error
	sent     []*sqs.SendMessageInput
}

func (f *fakeSQS) GetQueueUrl(_ context.Context, params *sqs.GetQueueUrlInput, _ ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error) {
	f.urlCalls++
	if f.urlErr != nil {
		return nil, f.urlErr
	}
	return &sqs.GetQueueUrlOutput{QueueUrl: aws.String("http://sqs.local/000000000000/" + *params.QueueName)}, nil
}

func (f *fakeSQS) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.sent = append(f.sent, params)
	return &sqs.SendMessageOutput{MessageId: aws.String("m-1")}, nil
}

func TestSendMessage(t *testing.T) {
	client := &fakeSQS{}
	sender := NewSender(client)

	err := sender.SendMessage(context.Background(), "todo-events", map[string]int{"progress": 50}, map[string]string{"type": "todo.created"})
	require.NoError(t, err)
	require.NoError(t, sender.SendMessage(context.Background(), "todo-events", "second", nil))

	assert.Equal(t, 1, client.urlCalls, "queue URL is resolved once")
	require.Len(t, client.sent, 2)
	assert.Equal(t, "http://sqs.local/000000000000/todo-events", *client.sent[0].QueueUrl)
	assert.JSONEq(t, `{"progress":50}`, *client.sent[0].MessageBody)
	assert.Equal(t, "todo.created", *client.sent[0].MessageAttributes["type"].StringValue)
	assert.Empty(t, client.sent[1].MessageAttributes)
}

func TestSendMessageQueueLookupFails(t *testing.T) {
	client := &fakeSQS{urlErr: errors.New("no such queue")}

	err := NewSender(client).SendMessage(context.Background(), "missing", "body", nil)

	assert.ErrorContains(t, err, "no such queue")
	assert.Empty(t, client.sent)
}

func TestPingBypassesCache(t *testing.T) {
	client := &fakeSQS{}
	sender := NewSender(client)

	require.NoError(t, sender.Ping(context.Background(), "todo-events"))
	require.NoError(t, sender.Ping(context.Background(), "todo-events"))

	assert.Equal(t, 2, client.urlCalls)
}
