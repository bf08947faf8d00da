package aws

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"todo-api/pkg/resource"
	pkgsqs "todo-api/pkg/sqs"
)

// NewSqsClient creates an SQS client, pointed at app.cloud.aws-endpoint when set (LocalStack).
func NewSqsClient(cfg aws.Config) *sqs.Client {
	return sqs.NewFromConfig(cfg, func(options *sqs.Options) {
		if endpoint := resource.GetString("app.cloud.aws-endpoint"); endpoint != "" {
			options.BaseEndpoint = aws.String(endpoint)
		}
	})
}

// NewSQSSender creates the message sender used by the queue gateways.
func NewSQSSender(cfg aws.Config) *pkgsqs.Sender {
	return pkgsqs.NewSender(NewSqsClient(cfg))
}
