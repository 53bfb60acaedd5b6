package sns

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// API is the subset of the SNS client used here.
type API interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// Publisher sends SMS messages directly to phone numbers.
type Publisher interface {
	SendSMS(ctx context.Context, phone, message string) (string, error)
}
