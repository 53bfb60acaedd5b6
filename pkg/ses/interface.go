package ses

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ses"
)

// API is the subset of the SES client used here.
type API interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// Sender sends plain transactional email.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}
