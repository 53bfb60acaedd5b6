package sns

import (
	"context"
	"errors"
	"regexp"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

var (
	ErrPhoneRequired = errors.New("sns: phone number is required")
	ErrInvalidPhone  = errors.New("sns: phone number must be E.164")
)

var e164 = regexp.MustCompile(`^\+[1-9][0-9]{6,14}$`)

type snsImpl struct {
	api API
}

// New loads the default AWS credential chain for region and returns a Publisher.
func New(ctx context.Context, region string) (Publisher, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &snsImpl{api: sns.NewFromConfig(cfg)}, nil
}

// NewWithAPI wraps an existing client.
func NewWithAPI(api API) Publisher {
	return &snsImpl{api: api}
}

func (s *snsImpl) SendSMS(ctx context.Context, phone, message string) (string, error) {
	if phone == "" {
		return "", ErrPhoneRequired
	}
	if !e164.MatchString(phone) {
		return "", ErrInvalidPhone
	}

	out, err := s.api.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(phone),
		Message:     aws.String(message),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"AWS.SNS.SMS.SMSType": {DataType: aws.String("String"), StringValue: aws.String("Transactional")},
		},
	})
	if err != nil {
		return "", err
	}
	return aws.ToString(out.MessageId), nil
}
