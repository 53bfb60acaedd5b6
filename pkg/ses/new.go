package ses

import (
	"context"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
)

// New loads the default AWS credential chain for cfg.Region and returns a Sender.
func New(ctx context.Context, cfg Config) (Sender, error) {
	if cfg.From == "" {
		return nil, ErrFromRequired
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, err
	}
	return &sesImpl{api: ses.NewFromConfig(awsCfg), from: cfg.From}, nil
}

// NewWithAPI wraps an existing client.
func NewWithAPI(api API, from string) Sender {
	return &sesImpl{api: api, from: from}
}
