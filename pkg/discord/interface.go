package discord

import (
	"context"

	"dealer-report-srv/pkg/log"
	pkgHTTP "dealer-report-srv/pkg/http"
)

// IDiscord sends operational alerts to a Discord webhook.
// Implementations are safe for concurrent use.
type IDiscord interface {
	SendEmbed(ctx context.Context, options MessageOptions) error
	SendError(ctx context.Context, title, description string, err error) error
	ReportBug(ctx context.Context, message string) error
}

// DiscordWebhook contains webhook information for Discord API.
type DiscordWebhook struct {
	ID    string
	Token string
}

// New creates a new Discord service. Returns the interface.
func New(l log.Logger, webhook *DiscordWebhook) (IDiscord, error) {
	if webhook == nil || webhook.ID == "" || webhook.Token == "" {
		return nil, errWebhookRequired
	}
	return &discordImpl{
		l:       l,
		webhook: webhook,
		client: pkgHTTP.NewClient(pkgHTTP.ClientConfig{
			Timeout:   defaultTimeout,
			Retries:   defaultRetries,
			RetryWait: defaultRetryWait,
		}),
		username: defaultUsername,
	}, nil
}
