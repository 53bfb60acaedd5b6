package discord

import (
	"context"
	"fmt"
	"time"
)

func (d *discordImpl) url() string {
	return fmt.Sprintf(webhookURLFormat, d.webhook.ID, d.webhook.Token)
}

// SendEmbed posts a single embed to the webhook.
func (d *discordImpl) SendEmbed(ctx context.Context, options MessageOptions) error {
	desc := options.Description
	if len(desc) > maxDescription {
		desc = desc[:maxDescription] + "..."
	}

	payload := WebhookPayload{
		Username: d.username,
		Embeds: []Embed{{
			Title:       options.Title,
			Description: desc,
			Color:       colors[options.Type],
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
			Fields:      options.Fields,
		}},
	}

	_, status, err := d.client.Post(ctx, d.url(), payload, nil)
	if err != nil {
		d.l.Errorf(ctx, "discord.SendEmbed: post failed: %v", err)
		return err
	}
	if status >= 300 {
		return fmt.Errorf("discord: webhook returned status %d", status)
	}
	return nil
}

// SendError posts an error alert.
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	fields := []EmbedField{}
	if err != nil {
		fields = append(fields, EmbedField{Name: "Error", Value: err.Error()})
	}
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Title:       title,
		Description: description,
		Fields:      fields,
	})
}

// ReportBug posts an unexpected failure seen while serving a request.
func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Title:       "Unhandled error",
		Description: message,
	})
}
