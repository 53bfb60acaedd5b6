package discord

import (
	"errors"
	"time"

	"dealer-report-srv/pkg/log"
	pkgHTTP "dealer-report-srv/pkg/http"
)

const (
	webhookURLFormat = "https://discord.com/api/webhooks/%s/%s"
	defaultTimeout   = 10 * time.Second
	defaultRetries   = 2
	defaultRetryWait = 500 * time.Millisecond
	defaultUsername  = "dealer-report-srv"
	maxDescription   = 4000
)

var errWebhookRequired = errors.New("discord: webhook id and token are required")

// MessageType selects the embed color.
type MessageType string

const (
	MessageTypeInfo    MessageType = "info"
	MessageTypeWarning MessageType = "warning"
	MessageTypeError   MessageType = "error"
)

var colors = map[MessageType]int{
	MessageTypeInfo:    0x3498DB,
	MessageTypeWarning: 0xF1C40F,
	MessageTypeError:   0xE74C3C,
}

// EmbedField represents a field in a Discord embed.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// Embed represents a Discord embed message.
type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
}

// WebhookPayload represents the payload sent to Discord webhook.
type WebhookPayload struct {
	Username string  `json:"username,omitempty"`
	Embeds   []Embed `json:"embeds,omitempty"`
}

// MessageOptions contains options for creating a message.
type MessageOptions struct {
	Type        MessageType
	Title       string
	Description string
	Fields      []EmbedField
}

type discordImpl struct {
	l        log.Logger
	webhook  *DiscordWebhook
	client   pkgHTTP.IClient
	username string
}
