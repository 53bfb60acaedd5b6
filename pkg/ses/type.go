package ses

import "errors"

// Config configures the SES sender.
type Config struct {
	Region string
	From   string
}

// Message is a single-recipient email.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

type sesImpl struct {
	api  API
	from string
}

var (
	ErrFromRequired      = errors.New("ses: from address is required")
	ErrRecipientRequired = errors.New("ses: recipient is required")
	ErrInvalidRecipient  = errors.New("ses: invalid recipient address")
)
