package notification

// Channel is how a notification reaches its recipients.
type Channel string

const (
	ChannelInApp Channel = "in_app"
	ChannelSMS   Channel = "sms"
	ChannelEmail Channel = "email"
)

func (c Channel) Valid() bool {
	switch c {
	case ChannelInApp, ChannelSMS, ChannelEmail:
		return true
	}
	return false
}

// TypeInfo is the severity stored on every row written here.
const TypeInfo = "info"

type ChannelData struct {
	Phone  string
	Email  string
	UserID string
}

type Reference struct {
	Type string
	ID   string
}

// SendInput addresses one message. Recipients are user ids for in_app,
// phone numbers for sms and addresses for email.
type SendInput struct {
	Channel     Channel
	Title       string
	Message     string
	Recipients  []string
	ChannelData ChannelData
	Reference   *Reference
}

type SendOutput struct {
	Sent   int
	Errors []string
}

func (o SendOutput) Success() bool {
	return len(o.Errors) == 0
}
