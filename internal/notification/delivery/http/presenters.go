package http

import (
	"fmt"

	"dealer-report-srv/internal/notification"
)

type channelData struct {
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	UserID string `json:"user_id"`
}

type reference struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type sendReq struct {
	Type        string      `json:"type" binding:"required"`
	Title       string      `json:"title"`
	Message     string      `json:"message"`
	Recipients  []string    `json:"recipients"`
	ChannelData channelData `json:"channel_data"`
	Reference   *reference  `json:"reference"`
}

func (r sendReq) toInput() notification.SendInput {
	in := notification.SendInput{
		Channel:    notification.Channel(r.Type),
		Title:      r.Title,
		Message:    r.Message,
		Recipients: r.Recipients,
		ChannelData: notification.ChannelData{
			Phone:  r.ChannelData.Phone,
			Email:  r.ChannelData.Email,
			UserID: r.ChannelData.UserID,
		},
	}
	if r.Reference != nil {
		in.Reference = &notification.Reference{Type: r.Reference.Type, ID: r.Reference.ID}
	}
	return in
}

type sendResp struct {
	Success           bool     `json:"success"`
	Message           string   `json:"message"`
	NotificationsSent int      `json:"notifications_sent"`
	Errors            []string `json:"errors,omitempty"`
}

func (h *handler) newSendResp(o notification.SendOutput) sendResp {
	return sendResp{
		Success:           o.Success(),
		Message:           fmt.Sprintf("Sent %d notifications", o.Sent),
		NotificationsSent: o.Sent,
		Errors:            o.Errors,
	}
}

func newSendFailure(msg string) sendResp {
	return sendResp{
		Message: "Failed to send notifications",
		Errors:  []string{msg},
	}
}
