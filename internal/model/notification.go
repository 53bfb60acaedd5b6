package model

import "time"

// Notification is one row of notifications.
type Notification struct {
	ID            string
	DealershipID  string
	UserID        string
	Title         string
	Message       string
	Type          string
	Channel       string
	ReferenceType string
	ReferenceID   string
	SentAt        time.Time
}
