package repository

import (
	"time"

	"dealer-report-srv/internal/model"
)

type CreateOptions struct {
	Tenant        model.TenantScope
	UserID        string
	Title         string
	Message       string
	Type          string
	Channel       string
	ReferenceType string
	ReferenceID   string
	SentAt        time.Time
}
