package repository

import (
	"encoding/json"

	"dealer-report-srv/internal/model"
)

type CreateOptions struct {
	Tenant    model.TenantScope
	UserID    string
	TableName string
	Action    string
	NewValues json.RawMessage
}

type ListOptions struct {
	Tenant    model.TenantScope
	TableName string
	Action    string
	Limit     int
	Offset    int
}

type CountOptions struct {
	Tenant    model.TenantScope
	TableName string
	Action    string
}
