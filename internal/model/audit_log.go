package model

import (
	"encoding/json"
	"time"
)

const (
	AuditActionGenerate = "GENERATE"
	AuditTableReports   = "reports"
)

// AuditLog is one row of audit_logs.
type AuditLog struct {
	ID           int64
	DealershipID string
	UserID       string
	TableName    string
	Action       string
	NewValues    json.RawMessage
	CreatedAt    time.Time
}
