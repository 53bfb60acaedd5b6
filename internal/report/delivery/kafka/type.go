package kafka

import (
	"time"
)

// ParametersMessage mirrors the report parameters of the HTTP body.
type ParametersMessage struct {
	StartDate      string         `json:"startDate,omitempty"`
	EndDate        string         `json:"endDate,omitempty"`
	IncludeDetails bool           `json:"includeDetails,omitempty"`
	GroupBy        string         `json:"groupBy,omitempty"`
	Filters        map[string]any `json:"filters,omitempty"`
}

type DeliveryMessage struct {
	Method string   `json:"method"`
	Emails []string `json:"emails,omitempty"`
}

// ScheduledReportMessage - Kafka message for report.scheduled
type ScheduledReportMessage struct {
	ScheduleID string            `json:"schedule_id"`
	Name       string            `json:"name"`
	UserID     string            `json:"user_id"`
	ReportKind string            `json:"report_kind"`
	Format     string            `json:"format"`
	Parameters ParametersMessage `json:"parameters"`
	Delivery   *DeliveryMessage  `json:"delivery,omitempty"`
}

// ReportGeneratedMessage - Kafka message for report.generated
type ReportGeneratedMessage struct {
	DealershipID string    `json:"dealership_id"`
	UserID       string    `json:"user_id"`
	ReportKind   string    `json:"report_kind"`
	Format       string    `json:"format"`
	RowCount     int       `json:"row_count"`
	DownloadURL  string    `json:"download_url,omitempty"`
	Partial      bool      `json:"partial"`
	GeneratedAt  time.Time `json:"generated_at"`
}
