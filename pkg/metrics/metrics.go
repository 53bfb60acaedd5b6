package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReportsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reports_generated_total",
			Help: "Total number of reports generated",
		},
		[]string{"kind", "format"},
	)

	ReportsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reports_failed_total",
			Help: "Total number of report runs that failed, by stage",
		},
		[]string{"kind", "stage"},
	)

	ReportStageErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "report_stage_errors_total",
			Help: "Non-fatal delivery and audit errors attached to report results",
		},
		[]string{"stage"},
	)

	ReportDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "report_duration_seconds",
			Help:    "Duration of a report run in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	ReportRows = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "report_rows",
			Help:    "Number of rows projected per report",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
		[]string{"kind"},
	)

	ImportRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "import_rows_total",
			Help: "Rows processed by bulk import, by outcome",
		},
		[]string{"type", "outcome"},
	)

	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_sent_total",
			Help: "Notifications delivered, by channel",
		},
		[]string{"channel"},
	)

	ConsumerMessages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "consumer_messages_total",
			Help: "Kafka messages handled by the consumer, by topic and outcome",
		},
		[]string{"topic", "outcome"},
	)
)

// ObserveReport records a finished run.
func ObserveReport(kind, format string, rows int, started time.Time) {
	ReportsGenerated.WithLabelValues(kind, format).Inc()
	ReportRows.WithLabelValues(kind).Observe(float64(rows))
	ReportDuration.WithLabelValues(kind).Observe(time.Since(started).Seconds())
}

// ObserveReportFailure records a run that stopped at stage.
func ObserveReportFailure(kind, stage string, started time.Time) {
	ReportsFailed.WithLabelValues(kind, stage).Inc()
	ReportDuration.WithLabelValues(kind).Observe(time.Since(started).Seconds())
}
