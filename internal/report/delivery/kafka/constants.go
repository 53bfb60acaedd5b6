package kafka

// ============================================
// Kafka Topics
// ============================================

const (
	// Consumer Topics
	TopicReportScheduled = "report.scheduled"

	// Producer Topics
	TopicReportGenerated = "report.generated"
)

// ============================================
// Consumer Group IDs
// ============================================

const (
	ConsumerGroupReportScheduled = "dealer-report-consumer-scheduled"
)
