package producer

import (
	"dealer-report-srv/internal/report"
	kafkaDelivery "dealer-report-srv/internal/report/delivery/kafka"
	pkgKafka "dealer-report-srv/pkg/kafka"
	"dealer-report-srv/pkg/log"
)

// Producer interface for report domain
type Producer interface {
	report.Producer
}

// Topics overrides the default topic names.
type Topics struct {
	Generated string
	Scheduled string
}

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
	topics   Topics
}

// New creates a new report producer
func New(l log.Logger, producer pkgKafka.IProducer, topics Topics) Producer {
	if topics.Generated == "" {
		topics.Generated = kafkaDelivery.TopicReportGenerated
	}
	if topics.Scheduled == "" {
		topics.Scheduled = kafkaDelivery.TopicReportScheduled
	}
	return &implProducer{
		l:        l,
		producer: producer,
		topics:   topics,
	}
}
