package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"dealer-report-srv/internal/report"
	kafkaDelivery "dealer-report-srv/internal/report/delivery/kafka"
)

// PublishGenerated publishes a report.generated event keyed by dealership
func (p *implProducer) PublishGenerated(ctx context.Context, evt report.GeneratedEvent) error {
	body, err := json.Marshal(kafkaDelivery.NewReportGeneratedMessage(evt))
	if err != nil {
		return fmt.Errorf("failed to marshal report generated event: %w", err)
	}

	if err := p.producer.PublishToTopic(p.topics.Generated, []byte(evt.DealershipID), body); err != nil {
		return fmt.Errorf("failed to publish report generated event: %w", err)
	}

	p.l.Debugf(ctx, "Published %s report event for dealership %s: rows=%d", evt.Kind, evt.DealershipID, evt.RowCount)
	return nil
}

// PublishScheduled publishes a report.scheduled trigger keyed by schedule
func (p *implProducer) PublishScheduled(ctx context.Context, input report.ScheduleInput) error {
	body, err := json.Marshal(kafkaDelivery.NewScheduledReportMessage(input))
	if err != nil {
		return fmt.Errorf("failed to marshal scheduled report: %w", err)
	}

	key := input.ScheduleID
	if key == "" {
		key = input.UserID
	}
	if err := p.producer.PublishToTopic(p.topics.Scheduled, []byte(key), body); err != nil {
		return fmt.Errorf("failed to publish scheduled report: %w", err)
	}

	p.l.Infof(ctx, "Published scheduled report %s (%s) for user %s", input.ScheduleID, input.Kind, input.UserID)
	return nil
}
