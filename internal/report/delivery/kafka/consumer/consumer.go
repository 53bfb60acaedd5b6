package consumer

import (
	"context"

	kafkaDelivery "dealer-report-srv/internal/report/delivery/kafka"
)

const (
	kafkaTopicScheduled = kafkaDelivery.TopicReportScheduled
	kafkaGroupScheduled = kafkaDelivery.ConsumerGroupReportScheduled
)

// ConsumeScheduledReports starts consuming scheduled report triggers
func (c *Consumer) ConsumeScheduledReports(ctx context.Context) error {
	// Create consumer group
	group, err := c.createConsumerGroup(c.groupID())
	if err != nil {
		return err
	}
	c.scheduledGroup = group

	handler := &scheduledReportHandler{
		consumer: c,
	}
	topic := c.scheduledTopic()

	// Start consuming in goroutine with context
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.ConsumeWithContext(ctx, []string{topic}, handler); err != nil {
					c.l.Errorf(ctx, "report.delivery.kafka.consumer.ConsumeScheduledReports: Consumer error: %v", err)
				}
			}
		}
	}()

	// Start error handler
	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "report.delivery.kafka.consumer.ConsumeScheduledReports: Consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", topic)

	return nil
}
