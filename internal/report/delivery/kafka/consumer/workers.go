package consumer

import (
	"context"
	"encoding/json"

	"dealer-report-srv/internal/model"
	kafkaDelivery "dealer-report-srv/internal/report/delivery/kafka"
	"dealer-report-srv/pkg/log"
	"dealer-report-srv/pkg/metrics"
	"dealer-report-srv/pkg/scope"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

const (
	outcomeOK      = "ok"
	outcomeSkipped = "skipped"
	outcomeFailed  = "failed"
	outcomePartial = "partial"
)

// handleScheduledMessage normalizes the trigger and delegates to the usecase (no business logic here).
// It returns the outcome label recorded in metrics.
func (c *Consumer) handleScheduledMessage(ctx context.Context, msg *sarama.ConsumerMessage) string {
	ctx = log.SetRequestIDToContext(ctx, uuid.NewString())
	outcome := c.processScheduledMessage(ctx, msg)
	metrics.ConsumerMessages.WithLabelValues(msg.Topic, outcome).Inc()
	return outcome
}

func (c *Consumer) processScheduledMessage(ctx context.Context, msg *sarama.ConsumerMessage) string {
	c.l.Infof(ctx, "report.delivery.kafka.consumer.handleScheduledMessage: Processing message from partition %d, offset %d",
		msg.Partition, msg.Offset)

	// 1. Unmarshal message
	var message kafkaDelivery.ScheduledReportMessage
	if err := json.Unmarshal(msg.Value, &message); err != nil {
		c.l.Warnf(ctx, "report.delivery.kafka.consumer.handleScheduledMessage: Invalid message format (skipping): %v", err)
		return outcomeSkipped
	}

	// 2. Validate message (format only; business rules stay in usecase)
	if message.UserID == "" || message.ReportKind == "" {
		c.l.Warnf(ctx, "report.delivery.kafka.consumer.handleScheduledMessage: Invalid message: missing required fields (skipping)")
		return outcomeSkipped
	}

	// 3. Map to usecase input and act as the schedule's owner
	input := message.ToScheduleInput()
	sc := model.Scope{UserID: message.UserID, Role: "scheduler"}
	ctx = scope.SetScopeToContext(ctx, sc)

	// 4. Call UseCase
	output, err := c.uc.Generate(ctx, sc, input.GenerateInput)
	if err != nil {
		c.l.Errorf(ctx, "report.delivery.kafka.consumer.handleScheduledMessage: Schedule %s failed: %v", message.ScheduleID, err)
		return outcomeFailed
	}

	if output.Partial() {
		c.l.Warnf(ctx, "report.delivery.kafka.consumer.handleScheduledMessage: Schedule %s finished with %d stage errors: %+v",
			message.ScheduleID, len(output.Errors), output.Errors)
		return outcomePartial
	}

	c.l.Infof(ctx, "report.delivery.kafka.consumer.handleScheduledMessage: Schedule %s produced %d rows",
		message.ScheduleID, output.RowCount)
	return outcomeOK
}
