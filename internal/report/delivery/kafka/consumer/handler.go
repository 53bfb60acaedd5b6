package consumer

import (
	"github.com/IBM/sarama"
)

type scheduledReportHandler struct {
	consumer *Consumer
}

func (h *scheduledReportHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *scheduledReportHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim marks every message once handled. A failed run is logged and
// left for the next schedule tick rather than redelivered.
func (h *scheduledReportHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		h.consumer.handleScheduledMessage(session.Context(), msg)
		session.MarkMessage(msg, "")
	}
	return nil
}
