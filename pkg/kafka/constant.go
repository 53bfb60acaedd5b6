package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const (
	// DefaultClientID identifies this service to the brokers.
	DefaultClientID = "dealer-report-srv"

	ProducerTimeout  = 10 * time.Second
	ProducerRetryMax = 5

	// OffsetOldest and OffsetNewest are the accepted ConsumerConfig.InitialOffset values.
	OffsetOldest = "oldest"
	OffsetNewest = "newest"

	HeaderContentType = "content-type"
	ContentTypeJSON   = "application/json"
)

// KafkaVersion is the protocol version negotiated with the brokers.
// Idempotent producing needs at least 0.11.
var KafkaVersion = sarama.V2_6_0_0
