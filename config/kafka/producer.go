package kafka

import (
	"fmt"
	"sync"

	"dealer-report-srv/config"
	"dealer-report-srv/pkg/kafka"
)

var (
	producer   kafka.IProducer
	producerMu sync.Mutex
)

// ConnectProducer returns the process-wide report event producer, creating it on first use.
// A failed attempt leaves nothing cached, so the next call retries.
func ConnectProducer(cfg config.KafkaConfig) (kafka.IProducer, error) {
	producerMu.Lock()
	defer producerMu.Unlock()

	if producer != nil {
		return producer, nil
	}

	p, err := kafka.NewProducer(kafka.Config{
		Brokers:  cfg.Brokers,
		Topic:    cfg.Topic,
		ClientID: cfg.ClientID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kafka producer: %w", err)
	}

	producer = p
	return producer, nil
}

// DisconnectProducer flushes and closes the producer.
func DisconnectProducer() error {
	producerMu.Lock()
	defer producerMu.Unlock()

	if producer == nil {
		return nil
	}
	err := producer.Close()
	producer = nil
	return err
}
