package kafka

import (
	"fmt"
	"time"

	"github.com/IBM/sarama"
)

func validateProducerConfig(cfg Config) error {
	if len(cfg.Brokers) == 0 {
		return fmt.Errorf("kafka: at least one broker is required")
	}
	if cfg.Topic == "" {
		return fmt.Errorf("kafka: topic is required")
	}
	return nil
}

func validateConsumerConfig(cfg ConsumerConfig) error {
	if len(cfg.Brokers) == 0 {
		return fmt.Errorf("kafka: at least one broker is required")
	}
	if cfg.GroupID == "" {
		return fmt.Errorf("kafka: group ID is required")
	}
	if _, err := initialOffset(cfg.InitialOffset); err != nil {
		return err
	}
	return nil
}

func initialOffset(s string) (int64, error) {
	switch s {
	case "", OffsetOldest:
		return sarama.OffsetOldest, nil
	case OffsetNewest:
		return sarama.OffsetNewest, nil
	default:
		return 0, fmt.Errorf("kafka: unknown initial offset %q", s)
	}
}

func baseConfig(clientID string) *sarama.Config {
	config := sarama.NewConfig()
	config.Version = KafkaVersion
	config.ClientID = DefaultClientID
	if clientID != "" {
		config.ClientID = clientID
	}
	return config
}

// producerConfig builds an idempotent sync producer config. Report events are
// keyed by dealership, so a retried send must not duplicate or reorder them.
func producerConfig(cfg Config) *sarama.Config {
	config := baseConfig(cfg.ClientID)
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = ProducerRetryMax
	config.Producer.Timeout = ProducerTimeout
	return config
}

func consumerGroupConfig(cfg ConsumerConfig) (*sarama.Config, error) {
	offset, err := initialOffset(cfg.InitialOffset)
	if err != nil {
		return nil, err
	}
	config := baseConfig(cfg.ClientID)
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = offset
	config.Consumer.Return.Errors = true
	return config, nil
}

func newProducerImpl(cfg Config) (*producerImpl, error) {
	producer, err := sarama.NewSyncProducer(cfg.Brokers, producerConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}
	return &producerImpl{producer: producer, topic: cfg.Topic}, nil
}

// Publish sends a message to the configured topic.
func (p *producerImpl) Publish(key, value []byte) error {
	return p.PublishToTopic(p.topic, key, value)
}

// PublishToTopic sends a JSON message to topic instead of the configured one.
func (p *producerImpl) PublishToTopic(topic string, key, value []byte) error {
	_, _, err := p.producer.SendMessage(newMessage(topic, key, value, time.Now()))
	if err != nil {
		return fmt.Errorf("failed to publish message to Kafka topic %s: %w", topic, err)
	}
	return nil
}

func newMessage(topic string, key, value []byte, ts time.Time) *sarama.ProducerMessage {
	return &sarama.ProducerMessage{
		Topic:     topic,
		Key:       sarama.ByteEncoder(key),
		Value:     sarama.ByteEncoder(value),
		Timestamp: ts,
		Headers: []sarama.RecordHeader{
			{Key: []byte(HeaderContentType), Value: []byte(ContentTypeJSON)},
		},
	}
}

// Close closes the producer.
func (p *producerImpl) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}

// HealthCheck verifies the producer is initialized.
func (p *producerImpl) HealthCheck() error {
	if p.producer == nil {
		return fmt.Errorf("producer is not initialized")
	}
	return nil
}

// NewConsumerGroup creates a new Kafka consumer group.
func NewConsumerGroup(cfg ConsumerConfig) (sarama.ConsumerGroup, error) {
	if err := validateConsumerConfig(cfg); err != nil {
		return nil, err
	}
	config, err := consumerGroupConfig(cfg)
	if err != nil {
		return nil, err
	}
	consumer, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.GroupID, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka consumer group: %w", err)
	}
	return consumer, nil
}
