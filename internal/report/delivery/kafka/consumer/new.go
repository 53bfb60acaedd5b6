package consumer

import (
	"fmt"

	"dealer-report-srv/config"
	"dealer-report-srv/internal/report"
	pkgKafka "dealer-report-srv/pkg/kafka"
	"dealer-report-srv/pkg/log"
)

// Config holds the configuration for report consumer
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     report.UseCase
}

// Consumer manages Kafka consumer groups for report domain
type Consumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	uc          report.UseCase

	// Consumer group for scheduled report triggers
	scheduledGroup pkgKafka.IConsumer
}

// New creates a new report consumer
func New(cfg Config) (*Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}

	return &Consumer{
		l:           cfg.Logger,
		kafkaConfig: cfg.KafkaConfig,
		uc:          cfg.UseCase,
	}, nil
}

// Close closes all consumer groups
func (c *Consumer) Close() error {
	if c.scheduledGroup != nil {
		if err := c.scheduledGroup.Close(); err != nil {
			return fmt.Errorf("failed to close scheduled report group: %w", err)
		}
	}

	return nil
}

// createConsumerGroup creates a new Kafka consumer group
func (c *Consumer) createConsumerGroup(groupID string) (pkgKafka.IConsumer, error) {
	consumerConfig := pkgKafka.ConsumerConfig{
		Brokers:       c.kafkaConfig.Brokers,
		GroupID:       groupID,
		ClientID:      c.kafkaConfig.ClientID,
		InitialOffset: c.kafkaConfig.InitialOffset,
	}

	group, err := pkgKafka.NewConsumer(consumerConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group %s: %w", groupID, err)
	}

	return group, nil
}

func (c *Consumer) scheduledTopic() string {
	if c.kafkaConfig.ScheduledTopic != "" {
		return c.kafkaConfig.ScheduledTopic
	}
	return kafkaTopicScheduled
}

func (c *Consumer) groupID() string {
	if c.kafkaConfig.GroupID != "" {
		return c.kafkaConfig.GroupID
	}
	return kafkaGroupScheduled
}
