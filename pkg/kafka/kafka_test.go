package kafka

import (
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProducerConfig(t *testing.T) {
	assert.EqualError(t, validateProducerConfig(Config{Topic: "report.generated"}), "kafka: at least one broker is required")
	assert.EqualError(t, validateProducerConfig(Config{Brokers: []string{"k:9092"}}), "kafka: topic is required")
	assert.NoError(t, validateProducerConfig(Config{Brokers: []string{"k:9092"}, Topic: "report.generated"}))
}

func TestValidateConsumerConfig(t *testing.T) {
	brokers := []string{"k:9092"}

	assert.EqualError(t, validateConsumerConfig(ConsumerConfig{GroupID: "g"}), "kafka: at least one broker is required")
	assert.EqualError(t, validateConsumerConfig(ConsumerConfig{Brokers: brokers}), "kafka: group ID is required")
	assert.EqualError(t, validateConsumerConfig(ConsumerConfig{Brokers: brokers, GroupID: "g", InitialOffset: "latest"}), `kafka: unknown initial offset "latest"`)
	assert.NoError(t, validateConsumerConfig(ConsumerConfig{Brokers: brokers, GroupID: "g", InitialOffset: OffsetNewest}))
}

func TestProducerConfig(t *testing.T) {
	c := producerConfig(Config{Brokers: []string{"k:9092"}, Topic: "report.generated"})

	require.NoError(t, c.Validate())
	assert.True(t, c.Producer.Idempotent)
	assert.Equal(t, sarama.WaitForAll, c.Producer.RequiredAcks)
	assert.Equal(t, 1, c.Net.MaxOpenRequests)
	assert.Equal(t, DefaultClientID, c.ClientID)

	c = producerConfig(Config{ClientID: "dealer-report-consumer"})
	assert.Equal(t, "dealer-report-consumer", c.ClientID)
}

func TestConsumerGroupConfig(t *testing.T) {
	c, err := consumerGroupConfig(ConsumerConfig{})
	require.NoError(t, err)
	require.NoError(t, c.Validate())
	assert.Equal(t, sarama.OffsetOldest, c.Consumer.Offsets.Initial)
	assert.True(t, c.Consumer.Return.Errors)

	c, err = consumerGroupConfig(ConsumerConfig{InitialOffset: OffsetNewest})
	require.NoError(t, err)
	assert.Equal(t, sarama.OffsetNewest, c.Consumer.Offsets.Initial)
}

func TestNewMessage(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	msg := newMessage("report.scheduled", []byte("sched-1"), []byte(`{"a":1}`), ts)

	assert.Equal(t, "report.scheduled", msg.Topic)
	assert.Equal(t, ts, msg.Timestamp)
	key, err := msg.Key.Encode()
	require.NoError(t, err)
	assert.Equal(t, "sched-1", string(key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, ContentTypeJSON, string(msg.Headers[0].Value))
}
