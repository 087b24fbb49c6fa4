// Package kafka publishes domain events to a Kafka broker.
package kafka

import (
	"context"
	"encoding/json"

	portssvc "github.com/awesomegic/bank_account_system/internal/core/ports/services"
	"github.com/segmentio/kafka-go"
)

// Publisher writes JSON-encoded domain events to a Kafka topic.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a publisher for the given brokers and topic.
func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// Publish marshals the event to JSON and writes it, keyed by the topic
// argument so consumers can demultiplex event types from one stream.
func (p *Publisher) Publish(ctx context.Context, topic string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(topic),
		Value: data,
	})
}

// Close flushes pending messages and releases the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

var _ portssvc.EventPublisher = (*Publisher)(nil)
