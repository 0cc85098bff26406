package queue

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// Publisher writes status-change events to the payment.status.changed topic.
type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(brokers string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers),
			Topic:    "payment.status.changed",
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *Publisher) Publish(ctx context.Context, key, value []byte) error {
	return p.writer.WriteMessages(ctx, kafka.Message{Key: key, Value: value})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
