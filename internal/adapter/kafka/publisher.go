// Package kafka publishes intelligence decisions as JSON events.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// MessageWriter is the part of *kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// DecisionEvent is the payload of a decision message.
type DecisionEvent struct {
	Type     string                      `json:"type"`
	Decision domain.IntelligenceDecision `json:"decision"`
}

const decisionRecorded = "intelligence.decision.recorded"

// Publisher implements port.DecisionPublisher. Messages are keyed by SKU
// id so one SKU's decisions stay ordered within a partition.
type Publisher struct {
	writer  MessageWriter
	timeout time.Duration
}

// NewWriter builds a writer for topic on the given brokers.
func NewWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
}

func NewPublisher(writer MessageWriter, timeout time.Duration) *Publisher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Publisher{writer: writer, timeout: timeout}
}

var _ port.DecisionPublisher = (*Publisher)(nil)

func (p *Publisher) PublishDecision(ctx context.Context, d domain.IntelligenceDecision) error {
	value, err := json.Marshal(DecisionEvent{Type: decisionRecorded, Decision: d})
	if err != nil {
		return fmt.Errorf("encode decision event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(d.SKUID),
		Value: value,
		Time:  d.Timestamp,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(decisionRecorded)},
		},
	})
	if err != nil {
		return fmt.Errorf("write decision event: %w", err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
