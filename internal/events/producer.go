// Package events publishes enrollment change notifications to Kafka.
package events

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// EnrollmentChanged is the message emitted after a successful signup or
// unregister. Action is "signed_up" or "removed".
type EnrollmentChanged struct {
	EventID    string    `json:"event_id"`
	Activity   string    `json:"activity"`
	Student    string    `json:"student"`
	Action     string    `json:"action"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Producer publishes enrollment events, lazily managing writers per topic.
type Producer struct {
	brokers []string
	topic   string
	timeout time.Duration

	mu      sync.Mutex
	writers map[string]*kafka.Writer
}

// NewProducer creates a Producer for the given brokers and topic.
func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		brokers: brokers,
		topic:   topic,
		timeout: 5 * time.Second,
		writers: make(map[string]*kafka.Writer),
	}
}

// PublishEnrollmentChanged emits the change off the request path. Publish
// failures are logged and never surfaced to the caller; the catalog mutation
// has already committed.
func (p *Producer) PublishEnrollmentChanged(activity, student, action string, occurredAt time.Time) {
	event := EnrollmentChanged{
		EventID:    uuid.NewString(),
		Activity:   activity,
		Student:    student,
		Action:     action,
		OccurredAt: occurredAt,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
		defer cancel()

		msg, err := buildMessage(event)
		if err != nil {
			log.Printf("events: marshal enrollment change: %v", err)
			return
		}
		if err := p.writeMessages(ctx, p.topic, msg); err != nil {
			log.Printf("events: publish enrollment change: %v", err)
		}
	}()
}

// buildMessage encodes the event, keyed by activity so changes to the same
// activity land on one partition in order.
func buildMessage(event EnrollmentChanged) (kafka.Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(event.Activity),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("enrollment.changed")},
		},
	}, nil
}

func (p *Producer) writeMessages(ctx context.Context, topic string, msgs ...kafka.Message) error {
	writer := p.writerForTopic(topic)
	return writer.WriteMessages(ctx, msgs...)
}

func (p *Producer) writerForTopic(topic string) *kafka.Writer {
	p.mu.Lock()
	defer p.mu.Unlock()

	if writer, ok := p.writers[topic]; ok {
		return writer
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(p.brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireAll,
		Compression:  kafka.Snappy,
		Async:        false,
	}
	p.writers[topic] = writer
	return writer
}

// Close releases all writers.
func (p *Producer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	for topic, writer := range p.writers {
		if err := writer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(p.writers, topic)
	}
	return firstErr
}
