package facades

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sbilibin2017/gw-lost-found/internal/logger"
	"github.com/sbilibin2017/gw-lost-found/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// NewKafkaWriter returns an async writer for topic. WriteMessages only
// enqueues; delivery failures are logged once the batch completes.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
		Async:                  true,
		Completion:             logDelivery,
	}
}

func logDelivery(msgs []kafka.Message, err error) {
	if err == nil {
		return
	}
	for _, msg := range msgs {
		logger.Log.Errorw("Failed to deliver event to Kafka", "topic", msg.Topic, "key", string(msg.Key), "error", err)
	}
}

// EventsKafkaFacade publishes board events to Kafka.
// A nil writer disables publishing.
type EventsKafkaFacade struct {
	writer KafkaWriter
}

// NewEventsKafkaFacade creates a new facade with a Kafka writer.
func NewEventsKafkaFacade(writer KafkaWriter) *EventsKafkaFacade {
	return &EventsKafkaFacade{writer: writer}
}

// Publish writes the event keyed by its entity id.
func (f *EventsKafkaFacade) Publish(ctx context.Context, event models.Event) error {
	if f.writer == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "type", event.Type)
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.EntityID),
		Value: data,
	}

	if err := f.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "type", event.Type, "error", err)
		return err
	}

	logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "type", event.Type, "entity_id", event.EntityID)
	return nil
}

// Close closes the underlying writer.
func (f *EventsKafkaFacade) Close() error {
	if f.writer == nil {
		return nil
	}
	return f.writer.Close()
}
