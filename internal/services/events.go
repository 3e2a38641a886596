package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/keuzekompas/internal/logger"
	"github.com/sbilibin2017/keuzekompas/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=events.go -destination=mock_events.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// CommitHook defers fn until the surrounding transaction has committed.
type CommitHook func(ctx context.Context, fn func(context.Context))

func runNow(ctx context.Context, fn func(context.Context)) { fn(ctx) }

// MutationOption configures the services that invalidate caches and publish
// events after a write.
type MutationOption func(*mutationOptions)

type mutationOptions struct {
	afterCommit CommitHook
}

// WithAfterCommit routes cache invalidation and event publishing through
// hook, so they only happen once the write is durable.
func WithAfterCommit(hook CommitHook) MutationOption {
	return func(o *mutationOptions) {
		if hook != nil {
			o.afterCommit = hook
		}
	}
}

func newMutationOptions(opts []MutationOption) mutationOptions {
	o := mutationOptions{afterCommit: runNow}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// newEvent stamps an event of the given type with a fresh id and the current time.
func newEvent(eventType string, userID uuid.UUID, moduleID int64) models.CatalogEvent {
	event := models.CatalogEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		ModuleID:  moduleID,
	}
	if userID != uuid.Nil {
		event.UserID = userID.String()
	}
	return event
}

// publishEvent publishes a catalog event to Kafka. Failures are logged and
// never fail the caller; the database write already happened.
func publishEvent(ctx context.Context, writer KafkaWriter, event models.CatalogEvent) {
	if writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "type", event.Type)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
	}

	if err := writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "type", event.Type, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "type", event.Type)
	}
}
