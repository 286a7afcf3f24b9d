package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-player-stats/internal/logger"
	"github.com/sbilibin2017/gw-player-stats/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

// publishTimeout bounds how long a write request waits on Kafka.
var publishTimeout = 500 * time.Millisecond

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// newEvent builds an event stamped with a fresh ID and the current time.
func newEvent(entity, operation string, entityID, userID int64) models.Event {
	return models.Event{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Entity:    entity,
		Operation: operation,
		EntityID:  entityID,
		UserID:    userID,
	}
}

// publishEvent publishes an event to Kafka within publishTimeout. Failures are logged only.
func publishEvent(ctx context.Context, w KafkaWriter, evt models.Event) {
	if w == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", evt.EventID)
		return
	}

	data, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", evt.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(evt.EventID),
		Value: data,
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", evt.EventID, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka",
			"event_id", evt.EventID, "entity", evt.Entity, "operation", evt.Operation, "entity_id", evt.EntityID)
	}
}
