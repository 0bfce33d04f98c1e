package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/YanWittmann/launch-anything/internal/logger"
	"github.com/YanWittmann/launch-anything/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishEvent publishes an audit event for a completed mutation.
// Publishing is best effort: failures are logged, never surfaced to the
// request that triggered the mutation.
func publishEvent(ctx context.Context, writer KafkaWriter, eventType string, userID, tileID uuid.UUID) {
	if writer == nil {
		return
	}

	event := models.AuditEvent{
		EventID:   uuid.New(),
		Type:      eventType,
		UserID:    userID,
		TileID:    tileID,
		Timestamp: time.Now().UTC(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal audit event", "type", eventType, "err", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(userID.String()),
		Value: value,
	}

	if err := writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish audit event", "type", eventType, "err", err)
		return
	}

	logger.Log.Infow("audit event published", "type", eventType, "event_id", event.EventID)
}
