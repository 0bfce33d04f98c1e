package models

import (
	"time"

	"github.com/google/uuid"
)

// Audit event types published on mutations.
const (
	EventUserCreated         = "user.created"
	EventUserRenamed         = "user.renamed"
	EventUserPasswordChanged = "user.password_changed"
	EventUserDeleted         = "user.deleted"
	EventTileUpserted        = "tile.upserted"
	EventTileDeleted         = "tile.deleted"
)

// AuditEvent describes a single mutation for the audit stream.
type AuditEvent struct {
	EventID   uuid.UUID `json:"event_id"`            // Unique event identifier
	Type      string    `json:"type"`                // One of the Event* constants
	UserID    uuid.UUID `json:"user_id"`             // User the mutation applies to
	TileID    uuid.UUID `json:"tile_id,omitempty"`   // Tile involved, if any
	Timestamp time.Time `json:"timestamp"`           // Time the event was recorded
}
