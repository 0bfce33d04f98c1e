package models

import (
	"time"

	"github.com/google/uuid"
)

// Tile field names accepted by the create-or-modify operation.
const (
	TileFieldLabel    = "label"
	TileFieldCategory = "category"
	TileFieldAction   = "action"
	TileFieldKeywords = "keywords"
)

// TileDB represents a tile row in the database
type TileDB struct {
	TileID    uuid.UUID `json:"tile_id" db:"tile_id"`       // Unique tile identifier
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Identifier of the tile's owner
	Label     string    `json:"label" db:"label"`           // Display label
	Category  string    `json:"category" db:"category"`     // Category name
	Action    string    `json:"action" db:"action"`         // Action executed when launched
	Keywords  string    `json:"keywords" db:"keywords"`     // Search keywords
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Timestamp when the tile was created
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Timestamp of the last tile update
}

// Tile is the wire representation of a tile as returned to clients.
type Tile struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Category string `json:"category"`
	Action   string `json:"action"`
	Keywords string `json:"keywords"`
}

// ToTile converts a database row into its wire representation.
func (t *TileDB) ToTile() Tile {
	return Tile{
		ID:       t.TileID.String(),
		Label:    t.Label,
		Category: t.Category,
		Action:   t.Action,
		Keywords: t.Keywords,
	}
}
