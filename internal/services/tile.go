package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/YanWittmann/launch-anything/internal/logger"
	"github.com/YanWittmann/launch-anything/internal/models"
)

// Error variables
var (
	ErrTileNotFound = errors.New("tile not found")
	ErrNotTileOwner = errors.New("not the owner of this tile")
)

// TileReader defines read operations for tiles.
type TileReader interface {
	GetByID(ctx context.Context, tileID uuid.UUID) (*models.TileDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.TileDB, error)
}

// TileWriter defines write operations for tiles.
type TileWriter interface {
	Save(ctx context.Context, tileID, userID uuid.UUID) error
	UpdateFields(ctx context.Context, tileID uuid.UUID, fields map[string]string) error
	Delete(ctx context.Context, tileID uuid.UUID) error
}

// TileService handles tile upserts, deletions and listing. All
// operations authenticate the caller and check ownership before any
// mutation.
type TileService struct {
	reader      TileReader
	writer      TileWriter
	auth        Authenticator
	kafkaWriter KafkaWriter
}

// NewTileService creates a new TileService. The Kafka writer may be nil,
// in which case audit events are not published.
func NewTileService(reader TileReader, writer TileWriter, auth Authenticator, kafkaWriter KafkaWriter) *TileService {
	return &TileService{
		reader:      reader,
		writer:      writer,
		auth:        auth,
		kafkaWriter: kafkaWriter,
	}
}

// CreateOrModify creates the tile when it does not exist yet, then
// applies the supplied field updates in one statement. A tile owned by
// another user is never touched.
func (svc *TileService) CreateOrModify(ctx context.Context, username, password string, tileID uuid.UUID, fields map[string]string) error {
	userID, err := svc.auth.Authenticate(ctx, username, password)
	if err != nil {
		return err
	}

	tile, err := svc.reader.GetByID(ctx, tileID)
	if err != nil {
		logger.Log.Errorw("failed to load tile", "err", err)
		return err
	}

	if tile == nil {
		if err := svc.writer.Save(ctx, tileID, userID); err != nil {
			logger.Log.Errorw("failed to create tile", "err", err)
			return err
		}
	} else if tile.UserID != userID {
		logger.Log.Infow("tile owned by another user", "tile_id", tileID, "user_id", userID)
		return ErrNotTileOwner
	}

	if err := svc.writer.UpdateFields(ctx, tileID, fields); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTileNotFound
		}
		logger.Log.Errorw("failed to update tile fields", "err", err)
		return err
	}

	publishEvent(ctx, svc.kafkaWriter, models.EventTileUpserted, userID, tileID)
	return nil
}

// Remove deletes a tile owned by the authenticated user. The ownership
// check happens strictly before the delete.
func (svc *TileService) Remove(ctx context.Context, username, password string, tileID uuid.UUID) error {
	userID, err := svc.auth.Authenticate(ctx, username, password)
	if err != nil {
		return err
	}

	tile, err := svc.reader.GetByID(ctx, tileID)
	if err != nil {
		logger.Log.Errorw("failed to load tile", "err", err)
		return err
	}
	if tile == nil {
		return ErrTileNotFound
	}
	if tile.UserID != userID {
		logger.Log.Infow("tile owned by another user", "tile_id", tileID, "user_id", userID)
		return ErrNotTileOwner
	}

	if err := svc.writer.Delete(ctx, tileID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTileNotFound
		}
		logger.Log.Errorw("failed to delete tile", "err", err)
		return err
	}

	publishEvent(ctx, svc.kafkaWriter, models.EventTileDeleted, userID, tileID)
	return nil
}

// ListForUser returns every tile owned by the authenticated user. A
// user without tiles gets an empty list, not an error.
func (svc *TileService) ListForUser(ctx context.Context, username, password string) ([]models.Tile, error) {
	userID, err := svc.auth.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	rows, err := svc.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list tiles", "err", err)
		return nil, err
	}

	tiles := make([]models.Tile, 0, len(rows))
	for i := range rows {
		tiles = append(tiles, rows[i].ToTile())
	}

	return tiles, nil
}
