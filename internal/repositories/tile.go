package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/YanWittmann/launch-anything/internal/logger"
	"github.com/YanWittmann/launch-anything/internal/models"
)

// tileColumns is the fixed order in which updatable tile fields are
// rendered into SQL, so generated statements are deterministic.
var tileColumns = []string{
	models.TileFieldLabel,
	models.TileFieldCategory,
	models.TileFieldAction,
	models.TileFieldKeywords,
}

// TileReadRepository handles tile read operations.
type TileReadRepository struct {
	db *sqlx.DB
}

func NewTileReadRepository(db *sqlx.DB) *TileReadRepository {
	return &TileReadRepository{db: db}
}

// GetByID returns the tile with the given id, or nil when absent.
func (r *TileReadRepository) GetByID(ctx context.Context, tileID uuid.UUID) (*models.TileDB, error) {
	const query = `
		SELECT tile_id, user_id, label, category, action, keywords, created_at, updated_at
		FROM tiles
		WHERE tile_id = $1
	`

	var tile models.TileDB
	err := r.db.GetContext(ctx, &tile, query, tileID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{tileID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &tile, nil
}

// ListByUserID returns all tiles owned by the given user. A user with
// no tiles yields an empty slice, not an error.
func (r *TileReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.TileDB, error) {
	const query = `
		SELECT tile_id, user_id, label, category, action, keywords, created_at, updated_at
		FROM tiles
		WHERE user_id = $1
	`

	tiles := []models.TileDB{}
	err := r.db.SelectContext(ctx, &tiles, query, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"count", len(tiles),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return tiles, nil
}

// TileWriteRepository handles tile write operations.
type TileWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTileWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TileWriteRepository {
	return &TileWriteRepository{db: db, txGetter: txGetter}
}

func (r *TileWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save creates an empty tile owned by the given user. An existing tile
// with the same id is left unchanged; ownership is the caller's concern.
func (r *TileWriteRepository) Save(ctx context.Context, tileID, userID uuid.UUID) error {
	const query = `
		INSERT INTO tiles (tile_id, user_id, label, category, action, keywords, created_at, updated_at)
		VALUES ($1, $2, '', '', '', '', NOW(), NOW())
		ON CONFLICT (tile_id) DO NOTHING
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, tileID, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{tileID, userID},
		"error", err,
	)

	return err
}

// UpdateFields applies all supplied field updates as a single UPDATE
// statement. Unknown field names are rejected. Returns sql.ErrNoRows
// when the tile does not exist; a nil fields map is a no-op.
func (r *TileWriteRepository) UpdateFields(ctx context.Context, tileID uuid.UUID, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}

	setClauses := make([]string, 0, len(fields)+1)
	args := []any{tileID}
	for _, col := range tileColumns {
		val, ok := fields[col]
		if !ok {
			continue
		}
		args = append(args, val)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if len(setClauses) != len(fields) {
		return fmt.Errorf("unknown tile field in update: %v", fields)
	}
	setClauses = append(setClauses, "updated_at = NOW()")

	query := fmt.Sprintf("UPDATE tiles SET %s WHERE tile_id = $1", strings.Join(setClauses, ", "))

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", query,
		"args", args,
		"rows_affected", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a tile row. Returns sql.ErrNoRows when absent.
func (r *TileWriteRepository) Delete(ctx context.Context, tileID uuid.UUID) error {
	const query = `
		DELETE FROM tiles
		WHERE tile_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, tileID)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{tileID},
		"rows_affected", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
