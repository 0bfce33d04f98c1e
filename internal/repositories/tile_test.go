package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/YanWittmann/launch-anything/internal/models"
)

func TestTileReadRepository_GetByID(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewTileReadRepository(sqlxDB)
	ctx := context.Background()

	tileID := uuid.MustParse("123e4567-e89b-42d3-a456-426614174000")
	userID := uuid.New()
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"tile_id", "user_id", "label", "category", "action", "keywords", "created_at", "updated_at"}).
			AddRow(tileID, userID, "Calc", "tools", "open calc", "math", now, now)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT tile_id, user_id, label, category, action, keywords, created_at, updated_at")).
			WithArgs(tileID).
			WillReturnRows(rows)

		tile, err := repo.GetByID(ctx, tileID)
		assert.NoError(t, err)
		assert.NotNil(t, tile)
		assert.Equal(t, tileID, tile.TileID)
		assert.Equal(t, userID, tile.UserID)
		assert.Equal(t, "Calc", tile.Label)
	})

	t.Run("absent tile is nil, not an error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT tile_id, user_id, label, category, action, keywords, created_at, updated_at")).
			WithArgs(tileID).
			WillReturnError(sql.ErrNoRows)

		tile, err := repo.GetByID(ctx, tileID)
		assert.NoError(t, err)
		assert.Nil(t, tile)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTileReadRepository_ListByUserID(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewTileReadRepository(sqlxDB)
	ctx := context.Background()

	userID := uuid.New()
	now := time.Now()

	t.Run("two tiles", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"tile_id", "user_id", "label", "category", "action", "keywords", "created_at", "updated_at"}).
			AddRow(uuid.New(), userID, "Calc", "tools", "open calc", "math", now, now).
			AddRow(uuid.New(), userID, "Mail", "web", "open mail", "", now, now)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT tile_id, user_id, label, category, action, keywords, created_at, updated_at")).
			WithArgs(userID).
			WillReturnRows(rows)

		tiles, err := repo.ListByUserID(ctx, userID)
		assert.NoError(t, err)
		assert.Len(t, tiles, 2)
		assert.Equal(t, "Calc", tiles[0].Label)
		assert.Equal(t, "Mail", tiles[1].Label)
	})

	t.Run("no tiles is an empty slice", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"tile_id", "user_id", "label", "category", "action", "keywords", "created_at", "updated_at"})

		mock.ExpectQuery(regexp.QuoteMeta("SELECT tile_id, user_id, label, category, action, keywords, created_at, updated_at")).
			WithArgs(userID).
			WillReturnRows(rows)

		tiles, err := repo.ListByUserID(ctx, userID)
		assert.NoError(t, err)
		assert.NotNil(t, tiles)
		assert.Empty(t, tiles)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTileWriteRepository_Save(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewTileWriteRepository(sqlxDB, nil)
	ctx := context.Background()

	tileID := uuid.New()
	userID := uuid.New()

	t.Run("inserted", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO tiles (tile_id, user_id, label, category, action, keywords, created_at, updated_at)")).
			WithArgs(tileID, userID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Save(ctx, tileID, userID))
	})

	t.Run("existing tile id is left untouched", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (tile_id) DO NOTHING")).
			WithArgs(tileID, userID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.Save(ctx, tileID, userID))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTileWriteRepository_UpdateFields(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewTileWriteRepository(sqlxDB, nil)
	ctx := context.Background()

	tileID := uuid.New()

	t.Run("single field", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE tiles SET label = $2, updated_at = NOW() WHERE tile_id = $1")).
			WithArgs(tileID, "Calc").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateFields(ctx, tileID, map[string]string{models.TileFieldLabel: "Calc"})
		assert.NoError(t, err)
	})

	t.Run("several fields in one statement, in column order", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE tiles SET label = $2, action = $3, keywords = $4, updated_at = NOW() WHERE tile_id = $1")).
			WithArgs(tileID, "Calc", "open calc", "math").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateFields(ctx, tileID, map[string]string{
			models.TileFieldKeywords: "math",
			models.TileFieldLabel:    "Calc",
			models.TileFieldAction:   "open calc",
		})
		assert.NoError(t, err)
	})

	t.Run("empty map is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.UpdateFields(ctx, tileID, nil))
		assert.NoError(t, repo.UpdateFields(ctx, tileID, map[string]string{}))
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		err := repo.UpdateFields(ctx, tileID, map[string]string{"owner": "mallory"})
		assert.Error(t, err)
	})

	t.Run("absent tile", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE tiles SET label = $2, updated_at = NOW() WHERE tile_id = $1")).
			WithArgs(tileID, "Calc").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateFields(ctx, tileID, map[string]string{models.TileFieldLabel: "Calc"})
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTileWriteRepository_Delete(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewTileWriteRepository(sqlxDB, nil)
	ctx := context.Background()

	tileID := uuid.New()

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tiles")).
			WithArgs(tileID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, tileID))
	})

	t.Run("absent tile", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tiles")).
			WithArgs(tileID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(ctx, tileID)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
