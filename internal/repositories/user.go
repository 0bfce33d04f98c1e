package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/YanWittmann/launch-anything/internal/logger"
	"github.com/YanWittmann/launch-anything/internal/models"
)

// UserReadRepository handles user read operations.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername returns the user with the given name, or nil when absent.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, password_hash, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UserWriteRepository handles user write operations.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new user row.
func (r *UserWriteRepository) Save(ctx context.Context, userID uuid.UUID, username, passwordHash string) error {
	const query = `
		INSERT INTO users (user_id, username, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
	`
	args := []any{userID, username, passwordHash}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, username},
		"error", err,
	)

	return err
}

// UpdateName renames a user. Returns sql.ErrNoRows when no such user exists.
func (r *UserWriteRepository) UpdateName(ctx context.Context, oldName, newName string) error {
	const query = `
		UPDATE users
		SET username = $2, updated_at = NOW()
		WHERE username = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, oldName, newName)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{oldName, newName},
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

// UpdatePassword replaces a user's password hash. Returns sql.ErrNoRows
// when no such user exists.
func (r *UserWriteRepository) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	const query = `
		UPDATE users
		SET password_hash = $2, updated_at = NOW()
		WHERE username = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, username, passwordHash)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
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

// Delete removes a user row. Owned tiles are removed by the
// ON DELETE CASCADE constraint in the same statement.
func (r *UserWriteRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	const query = `
		DELETE FROM users
		WHERE user_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, userID)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
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
