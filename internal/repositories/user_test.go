package repositories

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestUserReadRepository_GetByUsername(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserReadRepository(sqlxDB)
	ctx := context.Background()

	userID := uuid.New()
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"user_id", "username", "password_hash", "created_at", "updated_at"}).
			AddRow(userID, "alice", "hash", now, now)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, username, password_hash, created_at, updated_at")).
			WithArgs("alice").
			WillReturnRows(rows)

		user, err := repo.GetByUsername(ctx, "alice")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, userID, user.UserID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "hash", user.PasswordHash)
	})

	t.Run("absent user is nil, not an error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, username, password_hash, created_at, updated_at")).
			WithArgs("ghost").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetByUsername(ctx, "ghost")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, username, password_hash, created_at, updated_at")).
			WithArgs("alice").
			WillReturnError(errors.New("connection lost"))

		user, err := repo.GetByUsername(ctx, "alice")
		assert.Error(t, err)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserWriteRepository(sqlxDB, nil)
	ctx := context.Background()

	userID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (user_id, username, password_hash, created_at, updated_at)")).
		WithArgs(userID, "alice", "hash").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(ctx, userID, "alice", "hash")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_UpdateName(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserWriteRepository(sqlxDB, nil)
	ctx := context.Background()

	t.Run("renamed", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("SET username = $2, updated_at = NOW()")).
			WithArgs("alice", "alice2").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateName(ctx, "alice", "alice2"))
	})

	t.Run("absent user", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("SET username = $2, updated_at = NOW()")).
			WithArgs("ghost", "ghost2").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateName(ctx, "ghost", "ghost2")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_UpdatePassword(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserWriteRepository(sqlxDB, nil)
	ctx := context.Background()

	t.Run("updated", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("SET password_hash = $2, updated_at = NOW()")).
			WithArgs("alice", "newhash").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdatePassword(ctx, "alice", "newhash"))
	})

	t.Run("absent user", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("SET password_hash = $2, updated_at = NOW()")).
			WithArgs("ghost", "newhash").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdatePassword(ctx, "ghost", "newhash")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Delete(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserWriteRepository(sqlxDB, nil)
	ctx := context.Background()

	userID := uuid.New()

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users")).
			WithArgs(userID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, userID))
	})

	t.Run("absent user", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users")).
			WithArgs(userID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(ctx, userID)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

// Write repositories must run against the ambient transaction when one
// is present in the context.
func TestUserWriteRepository_UsesAmbientTx(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(sqlmock.AnyArg(), "alice", "hash").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := sqlxDB.Beginx()
	assert.NoError(t, err)

	repo := NewUserWriteRepository(sqlxDB, func(context.Context) *sqlx.Tx { return tx })

	assert.NoError(t, repo.Save(ctx, uuid.New(), "alice", "hash"))
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
