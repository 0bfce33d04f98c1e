package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/YanWittmann/launch-anything/internal/logger"
	"github.com/YanWittmann/launch-anything/internal/models"
)

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, userID uuid.UUID, username, passwordHash string) error
	UpdateName(ctx context.Context, oldName, newName string) error
	UpdatePassword(ctx context.Context, username, passwordHash string) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// Authenticator verifies credentials and returns the caller's user id.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (uuid.UUID, error)
}

// UserService handles account registration, renaming, password changes
// and deletion.
type UserService struct {
	reader      UserReader
	writer      UserWriter
	auth        Authenticator
	kafkaWriter KafkaWriter
}

// NewUserService creates a new UserService. The Kafka writer may be nil,
// in which case audit events are not published.
func NewUserService(reader UserReader, writer UserWriter, auth Authenticator, kafkaWriter KafkaWriter) *UserService {
	return &UserService{
		reader:      reader,
		writer:      writer,
		auth:        auth,
		kafkaWriter: kafkaWriter,
	}
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation. Concurrent registrations of the same name are resolved by
// the constraint, not by application locking.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Register creates a new user account.
func (svc *UserService) Register(ctx context.Context, username, password string) error {
	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if existing != nil {
		logger.Log.Infow("user already exists", "username", username)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	userID := uuid.New()
	if err := svc.writer.Save(ctx, userID, username, string(hashedPassword)); err != nil {
		if isUniqueViolation(err) {
			return ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	publishEvent(ctx, svc.kafkaWriter, models.EventUserCreated, userID, uuid.Nil)
	return nil
}

// Rename changes a user's name after authenticating with the current
// credentials. The new name must not be taken.
func (svc *UserService) Rename(ctx context.Context, username, password, newUsername string) error {
	userID, err := svc.auth.Authenticate(ctx, username, password)
	if err != nil {
		return err
	}

	existing, err := svc.reader.GetByUsername(ctx, newUsername)
	if err != nil {
		logger.Log.Errorw("failed to check new username", "err", err)
		return err
	}
	if existing != nil {
		logger.Log.Infow("new username already taken", "new_username", newUsername)
		return ErrUserAlreadyExists
	}

	if err := svc.writer.UpdateName(ctx, username, newUsername); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		if isUniqueViolation(err) {
			return ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to rename user", "err", err)
		return err
	}

	publishEvent(ctx, svc.kafkaWriter, models.EventUserRenamed, userID, uuid.Nil)
	return nil
}

// ChangePassword sets a new password after authenticating with the old one.
func (svc *UserService) ChangePassword(ctx context.Context, username, newPassword, password string) error {
	userID, err := svc.auth.Authenticate(ctx, username, password)
	if err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.UpdatePassword(ctx, username, string(hashedPassword)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		logger.Log.Errorw("failed to update password", "err", err)
		return err
	}

	publishEvent(ctx, svc.kafkaWriter, models.EventUserPasswordChanged, userID, uuid.Nil)
	return nil
}

// Delete removes the authenticated user together with all owned tiles.
func (svc *UserService) Delete(ctx context.Context, username, password string) error {
	userID, err := svc.auth.Authenticate(ctx, username, password)
	if err != nil {
		return err
	}

	if err := svc.writer.Delete(ctx, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		logger.Log.Errorw("failed to delete user", "err", err)
		return err
	}

	publishEvent(ctx, svc.kafkaWriter, models.EventUserDeleted, userID, uuid.Nil)
	return nil
}
