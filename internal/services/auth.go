package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/YanWittmann/launch-anything/internal/logger"
	"github.com/YanWittmann/launch-anything/internal/models"
)

// Error variables
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// AuthService verifies username/password credentials. Every request is
// authenticated independently; nothing is cached between calls.
type AuthService struct {
	reader UserReader
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader) *AuthService {
	return &AuthService{reader: reader}
}

// Authenticate checks the credentials and returns the user's id.
// A missing user and a wrong password both yield ErrInvalidCredentials
// so responses cannot be used to enumerate usernames.
func (svc *AuthService) Authenticate(ctx context.Context, username, password string) (uuid.UUID, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to look up user", "err", err)
		return uuid.Nil, err
	}
	if user == nil {
		logger.Log.Infow("authentication failed, unknown user", "username", username)
		return uuid.Nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("authentication failed, password mismatch", "username", username)
		return uuid.Nil, ErrInvalidCredentials
	}

	return user.UserID, nil
}
