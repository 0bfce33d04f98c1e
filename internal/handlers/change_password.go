package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/YanWittmann/launch-anything/internal/services"
	"github.com/YanWittmann/launch-anything/internal/validation"
)

// PasswordChanger defines the interface that the user service must implement.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, username, newPassword, password string) error
}

// NewChangePasswordHandler returns an HTTP handler that sets a new
// password after authenticating with the old one.
// @Summary Change a user's password
// @Description Authenticates with the current password and stores a hash of the new one.
// @Tags users
// @Accept json
// @Produce json
// @Param username query string true "Username"
// @Param password query string true "Current password"
// @Param new_password query string true "New password"
// @Success 200 {object} models.Response "Password updated"
// @Failure 400 {object} models.Response "Missing parameter or invalid new password"
// @Failure 401 {object} models.Response "Invalid credentials"
// @Router /user/password [post]
func NewChangePasswordHandler(svc PasswordChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := newRequestParams(r)

		username, err := params.Require("username")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		newPassword, err := params.Require("new_password")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if !validation.IsValidPassword(newPassword) {
			writeError(w, http.StatusBadRequest, msgInvalidPassword)
			return
		}
		password, err := params.Require("password")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		err = svc.ChangePassword(r.Context(), username, newPassword, password)
		switch {
		case err == nil:
			writeSuccess(w, http.StatusOK, "User password updated")
		case errors.Is(err, services.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, msgInvalidLogin)
		case errors.Is(err, services.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		default:
			writeErrorDiag(w, http.StatusInternalServerError, "Failed to update user password", err.Error())
		}
	}
}
