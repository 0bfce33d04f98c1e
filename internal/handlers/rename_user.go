package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/YanWittmann/launch-anything/internal/services"
	"github.com/YanWittmann/launch-anything/internal/validation"
)

// UserRenamer defines the interface that the user service must implement.
type UserRenamer interface {
	Rename(ctx context.Context, username, password, newUsername string) error
}

// NewRenameUserHandler returns an HTTP handler that changes a username.
// @Summary Rename a user
// @Description Changes the username after authenticating with the current credentials. The new name must be valid and untaken.
// @Tags users
// @Accept json
// @Produce json
// @Param username query string true "Current username"
// @Param password query string true "Password"
// @Param new_username query string true "New username"
// @Success 200 {object} models.Response "User name updated"
// @Failure 400 {object} models.Response "Missing parameter or invalid new username"
// @Failure 401 {object} models.Response "Invalid credentials"
// @Failure 409 {object} models.Response "New username already taken"
// @Router /user/rename [post]
func NewRenameUserHandler(svc UserRenamer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := newRequestParams(r)

		username, err := params.Require("username")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		newUsername, err := params.Require("new_username")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if !validation.IsValidUsername(newUsername) {
			writeErrorDiag(w, http.StatusBadRequest, msgInvalidUsername, newUsername)
			return
		}
		password, err := params.Require("password")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		err = svc.Rename(r.Context(), username, password, newUsername)
		switch {
		case err == nil:
			writeSuccess(w, http.StatusOK, fmt.Sprintf("User name updated to %s", newUsername))
		case errors.Is(err, services.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, msgInvalidLogin)
		case errors.Is(err, services.ErrUserAlreadyExists):
			writeErrorDiag(w, http.StatusConflict, "User already exists", newUsername)
		case errors.Is(err, services.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		default:
			writeErrorDiag(w, http.StatusInternalServerError, "Failed to update user name", err.Error())
		}
	}
}
