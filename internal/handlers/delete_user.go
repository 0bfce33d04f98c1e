package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/YanWittmann/launch-anything/internal/services"
)

// UserDeleter defines the interface that the user service must implement.
type UserDeleter interface {
	Delete(ctx context.Context, username, password string) error
}

// NewDeleteUserHandler returns an HTTP handler that deletes the
// authenticated user together with all owned tiles.
// @Summary Delete a user
// @Description Deletes the account and cascades to every tile the user owns.
// @Tags users
// @Accept json
// @Produce json
// @Param username query string true "Username"
// @Param password query string true "Password"
// @Success 200 {object} models.Response "User deleted"
// @Failure 400 {object} models.Response "Missing parameter"
// @Failure 401 {object} models.Response "Invalid credentials"
// @Router /user/remove [post]
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := newRequestParams(r)

		username, err := params.Require("username")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		password, err := params.Require("password")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		err = svc.Delete(r.Context(), username, password)
		switch {
		case err == nil:
			writeSuccess(w, http.StatusOK, "User deleted.")
		case errors.Is(err, services.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, msgInvalidLogin)
		case errors.Is(err, services.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		default:
			writeErrorDiag(w, http.StatusInternalServerError, "Unable to delete user.", err.Error())
		}
	}
}
