package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/YanWittmann/launch-anything/internal/services"
	"github.com/YanWittmann/launch-anything/internal/validation"
)

// UserRegisterer defines the interface that the user service must implement.
type UserRegisterer interface {
	Register(ctx context.Context, username, password string) error
}

// NewCreateUserHandler returns an HTTP handler for account registration.
// @Summary Create a user
// @Description Registers a new account. The username must be unique and the password must satisfy the format rules. The password is hashed before storing.
// @Tags users
// @Accept json
// @Produce json
// @Param username query string true "Username"
// @Param password query string true "Password"
// @Success 201 {object} models.Response "User created"
// @Failure 400 {object} models.Response "Missing parameter or invalid format"
// @Failure 409 {object} models.Response "Username already taken"
// @Router /user [post]
func NewCreateUserHandler(svc UserRegisterer) http.HandlerFunc {
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

		if !validation.IsValidUsername(username) {
			writeErrorDiag(w, http.StatusBadRequest, msgInvalidUsername, username)
			return
		}
		if !validation.IsValidPassword(password) {
			writeError(w, http.StatusBadRequest, msgInvalidPassword)
			return
		}

		err = svc.Register(r.Context(), username, password)
		switch {
		case err == nil:
			writeSuccess(w, http.StatusCreated, "User created")
		case errors.Is(err, services.ErrUserAlreadyExists):
			writeErrorDiag(w, http.StatusConflict, "User already exists", username)
		default:
			writeErrorDiag(w, http.StatusInternalServerError, "Error creating user", err.Error())
		}
	}
}
