package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/YanWittmann/launch-anything/internal/models"
	"github.com/YanWittmann/launch-anything/internal/services"
)

// TileLister defines the interface that the tile service must implement.
type TileLister interface {
	ListForUser(ctx context.Context, username, password string) ([]models.Tile, error)
}

// NewListTilesHandler returns an HTTP handler that lists all tiles of
// the authenticated user. The message field carries the JSON-encoded
// array of tiles; owning zero tiles is a success with an empty array.
// @Summary List tiles
// @Description Returns all tiles of the authenticated user as a JSON-encoded array in the message field.
// @Tags tiles
// @Accept json
// @Produce json
// @Param username query string true "Username"
// @Param password query string true "Password"
// @Success 200 {object} models.Response "JSON-encoded tile array in message"
// @Failure 400 {object} models.Response "Missing parameter"
// @Failure 401 {object} models.Response "Invalid credentials"
// @Router /tiles [post]
func NewListTilesHandler(svc TileLister) http.HandlerFunc {
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

		tiles, err := svc.ListForUser(r.Context(), username, password)
		switch {
		case err == nil:
			payload, err := json.Marshal(tiles)
			if err != nil {
				writeErrorDiag(w, http.StatusInternalServerError, "Unable to retrieve tile data.", err.Error())
				return
			}
			writeSuccess(w, http.StatusOK, string(payload))
		case errors.Is(err, services.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, msgInvalidLogin)
		default:
			writeErrorDiag(w, http.StatusInternalServerError, "Unable to retrieve tile data.", err.Error())
		}
	}
}
