package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/YanWittmann/launch-anything/internal/services"
	"github.com/YanWittmann/launch-anything/internal/validation"
)

// TileRemover defines the interface that the tile service must implement.
type TileRemover interface {
	Remove(ctx context.Context, username, password string, tileID uuid.UUID) error
}

// NewRemoveTileHandler returns an HTTP handler that deletes a tile
// owned by the authenticated user.
// @Summary Remove a tile
// @Description Deletes the tile after verifying the authenticated user owns it.
// @Tags tiles
// @Accept json
// @Produce json
// @Param username query string true "Username"
// @Param password query string true "Password"
// @Param tile_id query string true "Tile UUID"
// @Success 200 {object} models.Response "Tile deleted"
// @Failure 400 {object} models.Response "Missing parameter or invalid tile id"
// @Failure 401 {object} models.Response "Invalid credentials"
// @Failure 403 {object} models.Response "Tile owned by another user"
// @Failure 404 {object} models.Response "Tile not found"
// @Router /tile/remove [post]
func NewRemoveTileHandler(svc TileRemover) http.HandlerFunc {
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
		rawTileID, err := params.Require("tile_id")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if !validation.IsUUID(rawTileID) {
			writeErrorDiag(w, http.StatusBadRequest, msgInvalidTileID, rawTileID)
			return
		}
		tileID, err := uuid.Parse(rawTileID)
		if err != nil {
			writeErrorDiag(w, http.StatusBadRequest, msgInvalidTileID, rawTileID)
			return
		}

		err = svc.Remove(r.Context(), username, password, tileID)
		switch {
		case err == nil:
			writeSuccess(w, http.StatusOK, "Tile deleted")
		case errors.Is(err, services.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, msgInvalidLogin)
		case errors.Is(err, services.ErrNotTileOwner):
			writeError(w, http.StatusForbidden, "You are not the owner of this tile.")
		case errors.Is(err, services.ErrTileNotFound):
			writeError(w, http.StatusNotFound, "Tile not found.")
		default:
			writeErrorDiag(w, http.StatusInternalServerError, "Failed to delete tile", err.Error())
		}
	}
}
