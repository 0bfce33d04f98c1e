package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/YanWittmann/launch-anything/internal/models"
	"github.com/YanWittmann/launch-anything/internal/services"
	"github.com/YanWittmann/launch-anything/internal/validation"
)

// TileUpserter defines the interface that the tile service must implement.
type TileUpserter interface {
	CreateOrModify(ctx context.Context, username, password string, tileID uuid.UUID, fields map[string]string) error
}

// NewCreateOrModifyTileHandler returns an HTTP handler that creates a
// tile on first reference and applies partial field updates.
// @Summary Create or modify a tile
// @Description Creates the tile when the id is new, then updates whichever of tile_label, tile_category, tile_action, tile_keywords were supplied. The tile must belong to the authenticated user.
// @Tags tiles
// @Accept json
// @Produce json
// @Param username query string true "Username"
// @Param password query string true "Password"
// @Param tile_id query string true "Tile UUID"
// @Param tile_label query string false "Tile label"
// @Param tile_category query string false "Tile category"
// @Param tile_action query string false "Tile action"
// @Param tile_keywords query string false "Tile keywords"
// @Success 200 {object} models.Response "Tile data modified"
// @Failure 400 {object} models.Response "Missing parameter or invalid tile id"
// @Failure 401 {object} models.Response "Invalid credentials"
// @Failure 403 {object} models.Response "Tile owned by another user"
// @Router /tile [post]
func NewCreateOrModifyTileHandler(svc TileUpserter) http.HandlerFunc {
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

		fields := map[string]string{}
		for param, column := range map[string]string{
			"tile_label":    models.TileFieldLabel,
			"tile_category": models.TileFieldCategory,
			"tile_action":   models.TileFieldAction,
			"tile_keywords": models.TileFieldKeywords,
		} {
			if value, ok := params.Get(param); ok {
				fields[column] = value
			}
		}

		err = svc.CreateOrModify(r.Context(), username, password, tileID, fields)
		switch {
		case err == nil:
			writeSuccess(w, http.StatusOK, "Tile data modified.")
		case errors.Is(err, services.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, msgInvalidLogin)
		case errors.Is(err, services.ErrNotTileOwner):
			writeError(w, http.StatusForbidden, "You are not the owner of this tile.")
		case errors.Is(err, services.ErrTileNotFound):
			writeError(w, http.StatusNotFound, "Tile not found.")
		default:
			writeErrorDiag(w, http.StatusInternalServerError, "Failed to modify tile.", err.Error())
		}
	}
}
