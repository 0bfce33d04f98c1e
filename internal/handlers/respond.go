package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/YanWittmann/launch-anything/internal/models"
)

// Validation messages shared by several handlers.
const (
	msgInvalidTileID   = "tile_id is not a valid UUID"
	msgInvalidUsername = "Invalid username, must be between 3 and 36 characters long"
	msgInvalidPassword = "Invalid password, must be 8 characters long and contain at least one number, one uppercase letter, one lowercase letter and no spaces"
	msgInvalidLogin    = "Invalid username or password"
)

func writeJSON(w http.ResponseWriter, status int, resp models.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

// writeSuccess emits the uniform success envelope.
func writeSuccess(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.Response{
		Code:    models.CodeSuccess,
		Message: message,
	})
}

// writeError emits the uniform error envelope.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.Response{
		Code:    models.CodeError,
		Message: message,
	})
}

// writeErrorDiag emits the error envelope with an extra diagnostic.
func writeErrorDiag(w http.ResponseWriter, status int, message, diagnostic string) {
	writeJSON(w, status, models.Response{
		Code:    models.CodeError,
		Message: message,
		Error:   diagnostic,
	})
}
