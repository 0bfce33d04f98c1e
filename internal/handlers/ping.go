package handlers

import (
	"context"
	"net/http"
)

// DBPinger defines the interface used by the health check.
type DBPinger interface {
	PingContext(ctx context.Context) error
}

// NewPingHandler returns a health check handler backed by a database ping.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} models.Response "Service and database reachable"
// @Failure 500 {object} models.Response "Database unreachable"
// @Router /ping [get]
func NewPingHandler(db DBPinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			writeErrorDiag(w, http.StatusInternalServerError, "Database unreachable", err.Error())
			return
		}
		writeSuccess(w, http.StatusOK, "pong")
	}
}
