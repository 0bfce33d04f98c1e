package middlewares

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/YanWittmann/launch-anything/internal/logger"
)

// LoggingMiddleware logs every request and response pair and tags both
// with a generated request id, exposed to clients via X-Request-ID.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.New().String()
		start := time.Now()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}
		w.Header().Set("X-Request-ID", reqID)

		next.ServeHTTP(rw, r)

		logger.Log.Infow("request handled",
			"request_id", reqID,
			"method", r.Method,
			"uri", r.RequestURI,
			"status", rw.statusCode,
			"response_size", strconv.Itoa(rw.size)+"B",
			"duration", time.Since(start),
		)
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	size, err := rw.ResponseWriter.Write(b)
	rw.size += size
	return size, err
}
