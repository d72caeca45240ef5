// Package middleware carries the cross-cutting HTTP wrappers.
package middleware

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type ctxKey string

const requestIDKey ctxKey = "request_id"

// RequestLog assigns every request a v4 UUID, echoes it in X-Request-Id,
// and writes one access-log line per request.
func RequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)

		ctx := context.WithValue(r.Context(), requestIDKey, id)

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(ctx))

		log.Printf("%s %s %s id=%s dur=%s",
			r.RemoteAddr, r.Method, r.URL.Path, id, time.Since(start))
	})
}

// RequestIDFromContext returns the request id set by RequestLog.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(requestIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
