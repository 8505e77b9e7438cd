// Package obs carries per-request observability context across the
// pipeline: the request ID set by the API middleware travels down to
// the scrape, cache, and solver adapters through context.
package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

// RequestIDKey holds the request ID assigned by the HTTP middleware.
// Batch runs leave it unset and the op logs carry an empty req_id.
const RequestIDKey ctxKey = "req_id"

// WithRequestID returns a context carrying the given request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// RequestID returns the request ID stored in ctx, or "" when absent.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Time logs the duration and outcome of a named operation. Use it as a
// deferred closure over a named error return:
//
//	defer obs.Time(ctx, "solver.Solve")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	reqID := RequestID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s dur=%dms err=%v", reqID, name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("req_id=%s op=%s dur=%dms", reqID, name, dur.Milliseconds())
	}
}
