package obs

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// WithRequestID returns a context carrying the request id used in operation logs.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// RequestID returns the request id stored in ctx, or "-" when there is none.
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok && id != "" {
		return id
	}
	return "-"
}

// Time starts timing op and returns a func to defer with the operation's error:
//
//	defer obs.Time(ctx, "solver.Solve", "n", n)(&err)
//
// kv is an optional list of key/value pairs appended to the log line.
func Time(ctx context.Context, op string, kv ...any) func(errp *error) {
	start := time.Now()
	reqID := RequestID(ctx)
	extra := formatPairs(kv)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s%s dur=%dms err=%v", reqID, op, extra, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("req_id=%s op=%s%s dur=%dms", reqID, op, extra, dur.Milliseconds())
	}
}

func formatPairs(kv []any) string {
	if len(kv) == 0 {
		return ""
	}

	var b strings.Builder
	for i := 0; i < len(kv); i += 2 {
		if i+1 < len(kv) {
			fmt.Fprintf(&b, " %v=%v", kv[i], kv[i+1])
		} else {
			fmt.Fprintf(&b, " %v=?", kv[i])
		}
	}
	return b.String()
}
