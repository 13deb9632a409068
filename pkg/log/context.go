package log

import "context"

const (
	ModeProduction = "production"
	EncodingJSON   = "json"

	FieldRequestID = "request_id"
)

type requestIDKey struct{}

// WithRequestID returns a copy of ctx carrying the request id emitted on every log line.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the request id stored by WithRequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
