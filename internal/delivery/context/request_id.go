// Package context carries per-request values between echo handlers, the
// use cases below them and the worker.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderRequestID is read from incoming requests and echoed on responses.
const HeaderRequestID = "X-Request-Id"

// echo.Context store keys.
const (
	requestIDStoreKey   = "request_id"
	currentUserStoreKey = "current_user"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
)

// RequestID returns the id stored by StoreRequestID, or a fresh uuid when the
// request never passed the request id middleware.
func RequestID(c echo.Context) string {
	if id, ok := c.Get(requestIDStoreKey).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

func StoreRequestID(c echo.Context, requestID string) {
	c.Set(requestIDStoreKey, requestID)
}

// RequestIDFrom returns "" when ctx carries no id.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// Logger returns the request-scoped logger of ctx, or fallback.
func Logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}
