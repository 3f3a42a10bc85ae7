package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bakery/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestRequestID(t *testing.T) {
	c := newEchoContext()

	generated := RequestID(c)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)

	StoreRequestID(c, "req-42")
	assert.Equal(t, "req-42", RequestID(c))
}

func TestRequestIDFrom(t *testing.T) {
	assert.Empty(t, RequestIDFrom(context.Background()))

	ctx := WithRequestID(context.Background(), "req-7")
	assert.Equal(t, "req-7", RequestIDFrom(ctx))

	// A plain string key must not collide with the package key.
	foreign := context.WithValue(context.Background(), "request_id", "other") //nolint:staticcheck // SA1029
	assert.Empty(t, RequestIDFrom(foreign))
}

func TestLogger(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "abc"))

	assert.Same(t, fallback, Logger(context.Background(), fallback))
	assert.Nil(t, Logger(context.Background(), nil))
	assert.Same(t, fallback, Logger(WithLogger(context.Background(), nil), fallback))

	ctx := WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, Logger(ctx, fallback))
}

func TestCurrentUser(t *testing.T) {
	c := newEchoContext()

	_, ok := CurrentUser(c)
	assert.False(t, ok)

	user := &entity.User{ID: 3, Email: "baker@example.com", Role: entity.RoleBaker}
	StoreCurrentUser(c, user)

	got, ok := CurrentUser(c)
	assert.True(t, ok)
	assert.Same(t, user, got)
}
