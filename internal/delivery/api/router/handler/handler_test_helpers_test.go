package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "bakery/internal/delivery/api/middleware"
	"bakery/internal/delivery/api/validator"
	deliverycontext "bakery/internal/delivery/context"
	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var (
	testAdmin   = &entity.User{ID: 1, Email: "admin@example.com", FirstName: "Ada", LastName: "Admin", Role: entity.RoleAdmin}
	testBarista = &entity.User{ID: 2, Email: "barista@example.com", FirstName: "Bo", LastName: "Barista", Role: entity.RoleBarista}
)

type envelope struct {
	Success bool                    `json:"success"`
	Code    int                     `json:"code"`
	Message string                  `json:"message"`
	Data    json.RawMessage         `json:"data"`
	Error   *domainerrors.ErrorInfo `json:"error"`
}

// newTestEcho returns an echo instance with the production error handler and
// validator. A non-nil user is installed as the signed in user.
func newTestEcho(user *entity.User) *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError
	if user != nil {
		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				deliverycontext.StoreCurrentUser(c, user)

				return next(c)
			}
		})
	}

	return e
}

func doRequest(t *testing.T, e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	if rec.Code != http.StatusNoContent && strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))

	return out
}
