package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bakery/internal/delivery/api/response"
	"bakery/internal/delivery/api/validator"
	domainerrors "bakery/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/orders/1", nil), rec)

	NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(err, c)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return rec, resp
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantStatus     int
		wantCode       string
		wantPersistent bool
		wantMessage    string
	}{
		{
			name:        "wrapped not found",
			err:         errors.Wrap(domainerrors.ErrEntityNotFound, "load order"),
			wantStatus:  http.StatusNotFound,
			wantCode:    "ENTITY_NOT_FOUND",
			wantMessage: "The selected entity was not found.",
		},
		{
			name:           "concurrent update",
			err:            domainerrors.ErrConcurrentUpdate,
			wantStatus:     http.StatusConflict,
			wantCode:       "CONCURRENT_UPDATE",
			wantPersistent: true,
			wantMessage:    "Somebody else might have updated the data. Please refresh and try again.",
		},
		{
			name:           "business rule",
			err:            domainerrors.ErrModifyLockedUser,
			wantStatus:     http.StatusUnprocessableEntity,
			wantCode:       "USER_FRIENDLY_DATA",
			wantPersistent: true,
			wantMessage:    "User has been locked and cannot be modified or deleted",
		},
		{
			name:        "echo http error",
			err:         echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			wantStatus:  http.StatusMethodNotAllowed,
			wantCode:    "HTTP_ERROR",
			wantMessage: "Method Not Allowed",
		},
		{
			name:        "unknown error is hidden",
			err:         errors.New("pq: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: domainerrors.ErrInternalError.Message(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := handleError(t, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.Equal(t, tt.wantMessage, resp.Message)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Equal(t, tt.wantPersistent, resp.Error.Persistent)
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}

func TestErrorMiddleware_ValidationErrors(t *testing.T) {
	type request struct {
		Name string `json:"name" validate:"required"`
	}
	err := validator.New().Validate(&request{})
	require.Error(t, err)

	rec, resp := handleError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "REQUIRED_FIELDS_MISSING", resp.Error.Code)
	assert.Equal(t, []any{map[string]any{"field": "name", "rule": "required"}}, resp.Error.Details)
}

func TestErrorMiddleware_CommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, "done", rec.Body.String())
}
