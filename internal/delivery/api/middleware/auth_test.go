package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "bakery/internal/delivery/context"
	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/domain/service"
	mockService "bakery/internal/mocks/service"
	mockUsecase "bakery/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAuthTestEcho(t *testing.T) (*echo.Echo, *mockService.MockTokenService, *mockUsecase.MockUserUsecase) {
	tokenSvc := mockService.NewMockTokenService(t)
	userUC := mockUsecase.NewMockUserUsecase(t)
	auth := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokenSvc, UserUC: userUC})

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	ok := func(c echo.Context) error {
		user, _ := deliverycontext.CurrentUser(c)

		return c.String(http.StatusOK, user.Email)
	}
	e.GET("/any", ok, auth.Authenticate)
	e.GET("/admin", ok, auth.Authenticate, auth.RequireRole(entity.RoleAdmin))
	e.GET("/staff", ok, auth.Authenticate, auth.RequireRole(entity.RoleBaker, entity.RoleBarista))

	return e, tokenSvc, userUC
}

func serve(e *echo.Echo, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	baker := &entity.User{ID: 3, Email: "baker@example.com", Role: entity.RoleBaker}

	t.Run("valid token", func(t *testing.T) {
		e, tokenSvc, userUC := newAuthTestEcho(t)
		tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: 3}, nil).Once()
		userUC.EXPECT().Load(mock.Anything, int64(3)).Return(baker, nil).Once()

		rec := serve(e, "/any", "Bearer good")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "baker@example.com", rec.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		e, _, _ := newAuthTestEcho(t)

		rec := serve(e, "/any", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
	})

	t.Run("not a bearer token", func(t *testing.T) {
		e, _, _ := newAuthTestEcho(t)

		rec := serve(e, "/any", "Basic Zm9vOmJhcg==")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		e, tokenSvc, _ := newAuthTestEcho(t)
		tokenSvc.EXPECT().ValidateToken("bad").Return(nil, errors.New("token is expired")).Once()

		rec := serve(e, "/any", "Bearer bad")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.NotContains(t, rec.Body.String(), "expired")
	})

	t.Run("deleted user", func(t *testing.T) {
		e, tokenSvc, userUC := newAuthTestEcho(t)
		tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: 3}, nil).Once()
		userUC.EXPECT().Load(mock.Anything, int64(3)).Return(nil, domainerrors.ErrEntityNotFound.WrapMessage("load user")).Once()

		rec := serve(e, "/any", "Bearer good")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("locked user", func(t *testing.T) {
		e, tokenSvc, userUC := newAuthTestEcho(t)
		tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: 3}, nil).Once()
		userUC.EXPECT().Load(mock.Anything, int64(3)).Return(&entity.User{ID: 3, Role: entity.RoleBaker, Locked: true}, nil).Once()

		rec := serve(e, "/any", "Bearer good")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "ACCOUNT_LOCKED")
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name       string
		role       entity.Role
		path       string
		wantStatus int
	}{
		{name: "admin on admin route", role: entity.RoleAdmin, path: "/admin", wantStatus: http.StatusOK},
		{name: "baker on admin route", role: entity.RoleBaker, path: "/admin", wantStatus: http.StatusForbidden},
		{name: "barista on staff route", role: entity.RoleBarista, path: "/staff", wantStatus: http.StatusOK},
		{name: "admin on staff route", role: entity.RoleAdmin, path: "/staff", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, tokenSvc, userUC := newAuthTestEcho(t)
			tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: 8}, nil).Once()
			userUC.EXPECT().Load(mock.Anything, int64(8)).Return(&entity.User{ID: 8, Email: "u@example.com", Role: tt.role}, nil).Once()

			rec := serve(e, tt.path, "Bearer good")

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
