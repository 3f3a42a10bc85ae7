package middleware

import (
	"strings"

	deliverycontext "bakery/internal/delivery/context"
	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/domain/service"
	"bakery/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	UserUC       usecase.UserUsecase
}

// AuthMiddleware authenticates requests with access tokens and checks roles.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userUC   usecase.UserUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: params.TokenService,
		userUC:   params.UserUC,
	}
}

// Authenticate validates the bearer token and loads the signed in user, so
// deleted and locked accounts lose access before their token expires.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return domainerrors.ErrUnauthorized
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimPrefix(authHeader, bearerPrefix))
		if err != nil {
			return domainerrors.ErrUnauthorized.WithDetails(err.Error())
		}

		user, err := m.userUC.Load(c.Request().Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrEntityNotFound) {
				return domainerrors.ErrUnauthorized
			}

			return err
		}
		if user.Locked {
			return domainerrors.ErrAccountLocked
		}

		deliverycontext.StoreCurrentUser(c, user)

		return next(c)
	}
}

// RequireRole only lets users with one of roles through.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := deliverycontext.CurrentUser(c)
			if !ok {
				return domainerrors.ErrUnauthorized
			}
			if !allowed.Contains(user.Role) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// CurrentUser returns the user set by Authenticate.
func CurrentUser(c echo.Context) (*entity.User, error) {
	user, ok := deliverycontext.CurrentUser(c)
	if !ok {
		return nil, domainerrors.ErrUnauthorized
	}

	return user, nil
}
