package context

import (
	"bakery/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// StoreCurrentUser records the authenticated user for later handlers.
func StoreCurrentUser(c echo.Context, user *entity.User) {
	c.Set(currentUserStoreKey, user)
}

// CurrentUser returns the authenticated user, if any.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(currentUserStoreKey).(*entity.User)

	return user, ok && user != nil
}
