package repository

import (
	"context"

	"bakery/internal/domain/entity"
)

// UserRepository stores staff accounts. The filter matches email, first
// name, last name and role.
type UserRepository interface {
	CrudRepository[*entity.User]

	// FindByEmail looks up a user by normalized email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
