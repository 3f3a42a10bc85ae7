// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bakery/internal/domain/entity"
	"bakery/internal/domain/repository"
)

// CrudUsecase is the user-aware create, read, update and delete contract
// shared by every entity service.
type CrudUsecase[T any] interface {
	// CreateNew returns a fresh, unsaved entity.
	CreateNew(ctx context.Context, currentUser *entity.User) T

	// Save persists entity on behalf of currentUser and returns the stored value.
	Save(ctx context.Context, currentUser *entity.User, entity T) (T, error)

	// Delete removes the entity with id on behalf of currentUser.
	Delete(ctx context.Context, currentUser *entity.User, id int64) error

	// Load returns the entity with id or a not-found error.
	Load(ctx context.Context, id int64) (T, error)

	Count(ctx context.Context) (int64, error)
}

// FilterableCrudUsecase adds substring filtering to CrudUsecase.
type FilterableCrudUsecase[T any] interface {
	CrudUsecase[T]

	FindAnyMatching(ctx context.Context, filter string, page repository.PageRequest) (*repository.Page[T], error)

	CountAnyMatching(ctx context.Context, filter string) (int64, error)
}

// ProductUsecase manages the product catalogue.
type ProductUsecase interface {
	FilterableCrudUsecase[*entity.Product]
}

// PickupLocationUsecase manages pickup locations.
type PickupLocationUsecase interface {
	FilterableCrudUsecase[*entity.PickupLocation]

	// GetDefault returns the first pickup location.
	GetDefault(ctx context.Context) (*entity.PickupLocation, error)
}
