// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
)

// Domain-specific errors returned by every repository.
var (
	// ErrNotFound is returned when no row has the requested id.
	ErrNotFound = errors.New("entity not found")
	// ErrVersionConflict is returned when the stored version differs from the one being saved.
	ErrVersionConflict = errors.New("version conflict")
	// ErrDuplicate is returned when a unique column already holds the value.
	ErrDuplicate = errors.New("duplicate value")
	// ErrReferenced is returned when other rows still reference the entity.
	ErrReferenced = errors.New("entity is referenced")
)

// CrudRepository is the storage contract shared by the filterable entities.
// A filter is an optional substring matched case-insensitively.
type CrudRepository[T any] interface {
	// FindByID returns ErrNotFound when no row matches.
	FindByID(ctx context.Context, id int64) (T, error)

	FindAnyMatching(ctx context.Context, filter string, page PageRequest) (*Page[T], error)

	CountAnyMatching(ctx context.Context, filter string) (int64, error)

	Count(ctx context.Context) (int64, error)

	// Save inserts when the id is zero and updates with a version check otherwise.
	// The entity's id and version are refreshed on success.
	Save(ctx context.Context, entity T) error

	// Delete returns ErrNotFound when no row matches and ErrReferenced when
	// other rows still point at it.
	Delete(ctx context.Context, id int64) error
}
