package usecase

import (
	"context"

	"bakery/internal/domain/entity"
)

// --- Input DTOs ---

// UserInput carries an account edit. An empty Password keeps the stored hash.
type UserInput struct {
	ID        int64
	Version   int
	Email     string
	FirstName string
	LastName  string
	Role      entity.Role
	Password  string
}

// UserUsecase manages staff accounts.
type UserUsecase interface {
	FilterableCrudUsecase[*entity.User]

	// SaveUser applies input, hashing a new password when one is given.
	SaveUser(ctx context.Context, currentUser *entity.User, input *UserInput) (*entity.User, error)
}
