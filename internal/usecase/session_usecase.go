package usecase

import (
	"context"

	"bakery/internal/domain/entity"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput returns the access token after a successful login.
type LoginOutput struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	ExpiresIn   int64        `json:"expiresIn"` // seconds
	User        *entity.User `json:"-"`
}

// SessionUsecase signs staff in.
type SessionUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// EnsureAdmin creates an admin account when no user exists yet.
	EnsureAdmin(ctx context.Context, email, password string) error
}
