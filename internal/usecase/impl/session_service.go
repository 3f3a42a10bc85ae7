package impl

import (
	"context"
	"log/slog"

	deliverycontext "bakery/internal/delivery/context"
	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/domain/repository"
	"bakery/internal/domain/service"
	"bakery/internal/errors"
	"bakery/internal/usecase"

	"go.uber.org/fx"
)

const bearerTokenType = "Bearer"

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

type sessionService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewSessionService returns the login service.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// Login checks the credentials and issues an access token.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrRequiredFieldsMissing
	}
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// bcrypt is CPU-bound, keep it outside any transaction.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}
	if user.Locked {
		return nil, errors.Wrap(domainerrors.ErrAccountLocked, "login failed")
	}

	token, err := srv.tokenService.GenerateAccessToken(user.ID, user.Email, user.Role.String())
	if err != nil {
		srv.log(ctx).Error("Failed to generate access token", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate access token")
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: token,
		TokenType:   bearerTokenType,
		ExpiresIn:   int64(srv.tokenService.AccessTokenDuration().Seconds()),
		User:        user,
	}, nil
}

// EnsureAdmin creates the bootstrap admin when the user table is empty.
func (srv *sessionService) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	count, err := srv.userRepo.Count(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to count users")
	}
	if count > 0 {
		return nil
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return errors.Wrap(err, "failed to hash admin password")
	}

	admin := &entity.User{
		Email:        entity.NormalizeEmail(email),
		PasswordHash: hash,
		FirstName:    "Bakery",
		LastName:     "Admin",
		Role:         entity.RoleAdmin,
	}
	if err := srv.userRepo.Save(ctx, admin); err != nil {
		return errors.Wrap(err, "failed to create admin user")
	}
	srv.log(ctx).Info("Created bootstrap admin", slog.String("email", admin.Email))

	return nil
}
