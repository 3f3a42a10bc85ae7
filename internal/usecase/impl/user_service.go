package impl

import (
	"context"
	"log/slog"

	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/domain/repository"
	"bakery/internal/domain/service"
	"bakery/internal/errors"
	"bakery/internal/usecase"

	"go.uber.org/fx"
)

const (
	minPasswordLength = 4
	maxPasswordLength = 72 // bcrypt input limit in bytes
)

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// userService implements the UserUsecase interface.
type userService struct {
	*crudService[*entity.User]

	hasher service.PasswordHasher
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	srv := &userService{hasher: params.Hasher}
	srv.crudService = &crudService[*entity.User]{
		txManager: params.TxManager,
		repo:      params.UserRepo,
		txRepo: func(f repository.RepositoryFactory) repository.CrudRepository[*entity.User] {
			return f.UserRepo()
		},
		logger: params.Logger,
		policy: crudPolicy[*entity.User]{
			name:         "user",
			newEntity:    func(*entity.User) *entity.User { return &entity.User{Role: entity.RoleBarista} },
			validate:     validateUser,
			beforeSave:   srv.beforeSave,
			beforeDelete: srv.beforeDelete,
			duplicateErr: domainerrors.ErrDuplicateUserEmail,
		},
	}

	return srv
}

// SaveUser builds a user from input and saves it. A given password is hashed;
// an empty one keeps the stored hash.
func (srv *userService) SaveUser(ctx context.Context, currentUser *entity.User, input *usecase.UserInput) (*entity.User, error) {
	if input == nil {
		return nil, domainerrors.ErrRequiredFieldsMissing
	}

	user := &entity.User{
		ID:        input.ID,
		Version:   input.Version,
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Role:      input.Role,
	}

	if input.Password != "" {
		if len(input.Password) < minPasswordLength || len(input.Password) > maxPasswordLength {
			return nil, domainerrors.ErrRequiredFieldsMissing.WithDetails("password")
		}
		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}
		user.PasswordHash = hash
	} else if user.IsNew() {
		return nil, domainerrors.ErrRequiredFieldsMissing.WithDetails("password")
	}

	return srv.Save(ctx, currentUser, user)
}

// beforeSave lower-cases the email, rejects locked accounts and keeps the
// stored password hash when none was supplied.
func (srv *userService) beforeSave(ctx context.Context, repo repository.CrudRepository[*entity.User], _ *entity.User, user *entity.User) error {
	user.Email = entity.NormalizeEmail(user.Email)
	if user.Locked {
		return domainerrors.ErrModifyLockedUser.WrapMessage("save user")
	}
	if user.IsNew() {
		return nil
	}

	stored, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		return err
	}
	if stored.Locked {
		return domainerrors.ErrModifyLockedUser.WrapMessage("save user")
	}
	if user.PasswordHash == "" {
		user.PasswordHash = stored.PasswordHash
	}

	return nil
}

// beforeDelete rejects deleting oneself and deleting locked accounts.
func (srv *userService) beforeDelete(_ context.Context, currentUser *entity.User, stored *entity.User) error {
	if currentUser != nil && currentUser.ID == stored.ID {
		return domainerrors.ErrDeleteOwnAccount.WrapMessage("delete user")
	}
	if stored.Locked {
		return domainerrors.ErrModifyLockedUser.WrapMessage("delete user")
	}

	return nil
}

func validateUser(u *entity.User) error {
	if u == nil {
		return domainerrors.ErrRequiredFieldsMissing
	}
	if err := requireText("email", u.Email, entity.MaxTextLength); err != nil {
		return err
	}
	if err := requireText("firstName", u.FirstName, entity.MaxTextLength); err != nil {
		return err
	}
	if err := requireText("lastName", u.LastName, entity.MaxTextLength); err != nil {
		return err
	}
	if !u.Role.IsValid() {
		return domainerrors.ErrRequiredFieldsMissing.WithDetails("role")
	}
	if u.IsNew() && u.PasswordHash == "" {
		return domainerrors.ErrRequiredFieldsMissing.WithDetails("password")
	}

	return nil
}
