package impl

import (
	"context"
	"testing"

	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/domain/repository"
	"bakery/internal/errors"
	mockService "bakery/internal/mocks/service"
	"bakery/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userFixtures struct {
	*repoFixtures
	hasher *mockService.MockPasswordHasher
}

func createTestUserService(t *testing.T) (*userFixtures, *userService) {
	f := &userFixtures{
		repoFixtures: newRepoFixtures(t),
		hasher:       mockService.NewMockPasswordHasher(t),
	}
	srv := NewUserService(UserServiceParams{
		TxManager: f.txManager,
		UserRepo:  f.userRepo,
		Hasher:    f.hasher,
		Logger:    newDiscardLogger(),
	}).(*userService)

	return f, srv
}

func TestUserService_SaveUser_CreatesWithHashedPassword(t *testing.T) {
	f, srv := createTestUserService(t)
	ctx := context.Background()
	admin := &entity.User{ID: 1, Role: entity.RoleAdmin}

	f.hasher.EXPECT().Hash("secret").Return("hashed-secret", nil)
	f.expectTx()
	f.userRepo.EXPECT().
		Save(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "anna@bakery.test" && u.PasswordHash == "hashed-secret" && u.Role == entity.RoleBaker
		})).
		Return(nil)

	user, err := srv.SaveUser(ctx, admin, &usecase.UserInput{
		Email:     "  Anna@Bakery.TEST ",
		FirstName: "Anna",
		LastName:  "Baker",
		Role:      entity.RoleBaker,
		Password:  "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, "anna@bakery.test", user.Email)
}

func TestUserService_SaveUser_NewUserNeedsPassword(t *testing.T) {
	_, srv := createTestUserService(t)

	_, err := srv.SaveUser(context.Background(), nil, &usecase.UserInput{
		Email:     "anna@bakery.test",
		FirstName: "Anna",
		LastName:  "Baker",
		Role:      entity.RoleBaker,
	})

	assert.ErrorIs(t, err, domainerrors.ErrRequiredFieldsMissing)
}

func TestUserService_SaveUser_PasswordTooShort(t *testing.T) {
	_, srv := createTestUserService(t)

	_, err := srv.SaveUser(context.Background(), nil, &usecase.UserInput{
		Email:     "anna@bakery.test",
		FirstName: "Anna",
		LastName:  "Baker",
		Role:      entity.RoleBaker,
		Password:  "abc",
	})

	require.Error(t, err)
	appErr, ok := domainerrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "password", appErr.Details())
}

func TestUserService_SaveUser_HashFailure(t *testing.T) {
	f, srv := createTestUserService(t)

	f.hasher.EXPECT().Hash("secret").Return("", errors.New("cost out of range"))

	_, err := srv.SaveUser(context.Background(), nil, &usecase.UserInput{
		Email:     "anna@bakery.test",
		FirstName: "Anna",
		LastName:  "Baker",
		Role:      entity.RoleBaker,
		Password:  "secret",
	})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestUserService_SaveUser_KeepsStoredHash(t *testing.T) {
	f, srv := createTestUserService(t)
	ctx := context.Background()
	stored := &entity.User{ID: 4, Version: 2, Email: "ben@bakery.test", PasswordHash: "stored-hash", Role: entity.RoleBarista}

	f.expectTx()
	f.userRepo.EXPECT().FindByID(ctx, int64(4)).Return(stored, nil)
	f.userRepo.EXPECT().
		Save(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.ID == 4 && u.PasswordHash == "stored-hash" && u.FirstName == "Benjamin"
		})).
		Return(nil)

	user, err := srv.SaveUser(ctx, nil, &usecase.UserInput{
		ID:        4,
		Version:   2,
		Email:     "ben@bakery.test",
		FirstName: "Benjamin",
		LastName:  "Brot",
		Role:      entity.RoleBarista,
	})

	require.NoError(t, err)
	assert.Equal(t, "stored-hash", user.PasswordHash)
}

func TestUserService_Save_LockedUser(t *testing.T) {
	f, srv := createTestUserService(t)
	ctx := context.Background()
	stored := &entity.User{ID: 4, Email: "ben@bakery.test", PasswordHash: "h", Role: entity.RoleBarista, Locked: true}

	f.expectTx()
	f.userRepo.EXPECT().FindByID(ctx, int64(4)).Return(stored, nil)

	_, err := srv.Save(ctx, nil, &entity.User{
		ID:        4,
		Email:     "ben@bakery.test",
		FirstName: "Ben",
		LastName:  "Brot",
		Role:      entity.RoleBarista,
	})

	assert.ErrorIs(t, err, domainerrors.ErrModifyLockedUser)
}

func TestUserService_Save_DuplicateEmail(t *testing.T) {
	f, srv := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{Email: "anna@bakery.test", PasswordHash: "h", FirstName: "Anna", LastName: "Baker", Role: entity.RoleBaker}

	f.expectTx()
	f.userRepo.EXPECT().Save(ctx, user).Return(errors.WithStack(repository.ErrDuplicate))

	_, err := srv.Save(ctx, nil, user)

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateUserEmail)
}

func TestUserService_Save_InvalidRole(t *testing.T) {
	_, srv := createTestUserService(t)

	_, err := srv.Save(context.Background(), nil, &entity.User{
		Email:        "anna@bakery.test",
		PasswordHash: "h",
		FirstName:    "Anna",
		LastName:     "Baker",
		Role:         entity.Role("OWNER"),
	})

	require.Error(t, err)
	appErr, ok := domainerrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "role", appErr.Details())
}

func TestUserService_Delete_OwnAccount(t *testing.T) {
	f, srv := createTestUserService(t)
	ctx := context.Background()
	admin := &entity.User{ID: 1, Role: entity.RoleAdmin}

	f.expectTx()
	f.userRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.User{ID: 1, Role: entity.RoleAdmin}, nil)

	err := srv.Delete(ctx, admin, 1)

	assert.ErrorIs(t, err, domainerrors.ErrDeleteOwnAccount)
}

func TestUserService_Delete_LockedUser(t *testing.T) {
	f, srv := createTestUserService(t)
	ctx := context.Background()
	admin := &entity.User{ID: 1, Role: entity.RoleAdmin}

	f.expectTx()
	f.userRepo.EXPECT().FindByID(ctx, int64(2)).Return(&entity.User{ID: 2, Locked: true}, nil)

	err := srv.Delete(ctx, admin, 2)

	assert.ErrorIs(t, err, domainerrors.ErrModifyLockedUser)
}

func TestUserService_Delete_Success(t *testing.T) {
	f, srv := createTestUserService(t)
	ctx := context.Background()
	admin := &entity.User{ID: 1, Role: entity.RoleAdmin}

	f.expectTx()
	f.userRepo.EXPECT().FindByID(ctx, int64(2)).Return(&entity.User{ID: 2}, nil)
	f.userRepo.EXPECT().Delete(ctx, int64(2)).Return(nil)

	require.NoError(t, srv.Delete(ctx, admin, 2))
}
