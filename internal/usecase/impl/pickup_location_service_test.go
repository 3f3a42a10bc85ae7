package impl

import (
	"context"
	"testing"

	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/domain/repository"
	"bakery/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPickupLocationService(t *testing.T) (*repoFixtures, *pickupLocationService) {
	f := newRepoFixtures(t)
	srv := NewPickupLocationService(PickupLocationServiceParams{
		TxManager:          f.txManager,
		PickupLocationRepo: f.pickupLocation,
		Logger:             newDiscardLogger(),
	}).(*pickupLocationService)

	return f, srv
}

func TestPickupLocationService_GetDefault(t *testing.T) {
	f, srv := createTestPickupLocationService(t)
	ctx := context.Background()
	store := &entity.PickupLocation{ID: 1, Name: "Store"}

	f.pickupLocation.EXPECT().
		FindAnyMatching(ctx, "", repository.PageRequest{Page: 0, Size: 1}).
		Return(repository.NewPage([]*entity.PickupLocation{store}, 2, repository.PageRequest{Size: 1}), nil)

	got, err := srv.GetDefault(ctx)

	require.NoError(t, err)
	assert.Same(t, store, got)
}

func TestPickupLocationService_GetDefault_None(t *testing.T) {
	f, srv := createTestPickupLocationService(t)
	ctx := context.Background()

	f.pickupLocation.EXPECT().
		FindAnyMatching(ctx, "", repository.PageRequest{Page: 0, Size: 1}).
		Return(repository.NewPage[*entity.PickupLocation](nil, 0, repository.PageRequest{Size: 1}), nil)

	_, err := srv.GetDefault(ctx)

	assert.ErrorIs(t, err, domainerrors.ErrEntityNotFound)
}

func TestPickupLocationService_Save_DuplicateName(t *testing.T) {
	f, srv := createTestPickupLocationService(t)
	ctx := context.Background()
	location := &entity.PickupLocation{Name: "Bakery"}

	f.expectTx()
	f.pickupLocation.EXPECT().Save(ctx, location).Return(errors.WithStack(repository.ErrDuplicate))

	_, err := srv.Save(ctx, nil, location)

	assert.ErrorIs(t, err, domainerrors.ErrDuplicatePickupLocationName)
	assert.NotErrorIs(t, err, domainerrors.ErrDuplicateProductName)
}

func TestPickupLocationService_Save_RequiresName(t *testing.T) {
	_, srv := createTestPickupLocationService(t)

	_, err := srv.Save(context.Background(), nil, &entity.PickupLocation{})

	assert.ErrorIs(t, err, domainerrors.ErrRequiredFieldsMissing)
}

func TestPickupLocationService_CountAnyMatching(t *testing.T) {
	f, srv := createTestPickupLocationService(t)
	ctx := context.Background()

	f.pickupLocation.EXPECT().CountAnyMatching(ctx, "sto").Return(int64(1), nil)

	count, err := srv.CountAnyMatching(ctx, "sto")

	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
