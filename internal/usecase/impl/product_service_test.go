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

func createTestProductService(t *testing.T) (*repoFixtures, *productService) {
	f := newRepoFixtures(t)
	srv := NewProductService(ProductServiceParams{
		TxManager:   f.txManager,
		ProductRepo: f.productRepo,
		Logger:      newDiscardLogger(),
	}).(*productService)

	return f, srv
}

func TestProductService_Save_Success(t *testing.T) {
	f, srv := createTestProductService(t)
	ctx := context.Background()
	product := &entity.Product{Name: "Sourdough", Price: 650}

	f.expectTx()
	f.productRepo.EXPECT().Save(ctx, product).RunAndReturn(func(_ context.Context, p *entity.Product) error {
		p.ID = 7
		p.Version = 1

		return nil
	})

	saved, err := srv.Save(ctx, nil, product)

	require.NoError(t, err)
	assert.Equal(t, int64(7), saved.ID)
	assert.Equal(t, 1, saved.Version)
}

func TestProductService_Save_Validation(t *testing.T) {
	tests := []struct {
		name    string
		product *entity.Product
		details string
	}{
		{name: "nil product", product: nil},
		{name: "blank name", product: &entity.Product{Name: "   ", Price: 100}, details: "name"},
		{name: "negative price", product: &entity.Product{Name: "Bun", Price: -1}, details: "price"},
		{name: "price above max", product: &entity.Product{Name: "Bun", Price: entity.MaxProductPrice + 1}, details: "price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, srv := createTestProductService(t)

			_, err := srv.Save(context.Background(), nil, tt.product)

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrRequiredFieldsMissing)
			appErr, ok := domainerrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, tt.details, appErr.Details())
		})
	}
}

func TestProductService_Save_DuplicateName(t *testing.T) {
	f, srv := createTestProductService(t)
	ctx := context.Background()
	product := &entity.Product{Name: "Sourdough", Price: 650}

	f.expectTx()
	f.productRepo.EXPECT().Save(ctx, product).Return(errors.Wrap(repository.ErrDuplicate, "products.name"))

	_, err := srv.Save(ctx, nil, product)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateProductName)
	appErr, ok := domainerrors.AsAppError(err)
	require.True(t, ok)
	assert.True(t, appErr.Persistent())
}

func TestProductService_Save_VersionConflict(t *testing.T) {
	f, srv := createTestProductService(t)
	ctx := context.Background()
	product := &entity.Product{ID: 3, Version: 2, Name: "Rye", Price: 500}

	f.expectTx()
	f.productRepo.EXPECT().Save(ctx, product).Return(errors.WithStack(repository.ErrVersionConflict))

	_, err := srv.Save(ctx, nil, product)

	assert.ErrorIs(t, err, domainerrors.ErrConcurrentUpdate)
}

func TestProductService_Delete_Referenced(t *testing.T) {
	f, srv := createTestProductService(t)
	ctx := context.Background()

	f.expectTx()
	f.productRepo.EXPECT().FindByID(ctx, int64(3)).Return(&entity.Product{ID: 3, Name: "Rye"}, nil)
	f.productRepo.EXPECT().Delete(ctx, int64(3)).Return(errors.WithStack(repository.ErrReferenced))

	err := srv.Delete(ctx, nil, 3)

	assert.ErrorIs(t, err, domainerrors.ErrOperationPreventedByReferences)
}

func TestProductService_Delete_NotFound(t *testing.T) {
	f, srv := createTestProductService(t)
	ctx := context.Background()

	f.expectTx()
	f.productRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, errors.WithStack(repository.ErrNotFound))

	err := srv.Delete(ctx, nil, 99)

	assert.ErrorIs(t, err, domainerrors.ErrEntityNotFound)
}

func TestProductService_Load_NotFound(t *testing.T) {
	f, srv := createTestProductService(t)
	ctx := context.Background()

	f.productRepo.EXPECT().FindByID(ctx, int64(5)).Return(nil, repository.ErrNotFound)

	_, err := srv.Load(ctx, 5)

	assert.ErrorIs(t, err, domainerrors.ErrEntityNotFound)
}

func TestProductService_FindAnyMatching_NormalizesPage(t *testing.T) {
	f, srv := createTestProductService(t)
	ctx := context.Background()
	want := repository.NewPage([]*entity.Product{{ID: 1, Name: "Baguette"}}, 1, repository.PageRequest{})

	f.productRepo.EXPECT().
		FindAnyMatching(ctx, "bag", repository.PageRequest{Page: 0, Size: repository.DefaultPageSize}).
		Return(want, nil)

	got, err := srv.FindAnyMatching(ctx, "bag", repository.PageRequest{Page: -2})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestProductService_CreateNew(t *testing.T) {
	_, srv := createTestProductService(t)

	product := srv.CreateNew(context.Background(), nil)

	require.NotNil(t, product)
	assert.True(t, product.IsNew())
}
