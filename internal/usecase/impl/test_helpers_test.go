package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bakery/internal/domain/repository"
	mockRepo "bakery/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// repoFixtures bundles the mocks handed out by a transaction.
type repoFixtures struct {
	txManager      *mockRepo.MockTransactionManager
	factory        *mockRepo.MockRepositoryFactory
	orderRepo      *mockRepo.MockOrderRepository
	productRepo    *mockRepo.MockProductRepository
	userRepo       *mockRepo.MockUserRepository
	pickupLocation *mockRepo.MockPickupLocationRepository
}

func newRepoFixtures(t *testing.T) *repoFixtures {
	f := &repoFixtures{
		txManager:      mockRepo.NewMockTransactionManager(t),
		factory:        mockRepo.NewMockRepositoryFactory(t),
		orderRepo:      mockRepo.NewMockOrderRepository(t),
		productRepo:    mockRepo.NewMockProductRepository(t),
		userRepo:       mockRepo.NewMockUserRepository(t),
		pickupLocation: mockRepo.NewMockPickupLocationRepository(t),
	}

	f.factory.EXPECT().OrderRepo().Return(f.orderRepo).Maybe()
	f.factory.EXPECT().ProductRepo().Return(f.productRepo).Maybe()
	f.factory.EXPECT().UserRepo().Return(f.userRepo).Maybe()
	f.factory.EXPECT().PickupLocationRepo().Return(f.pickupLocation).Maybe()

	return f
}

// expectTx expects one transaction whose body runs against the fixture factory.
func (f *repoFixtures) expectTx() {
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		}).
		Once()
}
