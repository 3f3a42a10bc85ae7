package postgres

import (
	"context"
	"testing"
	"time"

	"bakery/internal/domain/entity"
	"bakery/internal/domain/repository"
	"bakery/internal/infra/persistence/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%anna%", likePattern("anna"))
	assert.Equal(t, `%50\%\_off\\%`, likePattern(`50%_off\`))
}

func TestToOrderDomain(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	userID := int64(3)
	stamp := time.Date(2024, time.March, 12, 8, 30, 0, 0, time.UTC)

	m := &model.OrderModel{
		ID:               10,
		Version:          2,
		DueDate:          time.Date(2024, time.March, 14, 0, 0, 0, 0, berlin),
		DueTime:          "11:00",
		State:            "READY",
		PickupLocationID: 1,
		CustomerID:       4,
		PickupLocation:   &model.PickupLocationModel{ID: 1, Version: 1, Name: "Store"},
		Customer:         &model.CustomerModel{ID: 4, Version: 1, FullName: "Greta Gluten", PhoneNumber: "555 1234"},
		Items: []*model.OrderItemModel{
			{ID: 20, OrderID: 10, ProductID: 2, Quantity: 3, Product: &model.ProductModel{ID: 2, Name: "Rye", Price: 450}},
		},
		History: []*model.HistoryItemModel{
			{ID: 30, OrderID: 10, NewState: "NEW", Message: "Order placed", Timestamp: stamp, CreatedByID: &userID, CreatedBy: &model.UserModel{ID: 3, Role: "barista"}},
		},
	}

	order := toOrderDomain(m)

	require.NotNil(t, order)
	assert.Equal(t, time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC), order.DueDate)
	assert.Equal(t, entity.OrderStateReady, order.State)
	assert.Equal(t, "Store", order.PickupLocation.Name)
	assert.Equal(t, "Greta Gluten", order.Customer.FullName)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 1350, order.Items[0].TotalPrice())
	require.Len(t, order.History, 1)
	assert.Equal(t, entity.RoleBarista, order.History[0].CreatedBy.Role)
	assert.Equal(t, stamp, order.History[0].Timestamp)
}

func TestFromHistoryItemDomain(t *testing.T) {
	withUser := fromHistoryItemDomain(&entity.HistoryItem{NewState: entity.OrderStateNew, Message: "hi", CreatedBy: &entity.User{ID: 8}})
	require.NotNil(t, withUser.CreatedByID)
	assert.Equal(t, int64(8), *withUser.CreatedByID)
	assert.Equal(t, "NEW", withUser.NewState)

	anonymous := fromHistoryItemDomain(&entity.HistoryItem{Message: "imported"})
	assert.Nil(t, anonymous.CreatedByID)
}

func TestFromOrderItemDomain(t *testing.T) {
	m := fromOrderItemDomain(&entity.OrderItem{ID: 5, Product: &entity.Product{ID: 2}, Quantity: 4, Comment: "seeded"})

	assert.Equal(t, int64(2), m.ProductID)
	assert.Equal(t, 4, m.Quantity)
	assert.Equal(t, "seeded", m.Comment)
}

func TestStateNames(t *testing.T) {
	assert.Equal(t, []string{"NEW", "CONFIRMED", "PROBLEM"}, stateNames(entity.NotAvailableStates()))
}

func TestUserMappingRoundTripKeepsLockedFlag(t *testing.T) {
	user := &entity.User{ID: 1, Version: 3, Email: "a@b.c", Role: entity.RoleAdmin, Locked: true}

	assert.Equal(t, user, toUserDomain(fromUserDomain(user)))
}

func TestOrderRepository_SaveVersionCheck(t *testing.T) {
	tests := []struct {
		name    string
		stored  int64
		wantErr error
	}{
		{name: "stale version", stored: 1, wantErr: repository.ErrVersionConflict},
		{name: "missing order", stored: 0, wantErr: repository.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewOrderRepository(db)

			mock.ExpectExec(`UPDATE "orders" SET .+ WHERE id = \$\d+ AND version = \$\d+`).
				WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectQuery(`SELECT count\(\*\) FROM "orders" WHERE id = \$1`).
				WithArgs(10).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.stored))

			order := &entity.Order{
				ID:             10,
				Version:        2,
				DueDate:        time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC),
				DueTime:        "11:00",
				State:          entity.OrderStateReady,
				PickupLocation: &entity.PickupLocation{ID: 1},
				Customer:       &entity.Customer{FullName: "Greta Gluten", PhoneNumber: "555 1234"},
			}

			err := repo.Save(context.Background(), order)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 2, order.Version)
			// Neither the customer nor the items are touched after a failed version check.
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
