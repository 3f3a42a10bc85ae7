package impl

import (
	"context"
	"testing"
	"time"

	"bakery/internal/domain/dashboard"
	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderService_GetDashboardData(t *testing.T) {
	f, srv := createTestOrderService(t)
	ctx := context.Background()
	today := date(2024, time.March, 13)
	tomorrow := date(2024, time.March, 14)
	delivered := entity.OrderStateDelivered

	f.orderRepo.EXPECT().CountByDueDate(ctx, today).Return(int64(8), nil)
	f.orderRepo.EXPECT().CountByDueDate(ctx, tomorrow).Return(int64(5), nil)
	f.orderRepo.EXPECT().CountByDueDateAndStates(ctx, today, []entity.OrderState{delivered}).Return(int64(3), nil)
	f.orderRepo.EXPECT().CountByDueDateAndStates(ctx, today, entity.NotAvailableStates()).Return(int64(2), nil)
	f.orderRepo.EXPECT().CountByState(ctx, entity.OrderStateNew).Return(int64(4), nil)
	f.orderRepo.EXPECT().CountPerDay(ctx, delivered, 2024, 2).Return([]dashboard.Point{{Index: 1, Value: 6}, {Index: 29, Value: 2}}, nil)
	f.orderRepo.EXPECT().CountPerMonth(ctx, delivered, 2024).Return([]dashboard.Point{{Index: 2, Value: 40}}, nil)
	f.orderRepo.EXPECT().SumPerMonth(ctx, delivered, 2022, 2024).Return([]dashboard.MonthlySum{
		{Year: 2024, Month: 1, Total: 1500},
		{Year: 2024, Month: 2, Total: 999},
		{Year: 2022, Month: 12, Total: 700},
	}, nil)
	f.orderRepo.EXPECT().QuantityPerProduct(ctx, delivered, 2024, 2).Return(nil, nil)

	data, err := srv.GetDashboardData(ctx, 2, 2024)

	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryStats{
		DueToday:          8,
		DueTomorrow:       5,
		DeliveredToday:    3,
		NotAvailableToday: 2,
		NewOrders:         4,
	}, data.DeliveryStats)

	require.Len(t, data.DeliveriesThisMonth, 29)
	assert.Equal(t, int64(6), *data.DeliveriesThisMonth[0])
	assert.Equal(t, int64(2), *data.DeliveriesThisMonth[28])
	assert.Nil(t, data.DeliveriesThisMonth[1])

	require.Len(t, data.DeliveriesThisYear, 12)
	assert.Equal(t, int64(40), *data.DeliveriesThisYear[1])

	assert.Equal(t, int64(1500), *data.SalesPerMonth[0][0])
	assert.Nil(t, data.SalesPerMonth[0][1], "rendered month stays empty")
	assert.Equal(t, int64(700), *data.SalesPerMonth[2][11])

	assert.NotNil(t, data.ProductDeliveries)
	assert.Empty(t, data.ProductDeliveries)
}

func TestOrderService_GetDashboardData_InvalidMonth(t *testing.T) {
	_, srv := createTestOrderService(t)

	_, err := srv.GetDashboardData(context.Background(), 13, 2024)

	assert.ErrorIs(t, err, domainerrors.ErrRequiredFieldsMissing)
}

func TestOrderService_GetDashboardData_RepositoryFailure(t *testing.T) {
	f, srv := createTestOrderService(t)
	ctx := context.Background()

	f.orderRepo.EXPECT().CountByDueDate(ctx, date(2024, time.March, 13)).Return(int64(0), errors.New("connection reset"))

	_, err := srv.GetDashboardData(ctx, 3, 2024)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "due today")
}
