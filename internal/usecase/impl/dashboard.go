package impl

import (
	"context"
	"time"

	"bakery/internal/domain/dashboard"
	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/errors"
)

// GetDashboardData collects the delivery statistics of month in year.
func (srv *orderService) GetDashboardData(ctx context.Context, month, year int) (*entity.DashboardData, error) {
	if month < 1 || month > 12 {
		return nil, domainerrors.ErrRequiredFieldsMissing.WithDetails("month")
	}
	if year < 1 {
		return nil, domainerrors.ErrRequiredFieldsMissing.WithDetails("year")
	}

	stats, err := srv.deliveryStats(ctx)
	if err != nil {
		return nil, err
	}

	delivered := entity.OrderStateDelivered

	perDay, err := srv.orderRepo.CountPerDay(ctx, delivered, year, month)
	if err != nil {
		return nil, translateRepoError(errors.Wrap(err, "count per day"), nil)
	}
	perMonth, err := srv.orderRepo.CountPerMonth(ctx, delivered, year)
	if err != nil {
		return nil, translateRepoError(errors.Wrap(err, "count per month"), nil)
	}
	sums, err := srv.orderRepo.SumPerMonth(ctx, delivered, year-(dashboard.SalesYears-1), year)
	if err != nil {
		return nil, translateRepoError(errors.Wrap(err, "sum per month"), nil)
	}
	products, err := srv.orderRepo.QuantityPerProduct(ctx, delivered, year, month)
	if err != nil {
		return nil, translateRepoError(errors.Wrap(err, "quantity per product"), nil)
	}
	if products == nil {
		products = make([]*entity.ProductDelivery, 0)
	}

	return &entity.DashboardData{
		DeliveryStats:       *stats,
		DeliveriesThisMonth: dashboard.Fill(dashboard.DaysIn(year, month), perDay),
		DeliveriesThisYear:  dashboard.Fill(12, perMonth),
		SalesPerMonth:       dashboard.SalesGrid(year, month, sums),
		ProductDeliveries:   products,
	}, nil
}

func (srv *orderService) deliveryStats(ctx context.Context) (*entity.DeliveryStats, error) {
	today := srv.today()
	tomorrow := today.Add(24 * time.Hour)

	var stats entity.DeliveryStats
	var err error

	if stats.DueToday, err = srv.orderRepo.CountByDueDate(ctx, today); err != nil {
		return nil, translateRepoError(errors.Wrap(err, "due today"), nil)
	}
	if stats.DueTomorrow, err = srv.orderRepo.CountByDueDate(ctx, tomorrow); err != nil {
		return nil, translateRepoError(errors.Wrap(err, "due tomorrow"), nil)
	}
	if stats.DeliveredToday, err = srv.orderRepo.CountByDueDateAndStates(ctx, today, []entity.OrderState{entity.OrderStateDelivered}); err != nil {
		return nil, translateRepoError(errors.Wrap(err, "delivered today"), nil)
	}
	if stats.NotAvailableToday, err = srv.orderRepo.CountByDueDateAndStates(ctx, today, entity.NotAvailableStates()); err != nil {
		return nil, translateRepoError(errors.Wrap(err, "not available today"), nil)
	}
	if stats.NewOrders, err = srv.orderRepo.CountByState(ctx, entity.OrderStateNew); err != nil {
		return nil, translateRepoError(errors.Wrap(err, "new orders"), nil)
	}

	return &stats, nil
}
