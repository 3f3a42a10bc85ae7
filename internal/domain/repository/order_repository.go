package repository

import (
	"context"
	"time"

	"bakery/internal/domain/dashboard"
	"bakery/internal/domain/entity"
)

// OrderFilter narrows order listings. Zero values do not filter.
type OrderFilter struct {
	// CustomerName is matched as a case-insensitive substring of the customer's full name.
	CustomerName string
	// DueAfter keeps orders due strictly after this date.
	DueAfter *time.Time
	// DueFrom keeps orders due on or after this date.
	DueFrom *time.Time
}

// OrderRepository stores orders together with their customer, items and history.
// Listings are sorted by due date, due time and id unless the page asks otherwise.
type OrderRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Order, error)

	FindAnyMatching(ctx context.Context, filter OrderFilter, page PageRequest) (*Page[*entity.Order], error)

	CountAnyMatching(ctx context.Context, filter OrderFilter) (int64, error)

	Count(ctx context.Context) (int64, error)

	Save(ctx context.Context, order *entity.Order) error

	Delete(ctx context.Context, id int64) error

	CountByDueDate(ctx context.Context, dueDate time.Time) (int64, error)

	CountByDueDateAndStates(ctx context.Context, dueDate time.Time, states []entity.OrderState) (int64, error)

	CountByState(ctx context.Context, state entity.OrderState) (int64, error)

	// CountPerMonth returns one point per month (1-12) of year.
	CountPerMonth(ctx context.Context, state entity.OrderState, year int) ([]dashboard.Point, error)

	// CountPerDay returns one point per day of month.
	CountPerDay(ctx context.Context, state entity.OrderState, year, month int) ([]dashboard.Point, error)

	// SumPerMonth returns sales sums per month for years fromYear to toYear inclusive.
	SumPerMonth(ctx context.Context, state entity.OrderState, fromYear, toYear int) ([]dashboard.MonthlySum, error)

	// QuantityPerProduct returns delivered quantities per product for one month.
	QuantityPerProduct(ctx context.Context, state entity.OrderState, year, month int) ([]*entity.ProductDelivery, error)
}
