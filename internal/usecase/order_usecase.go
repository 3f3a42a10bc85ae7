package usecase

import (
	"context"
	"time"

	"bakery/internal/domain/entity"
	"bakery/internal/domain/repository"
	"bakery/internal/domain/storefront"
)

// --- Input DTOs ---

// CustomerInput is the customer part of an order edit.
type CustomerInput struct {
	FullName    string
	PhoneNumber string
	Details     string
}

// OrderItemInput is one product line of an order edit.
type OrderItemInput struct {
	ProductID int64
	Quantity  int
	Comment   string
}

// OrderInput carries a full order edit. A zero ID creates a new order.
type OrderInput struct {
	ID               int64
	Version          int
	DueDate          time.Time
	DueTime          string
	PickupLocationID int64
	State            entity.OrderState // Optional; empty keeps the current state.
	Customer         CustomerInput
	Items            []OrderItemInput
}

// StateChangeInput moves an order to a new state. Version, when set, must
// match the stored version.
type StateChangeInput struct {
	State   entity.OrderState
	Version *int
}

// CommentInput appends a free text history entry.
type CommentInput struct {
	Message string
	Version *int
}

// StorefrontQuery selects one page of the storefront list.
type StorefrontQuery struct {
	Filter       string
	ShowPrevious bool
	Page         repository.PageRequest
}

// --- Output DTOs ---

// StorefrontOrder is an order with the date band it belongs to.
type StorefrontOrder struct {
	Order        *entity.Order
	Header       *storefront.Header
	FirstInGroup bool
}

// StorefrontPage is one page of the storefront list.
type StorefrontPage struct {
	Items []*StorefrontOrder
	Total int64
	Page  int
	Size  int
}

// OrderUsecase covers taking, editing and tracking orders.
type OrderUsecase interface {
	// CreateNew returns an unsaved order due today at the default due time.
	CreateNew(ctx context.Context, currentUser *entity.User) *entity.Order

	Load(ctx context.Context, id int64) (*entity.Order, error)

	// Save creates or updates an order from input.
	Save(ctx context.Context, currentUser *entity.User, input *OrderInput) (*entity.Order, error)

	Delete(ctx context.Context, currentUser *entity.User, id int64) error

	Count(ctx context.Context) (int64, error)

	AddComment(ctx context.Context, currentUser *entity.User, id int64, input *CommentInput) (*entity.Order, error)

	ChangeState(ctx context.Context, currentUser *entity.User, id int64, input *StateChangeInput) (*entity.Order, error)

	// FindAnyMatchingAfterDueDate lists orders whose customer name contains
	// filter and, when after is set, that are due after it.
	FindAnyMatchingAfterDueDate(ctx context.Context, filter string, after *time.Time, page repository.PageRequest) (*repository.Page[*entity.Order], error)

	CountAnyMatchingAfterDueDate(ctx context.Context, filter string, after *time.Time) (int64, error)

	// FindAnyMatchingStartingToday lists orders due today or later.
	FindAnyMatchingStartingToday(ctx context.Context, page repository.PageRequest) (*repository.Page[*entity.Order], error)

	// Storefront lists orders grouped into date bands.
	Storefront(ctx context.Context, query *StorefrontQuery) (*StorefrontPage, error)

	GetDashboardData(ctx context.Context, month, year int) (*entity.DashboardData, error)
}
