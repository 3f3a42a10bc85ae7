package handler

import (
	"time"

	"bakery/internal/domain/entity"
	"bakery/internal/domain/storefront"
	"bakery/internal/usecase"
	"bakery/internal/util"
)

// --- Requests ---

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ProductRequest creates or edits a product. Price is a decimal amount like "2.50".
type ProductRequest struct {
	Version int    `json:"version"`
	Name    string `json:"name" validate:"required,max=255"`
	Price   string `json:"price" validate:"required"`
}

// PickupLocationRequest creates or edits a pickup location
type PickupLocationRequest struct {
	Version int    `json:"version"`
	Name    string `json:"name" validate:"required,max=255"`
}

// UserRequest creates or edits a user. An empty password keeps the current one.
type UserRequest struct {
	Version   int    `json:"version"`
	Email     string `json:"email" validate:"required,email,max=255"`
	FirstName string `json:"firstName" validate:"required,max=255"`
	LastName  string `json:"lastName" validate:"required,max=255"`
	Role      string `json:"role" validate:"required,oneof=barista baker admin"`
	Password  string `json:"password" validate:"omitempty,min=4,max=72"`
}

// CustomerRequest is the customer part of an order
type CustomerRequest struct {
	FullName    string `json:"fullName" validate:"required,max=255"`
	PhoneNumber string `json:"phoneNumber" validate:"required,max=20,phone"`
	Details     string `json:"details" validate:"max=255"`
}

// OrderItemRequest is one line of an order
type OrderItemRequest struct {
	ProductID int64  `json:"productId" validate:"required,gt=0"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
	Comment   string `json:"comment" validate:"max=255"`
}

// OrderRequest creates or edits an order
type OrderRequest struct {
	Version          int                `json:"version"`
	DueDate          string             `json:"dueDate" validate:"required,duedate"`
	DueTime          string             `json:"dueTime" validate:"required,duetime"`
	PickupLocationID int64              `json:"pickupLocationId" validate:"required,gt=0"`
	State            string             `json:"state" validate:"omitempty,oneof=NEW CONFIRMED READY DELIVERED PROBLEM CANCELLED"`
	Customer         CustomerRequest    `json:"customer"`
	Items            []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// StateChangeRequest is the body of PUT /orders/:id/state
type StateChangeRequest struct {
	State   string `json:"state" validate:"required,oneof=NEW CONFIRMED READY DELIVERED PROBLEM CANCELLED"`
	Version *int   `json:"version"`
}

// CommentRequest is the body of POST /orders/:id/comments
type CommentRequest struct {
	Message string `json:"message" validate:"required,max=255"`
	Version *int   `json:"version"`
}

func (r *OrderRequest) toInput(id int64) (*usecase.OrderInput, error) {
	dueDate, err := time.Parse(entity.DueDateLayout, r.DueDate)
	if err != nil {
		return nil, err
	}

	items := make([]usecase.OrderItemInput, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, usecase.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Comment:   item.Comment,
		})
	}

	return &usecase.OrderInput{
		ID:               id,
		Version:          r.Version,
		DueDate:          dueDate,
		DueTime:          r.DueTime,
		PickupLocationID: r.PickupLocationID,
		State:            entity.OrderState(r.State),
		Customer: usecase.CustomerInput{
			FullName:    r.Customer.FullName,
			PhoneNumber: r.Customer.PhoneNumber,
			Details:     r.Customer.Details,
		},
		Items: items,
	}, nil
}

// --- Responses ---

// ProductResponse is a product with its price in cents and formatted
type ProductResponse struct {
	ID         int64  `json:"id"`
	Version    int    `json:"version"`
	Name       string `json:"name"`
	Price      string `json:"price"`
	PriceCents int    `json:"priceCents"`
}

// PickupLocationResponse is a pickup location
type PickupLocationResponse struct {
	ID      int64  `json:"id"`
	Version int    `json:"version"`
	Name    string `json:"name"`
}

// UserResponse never carries the password hash
type UserResponse struct {
	ID        int64  `json:"id"`
	Version   int    `json:"version"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	Locked    bool   `json:"locked"`
}

// UserRef is the short form of a user inside an order
type UserRef struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
}

// CustomerResponse is the customer of an order
type CustomerResponse struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Details     string `json:"details,omitempty"`
}

// OrderItemResponse is one line of an order
type OrderItemResponse struct {
	ID         int64            `json:"id"`
	Product    *ProductResponse `json:"product"`
	Quantity   int              `json:"quantity"`
	Comment    string           `json:"comment,omitempty"`
	TotalPrice string           `json:"totalPrice"`
}

// HistoryItemResponse is one history entry of an order
type HistoryItemResponse struct {
	ID        int64     `json:"id"`
	NewState  string    `json:"newState,omitempty"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	CreatedBy *UserRef  `json:"createdBy,omitempty"`
}

// OrderResponse is a full order
type OrderResponse struct {
	ID             int64                   `json:"id"`
	Version        int                     `json:"version"`
	DueDate        string                  `json:"dueDate"`
	DueTime        string                  `json:"dueTime"`
	State          string                  `json:"state"`
	StateName      string                  `json:"stateName"`
	PickupLocation *PickupLocationResponse `json:"pickupLocation,omitempty"`
	Customer       *CustomerResponse       `json:"customer,omitempty"`
	Items          []*OrderItemResponse    `json:"items"`
	History        []*HistoryItemResponse  `json:"history"`
	TotalPrice     string                  `json:"totalPrice"`
	TotalCents     int                     `json:"totalCents"`
}

// StorefrontItemResponse is an order on the storefront with its band header
type StorefrontItemResponse struct {
	Order        *OrderResponse     `json:"order"`
	Header       *storefront.Header `json:"header,omitempty"`
	FirstInGroup bool               `json:"firstInGroup"`
}

func toProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}

	return &ProductResponse{
		ID:         p.ID,
		Version:    p.Version,
		Name:       p.Name,
		Price:      util.FormatPrice(p.Price),
		PriceCents: p.Price,
	}
}

func toPickupLocationResponse(l *entity.PickupLocation) *PickupLocationResponse {
	if l == nil {
		return nil
	}

	return &PickupLocationResponse{ID: l.ID, Version: l.Version, Name: l.Name}
}

func toUserResponse(u *entity.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Version:   u.Version,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role.String(),
		Locked:    u.Locked,
	}
}

func toOrderResponse(o *entity.Order) *OrderResponse {
	resp := &OrderResponse{
		ID:             o.ID,
		Version:        o.Version,
		DueTime:        o.DueTime,
		State:          o.State.String(),
		StateName:      o.State.DisplayName(),
		PickupLocation: toPickupLocationResponse(o.PickupLocation),
		Items:          make([]*OrderItemResponse, 0, len(o.Items)),
		History:        make([]*HistoryItemResponse, 0, len(o.History)),
		TotalPrice:     util.FormatPrice(o.TotalPrice()),
		TotalCents:     o.TotalPrice(),
	}
	if !o.DueDate.IsZero() {
		resp.DueDate = o.DueDate.Format(entity.DueDateLayout)
	}
	if o.Customer != nil {
		resp.Customer = &CustomerResponse{
			FullName:    o.Customer.FullName,
			PhoneNumber: o.Customer.PhoneNumber,
			Details:     o.Customer.Details,
		}
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, &OrderItemResponse{
			ID:         item.ID,
			Product:    toProductResponse(item.Product),
			Quantity:   item.Quantity,
			Comment:    item.Comment,
			TotalPrice: util.FormatPrice(item.TotalPrice()),
		})
	}
	for _, h := range o.History {
		entry := &HistoryItemResponse{
			ID:        h.ID,
			NewState:  h.NewState.String(),
			Message:   h.Message,
			Timestamp: h.Timestamp,
		}
		if h.CreatedBy != nil {
			entry.CreatedBy = &UserRef{ID: h.CreatedBy.ID, FullName: h.CreatedBy.FullName()}
		}
		resp.History = append(resp.History, entry)
	}

	return resp
}

func mapSlice[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}

	return out
}
