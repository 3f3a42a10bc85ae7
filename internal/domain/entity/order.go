package entity

import "time"

const (
	// MaxTextLength bounds names, comments, history messages and details.
	MaxTextLength = 255
	// MaxPhoneLength bounds customer phone numbers.
	MaxPhoneLength = 20

	// DueDateLayout is the wire and storage format of Order.DueDate.
	DueDateLayout = "2006-01-02"
	// DueTimeLayout is the wire and storage format of Order.DueTime.
	DueTimeLayout = "15:04"

	orderPlacedMessage = "Order placed"
)

// Order is the aggregate root for a customer order. It owns its customer,
// its line items and its history.
type Order struct {
	ID             int64
	Version        int
	DueDate        time.Time // Calendar date, time of day is zero.
	DueTime        string    // "HH:MM".
	PickupLocation *PickupLocation
	Customer       *Customer
	Items          []*OrderItem
	State          OrderState
	History        []*HistoryItem // Append-only.
}

// OrderItem is one product line of an order.
type OrderItem struct {
	ID       int64
	Product  *Product
	Quantity int
	Comment  string
}

// HistoryItem records something that happened to an order.
type HistoryItem struct {
	ID        int64
	NewState  OrderState // State the order was in when the entry was written.
	Message   string
	Timestamp time.Time
	CreatedBy *User
}

// NewOrder returns an order in state NEW with an empty customer, no items and
// a single "Order placed" history entry.
func NewOrder(createdBy *User) *Order {
	order := &Order{
		State:    OrderStateNew,
		Customer: &Customer{},
		Items:    make([]*OrderItem, 0),
		History:  make([]*HistoryItem, 0, 1),
	}
	order.AddHistoryItem(createdBy, orderPlacedMessage)

	return order
}

// NewOrderItem returns a line item with the default quantity of one.
func NewOrderItem(product *Product) *OrderItem {
	return &OrderItem{Product: product, Quantity: 1}
}

// NewHistoryItem returns an entry stamped with the current time.
func NewHistoryItem(createdBy *User, message string) *HistoryItem {
	return &HistoryItem{
		Message:   message,
		Timestamp: time.Now(),
		CreatedBy: createdBy,
	}
}

// AddHistoryItem appends an entry tagged with the current state.
func (o *Order) AddHistoryItem(createdBy *User, message string) {
	item := NewHistoryItem(createdBy, message)
	item.NewState = o.State
	o.History = append(o.History, item)
}

// ChangeState sets the state. A history entry "Order <STATE>" is appended
// only when both the old and the new state are set and they differ.
func (o *Order) ChangeState(user *User, state OrderState) {
	record := o.State != state && o.State != "" && state != ""
	o.State = state
	if record {
		o.AddHistoryItem(user, "Order "+state.String())
	}
}

// TotalPrice sums the item totals in cents.
func (o *Order) TotalPrice() int {
	total := 0
	for _, item := range o.Items {
		total += item.TotalPrice()
	}

	return total
}

// IsNew reports whether the order has not been persisted yet.
func (o *Order) IsNew() bool {
	return o.ID == 0
}

// TotalPrice is quantity times product price, zero when either is missing.
func (i *OrderItem) TotalPrice() int {
	if i == nil || i.Product == nil || i.Quantity == 0 {
		return 0
	}

	return i.Quantity * i.Product.Price
}
