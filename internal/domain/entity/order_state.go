package entity

import "strings"

// OrderState is the lifecycle stage of an order. The empty value means the
// state is unset.
type OrderState string

const (
	OrderStateNew       OrderState = "NEW"
	OrderStateConfirmed OrderState = "CONFIRMED"
	OrderStateReady     OrderState = "READY"
	OrderStateDelivered OrderState = "DELIVERED"
	OrderStateProblem   OrderState = "PROBLEM"
	OrderStateCancelled OrderState = "CANCELLED"
)

// AllOrderStates lists every state in lifecycle order.
func AllOrderStates() []OrderState {
	return []OrderState{
		OrderStateNew,
		OrderStateConfirmed,
		OrderStateReady,
		OrderStateDelivered,
		OrderStateProblem,
		OrderStateCancelled,
	}
}

// NotAvailableStates are the states in which an order cannot be handed out:
// everything except DELIVERED, READY and CANCELLED.
func NotAvailableStates() []OrderState {
	return []OrderState{OrderStateNew, OrderStateConfirmed, OrderStateProblem}
}

// String returns the raw state name.
func (s OrderState) String() string {
	return string(s)
}

// IsValid reports whether s is one of the known states.
func (s OrderState) IsValid() bool {
	switch s {
	case OrderStateNew, OrderStateConfirmed, OrderStateReady,
		OrderStateDelivered, OrderStateProblem, OrderStateCancelled:
		return true
	default:
		return false
	}
}

// DisplayName returns the capitalised name, e.g. "Confirmed".
func (s OrderState) DisplayName() string {
	if s == "" {
		return ""
	}
	lower := strings.ToLower(string(s))

	return strings.ToUpper(lower[:1]) + lower[1:]
}
