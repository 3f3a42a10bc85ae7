package service

import (
	"context"
	"time"
)

// OrderEventType names what happened to an order.
type OrderEventType string

const (
	OrderEventSaved        OrderEventType = "order.saved"
	OrderEventStateChanged OrderEventType = "order.state_changed"
	OrderEventCommented    OrderEventType = "order.commented"
	OrderEventDeleted      OrderEventType = "order.deleted"
)

// OrderEvent is published after an order change has been committed.
type OrderEvent struct {
	RequestID  string         `json:"request_id,omitempty"` // For distributed tracing
	Type       OrderEventType `json:"type"`
	OrderID    int64          `json:"order_id"`
	State      string         `json:"state,omitempty"`
	Message    string         `json:"message,omitempty"`
	ActorID    int64          `json:"actor_id"`
	DueDate    string         `json:"due_date,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for downstream consumers
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
