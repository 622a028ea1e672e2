package service

import (
	"context"
)

// BookingEvent describes a booking lifecycle transition for async consumers.
type BookingEvent struct {
	RequestID     string `json:"request_id,omitempty"` // For distributed tracing
	BookingID     string `json:"booking_id"`
	UserID        string `json:"user_id"`
	GardenID      string `json:"garden_id"`
	Status        string `json:"status"`
	PaymentMethod string `json:"payment_method,omitempty"`
	OccurredAt    string `json:"occurred_at"` // RFC3339 with offset
}

// EventPublisher defines the interface for publishing booking lifecycle
// events to a message queue. Publishing is best effort: the booking state
// machine never fails a transition because a publish failed.
type EventPublisher interface {
	// PublishBookingEvent publishes a booking lifecycle event for async processing
	PublishBookingEvent(ctx context.Context, event *BookingEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
