// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking is the central entity of the reservation state machine.
// It references its user and garden only by opaque identifiers; neither is
// validated for existence here.
type Booking struct {
	ID             uuid.UUID     // Opaque identifier.
	UserID         uuid.UUID     // Renter reference.
	GardenID       uuid.UUID     // Garden reference.
	StartDate      time.Time     // Calendar date the rental begins.
	EndDate        time.Time     // Calendar date the rental ends. Must be after StartDate.
	DurationMonths int           // Positive month count. Not cross-checked against the date span.
	TotalPrice     float64       // Non-negative total amount.
	Status         BookingStatus // Closed enumeration; see BookingStatus.
	PaymentMethod  string        // Set on confirmation, empty otherwise. A stored label only.
	CreatedAt      time.Time     // Timestamp of creation.
	UpdatedAt      time.Time     // Refreshed on every mutation.
}

// IsTerminal reports whether no further status transition is exposed for
// the booking. Cancelled bookings accept no transition at all; confirmed
// bookings still accept Confirm (payment-method rewrite) and Cancel.
func (b *Booking) IsTerminal() bool {
	return b.Status == BookingStatusCancelled
}
