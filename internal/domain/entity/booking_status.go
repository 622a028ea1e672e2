// Package entity contains the core business objects of the project.
package entity

// BookingStatus represents the lifecycle state of a booking.
// It is a closed enumeration: anything outside the three constants below is
// rejected at the boundary rather than written to storage.
type BookingStatus string

const (
	// BookingStatusPending is the initial state, entered only at creation.
	BookingStatusPending BookingStatus = "pending"
	// BookingStatusConfirmed is entered by the confirm transition.
	BookingStatusConfirmed BookingStatus = "confirmed"
	// BookingStatusCancelled is entered by the cancel transition.
	// No transition out of it is exposed.
	BookingStatusCancelled BookingStatus = "cancelled"
)

// String returns the string representation of the BookingStatus.
func (s BookingStatus) String() string {
	return string(s)
}

// IsValid checks if the BookingStatus is a valid value.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	default:
		return false
	}
}
