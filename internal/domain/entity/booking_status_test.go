package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusIsValid(t *testing.T) {
	assert.True(t, BookingStatusPending.IsValid())
	assert.True(t, BookingStatusConfirmed.IsValid())
	assert.True(t, BookingStatusCancelled.IsValid())

	// The enumeration is closed; arbitrary strings never pass.
	assert.False(t, BookingStatus("approved").IsValid())
	assert.False(t, BookingStatus("PENDING").IsValid())
	assert.False(t, BookingStatus("").IsValid())
}

func TestBookingIsTerminal(t *testing.T) {
	assert.False(t, (&Booking{Status: BookingStatusPending}).IsTerminal())
	assert.False(t, (&Booking{Status: BookingStatusConfirmed}).IsTerminal())
	assert.True(t, (&Booking{Status: BookingStatusCancelled}).IsTerminal())
}
