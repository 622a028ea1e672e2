package service

import (
	"github.com/google/uuid"

	"gardenspace/internal/domain/entity"
)

// QRCodeService defines the interface for generating and parsing
// booking check-in QR codes.
type QRCodeService interface {
	// GenerateBookingQR renders a PNG QR code for on-site booking check-in.
	GenerateBookingQR(booking *entity.Booking) ([]byte, error)

	// ParseBookingQR parses scanned QR code data and returns the booking ID.
	ParseBookingQR(qrData string) (uuid.UUID, error)
}
