package model

import (
	"time"

	"github.com/google/uuid"
)

// BookingModel mirrors the 'bookings' table. Status carries a CHECK
// constraint so nothing outside the closed enumeration reaches the table
// even through raw SQL.
type BookingModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	GardenID       uuid.UUID `gorm:"type:uuid;not null;index"`
	StartDate      time.Time `gorm:"type:date;not null"`
	EndDate        time.Time `gorm:"type:date;not null"`
	DurationMonths int       `gorm:"not null"`
	TotalPrice     float64   `gorm:"type:numeric(10,2);not null"`
	Status         string    `gorm:"type:varchar(16);not null;default:'pending';check:status IN ('pending','confirmed','cancelled')"`
	PaymentMethod  string    `gorm:"type:varchar(100)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookingModel) TableName() string {
	return "bookings"
}
