// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Garden is a rentable plot listing, owned by a User via an id reference.
// The booking state machine treats gardens as opaque identifiers; plot
// availability is never adjusted by booking transitions.
type Garden struct {
	ID                uuid.UUID
	Name              string
	Description       string
	Address           string
	Latitude          float64
	Longitude         float64
	TotalPlots        int
	AvailablePlots    int
	BasePricePerMonth float64
	SizeSqm           float64
	OwnerID           uuid.UUID
	Amenities         []string
	Images            []string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
