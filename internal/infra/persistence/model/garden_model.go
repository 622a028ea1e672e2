package model

import (
	"time"

	"github.com/google/uuid"
)

// GardenModel mirrors the 'gardens' table.
type GardenModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name              string    `gorm:"type:varchar(255);not null"`
	Description       string    `gorm:"type:text;not null"`
	Address           string    `gorm:"type:varchar(255);not null"`
	Latitude          float64
	Longitude         float64
	TotalPlots        int     `gorm:"not null;default:1"`
	AvailablePlots    int     `gorm:"not null;default:1"`
	BasePricePerMonth float64 `gorm:"type:numeric(10,2);not null"`
	SizeSqm           float64 `gorm:"type:numeric(10,2)"`
	OwnerID           uuid.UUID
	Amenities         []GardenAmenityModel `gorm:"foreignKey:GardenID;constraint:OnDelete:CASCADE"`
	Images            []GardenImageModel   `gorm:"foreignKey:GardenID;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (GardenModel) TableName() string {
	return "gardens"
}

// GardenAmenityModel mirrors the 'garden_amenities' element table.
type GardenAmenityModel struct {
	GardenID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Amenity  string    `gorm:"type:varchar(100);primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (GardenAmenityModel) TableName() string {
	return "garden_amenities"
}

// GardenImageModel mirrors the 'garden_images' element table.
type GardenImageModel struct {
	GardenID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ImageURL string    `gorm:"type:text;primaryKey;column:image_url"`
}

// TableName explicitly sets the table name for GORM.
func (GardenImageModel) TableName() string {
	return "garden_images"
}
