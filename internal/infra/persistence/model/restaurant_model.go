package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RestaurantModel mirrors the 'restaurants' table. OwnerID references users.id.
type RestaurantModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Name         string    `gorm:"type:varchar(200);not null"`
	Description  string    `gorm:"type:varchar(1000)"`
	Address      string    `gorm:"type:varchar(500);not null"`
	Latitude     *float64
	Longitude    *float64
	Phone        string `gorm:"type:varchar(20)"`
	OpensAt      *datatypes.Time
	ClosesAt     *datatypes.Time
	AveragePrice *float64
	Category     string    `gorm:"type:varchar(100);index"`
	MenuURL      string    `gorm:"type:varchar(500)"`
	RegisteredAt time.Time `gorm:"not null"`
	Active       bool      `gorm:"not null;index"`
	UpdatedAt    time.Time

	Photos []PhotoModel `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}
