package model

import (
	"time"

	"github.com/google/uuid"
)

// PhotoModel mirrors the 'photos' table. RestaurantID references restaurants.id.
type PhotoModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index:idx_photos_restaurant_cover"`
	URL          string    `gorm:"type:varchar(500);not null"`
	Description  string    `gorm:"type:varchar(300)"`
	IsCover      bool      `gorm:"not null;default:false;index:idx_photos_restaurant_cover"`
	UploadedAt   time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (PhotoModel) TableName() string {
	return "photos"
}
