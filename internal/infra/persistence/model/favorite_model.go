package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteModel mirrors the 'favorites' table. The composite unique index keeps one favorite per (user, restaurant).
type FavoriteModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_restaurant"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_favorites_user_restaurant"`
	AddedAt      time.Time `gorm:"not null"`

	User       *UserModel       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Restaurant *RestaurantModel `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
