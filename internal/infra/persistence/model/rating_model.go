package model

import (
	"time"

	"github.com/google/uuid"
)

// RatingModel mirrors the 'ratings' table. The composite unique index keeps one rating per (user, restaurant).
type RatingModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_restaurant"`
	RestaurantID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_ratings_user_restaurant"`
	FoodScore     int       `gorm:"not null;check:food_score BETWEEN 1 AND 5"`
	ServiceScore  int       `gorm:"not null;check:service_score BETWEEN 1 AND 5"`
	AmbienceScore int       `gorm:"not null;check:ambience_score BETWEEN 1 AND 5"`
	Comment       string    `gorm:"type:varchar(1000)"`
	RatedAt       time.Time `gorm:"not null"`

	User       *UserModel       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Restaurant *RestaurantModel `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "ratings"
}
