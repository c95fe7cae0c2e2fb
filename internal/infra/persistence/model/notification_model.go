package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel mirrors the 'notifications' table. RestaurantID is nullable.
type NotificationModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index:idx_notifications_user_read"`
	Title        string     `gorm:"type:varchar(200);not null"`
	Message      string     `gorm:"type:varchar(1000);not null"`
	Type         string     `gorm:"type:varchar(32);not null;index"`
	RestaurantID *uuid.UUID `gorm:"type:uuid"`
	Read         bool       `gorm:"not null;default:false;index:idx_notifications_user_read"`
	CreatedAt    time.Time  `gorm:"not null;index"`
	SentAt       *time.Time

	User       *UserModel       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Restaurant *RestaurantModel `gorm:"foreignKey:RestaurantID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
