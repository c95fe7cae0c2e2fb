// Package model holds the GORM persistence models. Models are exported so
// the GORM Gen tool and the migration step can use them from other packages.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are generated by the application.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	UserType     string    `gorm:"type:varchar(32);index;not null"`
	FirstName    string    `gorm:"type:varchar(100);not null"`
	LastName     string    `gorm:"type:varchar(100)"`
	Phone        string    `gorm:"type:varchar(20)"`
	RegisteredAt time.Time `gorm:"not null"`
	Active       bool      `gorm:"not null"`
	LastLoginAt  *time.Time
	PushToken    string `gorm:"type:varchar(512)"`
	UpdatedAt    time.Time

	Restaurants []RestaurantModel `gorm:"foreignKey:OwnerID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
