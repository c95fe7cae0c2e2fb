package model

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// All lists every persisted model, in dependency order.
func All() []any {
	return []any{
		&UserModel{},
		&RestaurantModel{},
		&RatingModel{},
		&FavoriteModel{},
		&NotificationModel{},
		&PhotoModel{},
	}
}

// AutoMigrate creates or updates the schema for every model.
func AutoMigrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
