// Command gen generates type-safe GORM query helpers for the persistence models.
package main

import (
	"food/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.RestaurantModel{},
		model.RatingModel{},
		model.FavoriteModel{},
		model.NotificationModel{},
		model.PhotoModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
