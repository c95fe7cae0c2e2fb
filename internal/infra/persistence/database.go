// Package persistence selects the GORM driver configured in database.driver.
package persistence

import (
	"log/slog"

	"food/config"
	"food/internal/domain/constants"
	"food/internal/errors"
	"food/internal/infra/persistence/postgres"
	"food/internal/infra/persistence/sqlite"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured database.
func New(params Params) (*gorm.DB, error) {
	driver := constants.DatabaseDriverPostgres
	if params.Config.Database != nil && params.Config.Database.Driver != "" {
		driver = params.Config.Database.Driver
	}

	switch driver {
	case constants.DatabaseDriverPostgres:
		return postgres.New(postgres.Params{Lifecycle: params.Lifecycle, Config: params.Config, Logger: params.Logger})
	case constants.DatabaseDriverSQLite:
		return sqlite.New(sqlite.Params{Lifecycle: params.Lifecycle, Config: params.Config, Logger: params.Logger})
	default:
		return nil, errors.Errorf("unsupported database driver: %s", driver)
	}
}
