// Package sqlite opens the embedded SQLite database used for local runs and tests.
package sqlite

import (
	"context"
	"log/slog"

	"food/config"
	"food/internal/errors"
	"food/internal/infra/persistence/gormlog"
	"food/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InMemoryDSN is a private in-memory database with foreign keys enforced.
const InMemoryDSN = "file::memory:?_pragma=foreign_keys(1)"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the database.dsn file with the pure-Go SQLite driver.
func New(params Params) (*gorm.DB, error) {
	dsn := InMemoryDSN
	if params.Config.Database != nil && params.Config.Database.DSN != "" {
		dsn = params.Config.Database.DSN
	}

	db, err := Open(dsn, gormlog.New(params.Logger, params.Config))
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if params.Config.Database != nil && params.Config.Database.AutoMigrate {
				if err := model.AutoMigrate(ctx, db); err != nil {
					return err
				}
				params.Logger.Info("SQLite schema migrated", slog.String("dsn", dsn))
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return errors.WithStack(err)
			}

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open connects to dsn. SQLite serializes writers, so the pool keeps a single
// connection; this also keeps an in-memory database alive across statements.
func Open(dsn string, gormLogger logger.Interface) (*gorm.DB, error) {
	if gormLogger == nil {
		gormLogger = logger.Discard
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 gormLogger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// OpenInMemory returns a migrated private database, used by tests and local runs.
func OpenInMemory(ctx context.Context) (*gorm.DB, error) {
	db, err := Open(InMemoryDSN, nil)
	if err != nil {
		return nil, err
	}

	if err := model.AutoMigrate(ctx, db); err != nil {
		return nil, err
	}

	return db, nil
}
