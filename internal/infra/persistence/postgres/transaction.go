package postgres

import (
	"context"

	"food/internal/domain/repository"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) NewPhotoRepository() repository.PhotoRepository {
	return NewPhotoRepository(f.tx)
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute delegates to gorm's Transaction, which also rolls back when fn panics.
// fn's error is returned unwrapped so repository sentinels still match.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(tx repository.RepositoryFactory) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormRepositoryFactory{tx: tx})
	})
}
