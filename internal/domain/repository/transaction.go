package repository

import "context"

// TransactionManager runs fn in one database transaction: fn's error rolls it
// back, nil commits. Repositories obtained from the factory share the transaction.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(tx RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running transaction.
// Only photos are written transactionally (the cover swap).
type RepositoryFactory interface {
	NewPhotoRepository() PhotoRepository
}
