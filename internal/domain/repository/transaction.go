package repository

import "context"

// TransactionManager scopes repository work to one database transaction.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise. fn's error is returned unchanged.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
}
