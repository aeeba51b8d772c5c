package postgres

import (
	"context"

	"seely/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager runs use case callbacks inside a GORM transaction.
type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute commits when fn returns nil and rolls back on an error or panic.
// fn's error is returned as is so callers can match repository sentinels.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	//nolint:wrapcheck // fn's error is the caller's own
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&txRepositoryFactory{tx: tx})
	})
}

// txRepositoryFactory hands out repositories bound to one transaction.
type txRepositoryFactory struct {
	tx *gorm.DB
}

func (f *txRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}
