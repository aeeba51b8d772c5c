//go:build integration

package postgres

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"seely/config"
	"seely/internal/domain/entity"
	"seely/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("seely"),
		tcpostgres.WithUsername("seely"),
		tcpostgres.WithPassword("seely"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 newGormSlogLogger(logger, &config.Config{}),
	})
	require.NoError(t, err)

	require.NoError(t, Bootstrap(ctx, db, &config.DatabaseConfig{AutoMigrate: true, Seed: true}, logger))

	return db
}

func TestUserRepository_Integration(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("seeded local user", func(t *testing.T) {
		user, err := repo.FindByUsername(ctx, "apinut")
		require.NoError(t, err)
		assert.True(t, user.HasPassword())
		assert.False(t, user.IsFederated())
		assert.Equal(t, entity.RoleUser, user.Role)

		byID, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "apinut", byID.Username)
	})

	t.Run("seeded federated user", func(t *testing.T) {
		user, err := repo.FindByExternalSubjectID(ctx, "392de118-0c0c-40e4-a628-9b77b1354c42")
		require.NoError(t, err)
		assert.Equal(t, "apinut555@gmail.com", user.Username)
		assert.False(t, user.HasPassword())
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.FindByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, repository.ErrUserNotFound)

		_, err = repo.FindByExternalSubjectID(ctx, "")
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})

	t.Run("create then link subject", func(t *testing.T) {
		user := &entity.User{Username: "somchai", PasswordHash: "$2a$10$hash"}
		require.NoError(t, repo.Create(ctx, user))
		assert.NotZero(t, user.ID)
		assert.Equal(t, entity.RoleUser, user.Role)

		user.ExternalSubjectID = "sub-somchai"
		require.NoError(t, repo.Update(ctx, user))

		linked, err := repo.FindByExternalSubjectID(ctx, "sub-somchai")
		require.NoError(t, err)
		assert.Equal(t, user.ID, linked.ID)
		assert.Equal(t, "$2a$10$hash", linked.PasswordHash)
	})

	t.Run("duplicate username", func(t *testing.T) {
		err := repo.Create(ctx, &entity.User{Username: "john", PasswordHash: "x"})
		assert.True(t, errors.Is(err, repository.ErrDuplicateUser))
	})

	t.Run("duplicate subject", func(t *testing.T) {
		err := repo.Create(ctx, &entity.User{Username: "someone-else", ExternalSubjectID: "3c632971-d475-4d23-adeb-06b9a18131b8"})
		assert.True(t, errors.Is(err, repository.ErrDuplicateUser))
	})

	t.Run("seed is idempotent", func(t *testing.T) {
		require.NoError(t, Bootstrap(ctx, db, &config.DatabaseConfig{Seed: true}, slog.New(slog.NewTextHandler(io.Discard, nil))))

		var count int64
		require.NoError(t, db.Table("users").Where("username = ?", "apinut").Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}

func TestTransactionManager_Integration(t *testing.T) {
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()

	t.Run("rollback on error", func(t *testing.T) {
		failure := errors.New("boom")
		err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			if err := factory.UserRepo().Create(ctx, &entity.User{Username: "rolled-back", PasswordHash: "x"}); err != nil {
				return err
			}

			return failure
		})
		assert.ErrorIs(t, err, failure)

		_, err = NewUserRepository(db).FindByUsername(ctx, "rolled-back")
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})

	t.Run("concurrent creates of one subject leave one row", func(t *testing.T) {
		var wg sync.WaitGroup
		errs := make([]error, 4)
		for i := range errs {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs[i] = txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
					return factory.UserRepo().Create(ctx, &entity.User{Username: "race@example.com", ExternalSubjectID: "sub-race"})
				})
			}()
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++

				continue
			}
			assert.True(t, errors.Is(err, repository.ErrDuplicateUser))
		}
		assert.Equal(t, 1, succeeded)
	})
}
