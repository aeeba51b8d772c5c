package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"seely/config"
	"seely/internal/domain/repository"
	mockRepo "seely/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		SecretKey: config.SecretKeyConfig{
			Access:  "impl_test_access_secret_key_long_enough",
			Refresh: "impl_test_refresh_secret_key_long_enough",
		},
		Token: config.TokenConfig{
			AccessTTL:  15 * time.Minute,
			RefreshTTL: 7 * 24 * time.Hour,
		},
		OAuth2: &config.OAuth2Config{},
	}
}

// expectTx makes every txManager.Execute run its callback against userRepo.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, userRepo *mockRepo.MockUserRepository) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().UserRepo().Return(userRepo)

			return fn(factory)
		})
}
