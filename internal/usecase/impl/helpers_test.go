package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bookmarks/internal/domain/repository"
	mockRepo "bookmarks/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T {
	return &v
}

// expectExecute runs the transaction callback against a mock factory prepared by
// setup and returns whatever the callback returns.
func expectExecute(
	t *testing.T,
	txManager *mockRepo.MockTransactionManager,
	ctx context.Context,
	setup func(factory *mockRepo.MockRepositoryFactory),
) {
	t.Helper()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}
