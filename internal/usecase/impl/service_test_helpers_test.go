package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"phonestore/config"
	"phonestore/internal/domain/repository"
	mockRepo "phonestore/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

// newTestLogger returns a logger that discards everything so test output
// stays readable.
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// newTestConfig returns a config with the default page size.
func newTestConfig() *config.Config {
	return &config.Config{}
}

// onExecute wires a transaction manager mock to run the transactional
// closure against the given factory, so the closure's real return value
// propagates as the Execute result.
func onExecute(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

// newTestFactory builds a repository factory mock for transactional tests.
func newTestFactory(t *testing.T) *mockRepo.MockRepositoryFactory {
	return mockRepo.NewMockRepositoryFactory(t)
}
