package testutil

import (
	"testing"

	"github.com/ekazakov/tiersort/internal/repository"
)

// NewTestRepository creates a fresh in-memory repository for testing,
// with all migrations applied.
func NewTestRepository(t *testing.T) *repository.Repository {
	t.Helper()

	repo, err := repository.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test repository: %v", err)
	}

	t.Cleanup(func() {
		repo.Close()
	})

	return repo
}
