package repository

import (
	"context"
	"time"

	"github.com/careerhub/job-board/internal/domain"
)

// UseCase depends on interface, not concrete implementation.
// This way we get: 1) can swap DB later without touching usecase 2) We can pass a mock implementation of interface in tests
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context) ([]*domain.Job, error)
	Update(ctx context.Context, id string, patch domain.JobPatch) (*domain.Job, error)
	Delete(ctx context.Context, id string) error

	// ListCreatedSince feeds the daily digest worker.
	ListCreatedSince(ctx context.Context, since time.Time) ([]*domain.Job, error)
}
