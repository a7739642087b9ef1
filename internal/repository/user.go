package repository

import (
	"context"

	"github.com/careerhub/job-board/internal/domain"
)

type UserRepository interface {
	// Create persists a new user. Returns domain.ErrEmailTaken if the email
	// is already registered.
	Create(ctx context.Context, name, email, passwordHash string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
