package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/prasetyadi/nebeng/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/prasetyadi/nebeng/services/auth UserRepo

// UserRepo is the persistence contract for user accounts
type UserRepo interface {
	// CreateUser inserts a new account. A phone number collision surfaces as
	// apperrors.ErrUserExists.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByPhone returns the account for a phone number, or nil when
	// none exists
	GetUserByPhone(ctx context.Context, phone string) (*models.User, error)

	// GetUserByID returns an account by ID, or nil when none exists
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}
