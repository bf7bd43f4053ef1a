package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/prasetyadi/nebeng/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/prasetyadi/nebeng/services/auth AuthUC

// AuthUC is the authentication business logic contract
type AuthUC interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Profile(ctx context.Context, userID uuid.UUID) (*models.User, error)
}
