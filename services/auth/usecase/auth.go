package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/prasetyadi/nebeng/internal/pkg/apperrors"
	jwtpkg "github.com/prasetyadi/nebeng/internal/pkg/jwt"
	"github.com/prasetyadi/nebeng/internal/pkg/models"
	"github.com/prasetyadi/nebeng/internal/utils"
	"github.com/prasetyadi/nebeng/services/auth"
	"golang.org/x/crypto/bcrypt"
)

// AuthUC implements authentication with bcrypt password hashing and JWT
// session tokens.
type AuthUC struct {
	cfg      *models.Config
	userRepo auth.UserRepo
}

// NewAuthUC creates a new auth usecase
func NewAuthUC(cfg *models.Config, userRepo auth.UserRepo) *AuthUC {
	return &AuthUC{
		cfg:      cfg,
		userRepo: userRepo,
	}
}

// Register creates a new account and signs it in
func (uc *AuthUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if !utils.IsValidPhoneNumber(req.PhoneNumber) {
		return nil, apperrors.InvalidInput("phone must be a valid phone number")
	}
	if len(req.Password) < 6 {
		return nil, apperrors.InvalidInput("password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New(),
		PhoneNumber:  req.PhoneNumber,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return uc.issueToken(user)
}

// Login verifies credentials and signs the account in. A missing account and
// a wrong password are indistinguishable to the caller.
func (uc *AuthUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := uc.userRepo.GetUserByPhone(ctx, req.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return uc.issueToken(user)
}

// Profile returns the authenticated caller's account
func (uc *AuthUC) Profile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

func (uc *AuthUC) issueToken(user *models.User) (*models.AuthResponse, error) {
	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, uc.cfg.JWT)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}
