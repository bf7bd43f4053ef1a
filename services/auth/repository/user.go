package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/prasetyadi/nebeng/internal/pkg/apperrors"
	"github.com/prasetyadi/nebeng/internal/pkg/models"
)

const pgUniqueViolation = "23505"

// UserRepo implements auth.UserRepo on PostgreSQL
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

// CreateUser inserts a new account
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, phone_number, name, email, password_hash)
		VALUES (:id, :phone_number, :name, :email, :password_hash)`

	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.ErrUserExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByPhone retrieves an account by phone number
func (r *UserRepo) GetUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	return r.getUserByField(ctx, "phone_number", phone)
}

// GetUserByID retrieves an account by ID
func (r *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getUserByField(ctx, "id", id)
}

func (r *UserRepo) getUserByField(ctx context.Context, field string, value interface{}) (*models.User, error) {
	query := fmt.Sprintf(`SELECT id, phone_number, name, email, password_hash, created_at FROM users WHERE %s = $1`, field)

	var user models.User
	err := r.db.GetContext(ctx, &user, query, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}
