package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasetyadi/nebeng/internal/pkg/apperrors"
	"github.com/prasetyadi/nebeng/internal/pkg/models"
)

func setupUserRepoTest(t *testing.T) (*UserRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewUserRepo(sqlxDB)

	cleanup := func() {
		sqlxDB.Close()
	}
	return repo, mock, cleanup
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	user := &models.User{
		ID:           uuid.New(),
		PhoneNumber:  "+628123456789",
		Name:         "Budi",
		PasswordHash: "$2a$10$hash",
	}

	mock.ExpectExec(`INSERT INTO users`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateUser(context.Background(), user)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_PhoneTaken(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	mock.ExpectExec(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_phone_number_key"})

	err := repo.CreateUser(context.Background(), &models.User{ID: uuid.New(), PhoneNumber: "+628123456789"})

	assert.ErrorIs(t, err, apperrors.ErrUserExists)
}

func TestGetUserByPhone_Found(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "phone_number", "name", "email", "password_hash", "created_at"}).
		AddRow(userID, "+628123456789", "Budi", "budi@example.com", "$2a$10$hash", time.Now())
	mock.ExpectQuery(`SELECT (.+) FROM users WHERE phone_number = \$1`).
		WithArgs("+628123456789").
		WillReturnRows(rows)

	user, err := repo.GetUserByPhone(context.Background(), "+628123456789")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "Budi", user.Name)
}

func TestGetUserByPhone_NoneIsNotAnError(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE phone_number = \$1`).
		WithArgs("+628999999999").
		WillReturnRows(sqlmock.NewRows([]string{"id", "phone_number", "name", "email", "password_hash", "created_at"}))

	user, err := repo.GetUserByPhone(context.Background(), "+628999999999")

	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestGetUserByID_Found(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "phone_number", "name", "email", "password_hash", "created_at"}).
		AddRow(userID, "+628123456789", "Budi", "", "$2a$10$hash", time.Now())
	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
		WithArgs(userID).
		WillReturnRows(rows)

	user, err := repo.GetUserByID(context.Background(), userID)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, userID, user.ID)
}
