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

func setupRequestRepoTest(t *testing.T) (*RequestRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewRequestRepo(sqlxDB)

	cleanup := func() {
		sqlxDB.Close()
	}
	return repo, mock, cleanup
}

func beginTx(t *testing.T, repo *RequestRepo, mock sqlmock.Sqlmock) *sqlx.Tx {
	mock.ExpectBegin()
	tx, err := repo.db.Beginx()
	require.NoError(t, err)
	return tx
}

func TestFindByRideAndPassenger_Found(t *testing.T) {
	repo, mock, cleanup := setupRequestRepoTest(t)
	defer cleanup()

	rideID := uuid.New()
	passengerID := uuid.New()
	requestID := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "ride_id", "passenger_id", "status", "created_at", "updated_at"}).
		AddRow(requestID, rideID, passengerID, "pending", time.Now(), time.Now())
	mock.ExpectQuery(`SELECT (.+) FROM ride_requests WHERE ride_id = \$1 AND passenger_id = \$2`).
		WithArgs(rideID, passengerID).
		WillReturnRows(rows)

	req, err := repo.FindByRideAndPassenger(context.Background(), rideID, passengerID)

	require.NoError(t, err)
	require.NotNil(t, req)
	assert.Equal(t, requestID, req.ID)
	assert.Equal(t, models.RequestStatusPending, req.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByRideAndPassenger_NoneIsNotAnError(t *testing.T) {
	repo, mock, cleanup := setupRequestRepoTest(t)
	defer cleanup()

	rideID := uuid.New()
	passengerID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM ride_requests`).
		WithArgs(rideID, passengerID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "ride_id", "passenger_id", "status", "created_at", "updated_at"}))

	req, err := repo.FindByRideAndPassenger(context.Background(), rideID, passengerID)

	require.NoError(t, err)
	assert.Nil(t, req)
}

func TestInsertPending_Success(t *testing.T) {
	repo, mock, cleanup := setupRequestRepoTest(t)
	defer cleanup()

	rideID := uuid.New()
	passengerID := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "ride_id", "passenger_id", "status", "created_at", "updated_at"}).
		AddRow(uuid.New(), rideID, passengerID, "pending", time.Now(), time.Now())
	mock.ExpectQuery(`INSERT INTO ride_requests`).
		WithArgs(sqlmock.AnyArg(), rideID, passengerID, models.RequestStatusPending).
		WillReturnRows(rows)

	req, err := repo.InsertPending(context.Background(), rideID, passengerID)

	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusPending, req.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertPending_UniqueViolation(t *testing.T) {
	repo, mock, cleanup := setupRequestRepoTest(t)
	defer cleanup()

	rideID := uuid.New()
	passengerID := uuid.New()

	mock.ExpectQuery(`INSERT INTO ride_requests`).
		WithArgs(sqlmock.AnyArg(), rideID, passengerID, models.RequestStatusPending).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "ride_requests_unique_passenger"})

	_, err := repo.InsertPending(context.Background(), rideID, passengerID)

	assert.ErrorIs(t, err, apperrors.ErrDuplicateRequest)
}

func TestGetForUpdate_LocksRequestWithRide(t *testing.T) {
	repo, mock, cleanup := setupRequestRepoTest(t)
	defer cleanup()

	requestID := uuid.New()
	rideID := uuid.New()
	passengerID := uuid.New()
	driverID := uuid.New()

	tx := beginTx(t, repo, mock)

	rows := sqlmock.NewRows([]string{"id", "ride_id", "passenger_id", "status", "driver_id", "available_seats", "total_seats"}).
		AddRow(requestID, rideID, passengerID, "pending", driverID, 2, 4)
	mock.ExpectQuery(`SELECT (.+) FROM ride_requests req\s+JOIN rides r ON r\.id = req\.ride_id\s+WHERE req\.id = \$1\s+FOR UPDATE`).
		WithArgs(requestID).
		WillReturnRows(rows)

	locked, err := repo.GetForUpdate(context.Background(), tx, requestID)

	require.NoError(t, err)
	assert.Equal(t, driverID, locked.DriverID)
	assert.Equal(t, 2, locked.AvailableSeats)
	assert.Equal(t, 4, locked.TotalSeats)
	assert.Equal(t, models.RequestStatusPending, locked.Status)
}

func TestGetForUpdate_NotFound(t *testing.T) {
	repo, mock, cleanup := setupRequestRepoTest(t)
	defer cleanup()

	requestID := uuid.New()
	tx := beginTx(t, repo, mock)

	mock.ExpectQuery(`SELECT (.+) FOR UPDATE`).
		WithArgs(requestID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "ride_id", "passenger_id", "status", "driver_id", "available_seats", "total_seats"}))

	_, err := repo.GetForUpdate(context.Background(), tx, requestID)

	assert.ErrorIs(t, err, apperrors.ErrRequestNotFound)
}

func TestSetStatus(t *testing.T) {
	repo, mock, cleanup := setupRequestRepoTest(t)
	defer cleanup()

	requestID := uuid.New()
	tx := beginTx(t, repo, mock)

	rows := sqlmock.NewRows([]string{"id", "ride_id", "passenger_id", "status", "created_at", "updated_at"}).
		AddRow(requestID, uuid.New(), uuid.New(), "accepted", time.Now(), time.Now())
	mock.ExpectQuery(`UPDATE ride_requests\s+SET status = \$2`).
		WithArgs(requestID, models.RequestStatusAccepted).
		WillReturnRows(rows)

	req, err := repo.SetStatus(context.Background(), tx, requestID, models.RequestStatusAccepted)

	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusAccepted, req.Status)
}

func TestListByPassenger(t *testing.T) {
	repo, mock, cleanup := setupRequestRepoTest(t)
	defer cleanup()

	passengerID := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "status", "created_at", "ride_id", "source", "destination", "ride_time", "driver_name"}).
		AddRow(uuid.New(), "accepted", time.Now(), uuid.New(), "{jakarta}", "{bandung}", nil, "Budi").
		AddRow(uuid.New(), "pending", time.Now(), uuid.New(), "{depok}", "{bogor}", nil, "Sari")
	mock.ExpectQuery(`SELECT (.+) FROM ride_requests req\s+JOIN rides r (.+) WHERE req\.passenger_id = \$1\s+ORDER BY req\.created_at DESC`).
		WithArgs(passengerID).
		WillReturnRows(rows)

	items, err := repo.ListByPassenger(context.Background(), passengerID)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Budi", items[0].DriverName)
	assert.Equal(t, models.RequestStatusPending, items[1].Status)
}

func TestListByRide_AcceptedFirst(t *testing.T) {
	repo, mock, cleanup := setupRequestRepoTest(t)
	defer cleanup()

	rideID := uuid.New()

	rows := sqlmock.NewRows([]string{"request_id", "status", "created_at", "passenger_id", "passenger_name", "phone_number"}).
		AddRow(uuid.New(), "accepted", time.Now(), uuid.New(), "Andi", "+628111111111").
		AddRow(uuid.New(), "pending", time.Now(), uuid.New(), "Citra", "+628122222222")
	mock.ExpectQuery(`SELECT (.+) FROM ride_requests req\s+JOIN users u (.+) WHERE req\.ride_id = \$1\s+ORDER BY CASE WHEN req\.status = 'accepted' THEN 0 ELSE 1 END`).
		WithArgs(rideID).
		WillReturnRows(rows)

	items, err := repo.ListByRide(context.Background(), rideID)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, models.RequestStatusAccepted, items[0].Status)
	assert.Equal(t, "Andi", items[0].PassengerName)
	assert.Equal(t, "+628122222222", items[1].PassengerPhone)
}
