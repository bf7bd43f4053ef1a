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

// RequestRepo implements requests.RequestRepo on PostgreSQL
type RequestRepo struct {
	db *sqlx.DB
}

// NewRequestRepo creates a new request repository
func NewRequestRepo(db *sqlx.DB) *RequestRepo {
	return &RequestRepo{db: db}
}

const requestColumns = `id, ride_id, passenger_id, status, created_at, updated_at`

// FindByRideAndPassenger returns the pair's request or nil when none exists
func (r *RequestRepo) FindByRideAndPassenger(ctx context.Context, rideID, passengerID uuid.UUID) (*models.RideRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM ride_requests WHERE ride_id = $1 AND passenger_id = $2`

	var req models.RideRequest
	err := r.db.GetContext(ctx, &req, query, rideID, passengerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find ride request: %w", err)
	}
	return &req, nil
}

// InsertPending creates a pending request. The unique constraint on
// (ride_id, passenger_id) is the authoritative duplicate guard; the
// advisory pre-check in the usecase only exists for friendlier ordering
// of error messages.
func (r *RequestRepo) InsertPending(ctx context.Context, rideID, passengerID uuid.UUID) (*models.RideRequest, error) {
	query := `
		INSERT INTO ride_requests (id, ride_id, passenger_id, status)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + requestColumns

	var req models.RideRequest
	err := r.db.GetContext(ctx, &req, query, uuid.New(), rideID, passengerID, models.RequestStatusPending)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, apperrors.ErrDuplicateRequest
		}
		return nil, fmt.Errorf("failed to insert ride request: %w", err)
	}
	return &req, nil
}

// GetForUpdate loads a request joined with its ride's driver and seat
// counters, locking both rows until the transaction ends. Every seat
// mutation goes through this lock, so the state it returns cannot change
// under the caller.
func (r *RequestRepo) GetForUpdate(ctx context.Context, tx *sqlx.Tx, requestID uuid.UUID) (*models.LockedRequest, error) {
	query := `
		SELECT req.id, req.ride_id, req.passenger_id, req.status,
		       r.driver_id, r.available_seats, r.total_seats
		FROM ride_requests req
		JOIN rides r ON r.id = req.ride_id
		WHERE req.id = $1
		FOR UPDATE`

	var locked models.LockedRequest
	err := tx.GetContext(ctx, &locked, query, requestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to lock ride request: %w", err)
	}
	return &locked, nil
}

// SetStatus flips the request's status inside the caller's transaction
func (r *RequestRepo) SetStatus(ctx context.Context, tx *sqlx.Tx, requestID uuid.UUID, status models.RequestStatus) (*models.RideRequest, error) {
	query := `
		UPDATE ride_requests
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + requestColumns

	var req models.RideRequest
	err := tx.GetContext(ctx, &req, query, requestID, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to update request status: %w", err)
	}
	return &req, nil
}

// ListByPassenger returns the passenger's request history, newest first
func (r *RequestRepo) ListByPassenger(ctx context.Context, passengerID uuid.UUID) ([]models.PassengerRequestItem, error) {
	query := `
		SELECT req.id, req.status, req.created_at,
		       r.id AS ride_id, r.source, r.destination, r.ride_time,
		       u.name AS driver_name
		FROM ride_requests req
		JOIN rides r ON r.id = req.ride_id
		JOIN users u ON u.id = r.driver_id
		WHERE req.passenger_id = $1
		ORDER BY req.created_at DESC`

	items := []models.PassengerRequestItem{}
	if err := r.db.SelectContext(ctx, &items, query, passengerID); err != nil {
		return nil, fmt.Errorf("failed to list passenger requests: %w", err)
	}
	return items, nil
}

// ListByRide returns a ride's requests with accepted ones first, each group
// oldest first so drivers see requests in arrival order.
func (r *RequestRepo) ListByRide(ctx context.Context, rideID uuid.UUID) ([]models.RideRequestItem, error) {
	query := `
		SELECT req.id AS request_id, req.status, req.created_at,
		       u.id AS passenger_id, u.name AS passenger_name, u.phone_number
		FROM ride_requests req
		JOIN users u ON u.id = req.passenger_id
		WHERE req.ride_id = $1
		ORDER BY CASE WHEN req.status = 'accepted' THEN 0 ELSE 1 END, req.created_at ASC`

	items := []models.RideRequestItem{}
	if err := r.db.SelectContext(ctx, &items, query, rideID); err != nil {
		return nil, fmt.Errorf("failed to list ride requests: %w", err)
	}
	return items, nil
}
