package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/prasetyadi/nebeng/internal/pkg/apperrors"
	"github.com/prasetyadi/nebeng/internal/pkg/database"
	"github.com/prasetyadi/nebeng/internal/pkg/models"
)

// RideRepo implements rides.RideRepo on PostgreSQL with a Redis cache in
// front of search queries.
type RideRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	cache *database.RedisClient
}

// NewRideRepo creates a new ride repository
func NewRideRepo(cfg *models.Config, db *sqlx.DB, cache *database.RedisClient) *RideRepo {
	return &RideRepo{
		cfg:   cfg,
		db:    db,
		cache: cache,
	}
}

const rideColumns = `id, driver_id, source, destination, departure_type, ride_time,
		flexible_window_minutes, window_updated_at, total_seats, available_seats,
		seat_layout, price_per_person, payment_contact, car_info, extra_notes,
		status, created_at, updated_at`

// Create persists a new ride and returns the stored row
func (r *RideRepo) Create(ctx context.Context, ride *models.Ride) (*models.Ride, error) {
	query := `
		INSERT INTO rides (
			id, driver_id, source, destination, departure_type, ride_time,
			flexible_window_minutes, window_updated_at, total_seats, available_seats,
			seat_layout, price_per_person, payment_contact, car_info, extra_notes, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
		)
		RETURNING ` + rideColumns

	var created models.Ride
	err := r.db.GetContext(ctx, &created, query,
		ride.ID, ride.DriverID, ride.Source, ride.Destination, ride.DepartureType,
		ride.RideTime, ride.FlexibleWindowMinutes, ride.WindowUpdatedAt,
		ride.TotalSeats, ride.AvailableSeats, ride.SeatLayout, ride.PricePerPerson,
		ride.PaymentContact, ride.CarInfo, ride.ExtraNotes, ride.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ride: %w", err)
	}
	return &created, nil
}

// Get returns a ride by ID
func (r *RideRepo) Get(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE id = $1`

	var ride models.Ride
	err := r.db.GetContext(ctx, &ride, query, rideID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrRideNotFound
		}
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}
	return &ride, nil
}

// Update applies a partial update for the owning driver. Only the columns
// present in the patch are touched, so nil fields never clobber stored
// values. Seat counters are outside the editable set entirely.
func (r *RideRepo) Update(ctx context.Context, rideID, driverID uuid.UUID, patch *models.UpdateRideRequest, reanchorWindow bool) (*models.Ride, error) {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{rideID, driverID}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Source != nil {
		addSet("source", pq.StringArray(patch.Source))
	}
	if patch.Destination != nil {
		addSet("destination", pq.StringArray(patch.Destination))
	}
	if patch.DepartureType != nil {
		addSet("departure_type", *patch.DepartureType)
	}
	if patch.RideTime != nil {
		addSet("ride_time", *patch.RideTime)
	}
	if patch.FlexibleWindowMinutes != nil {
		addSet("flexible_window_minutes", *patch.FlexibleWindowMinutes)
	}
	if patch.SeatLayout != nil {
		addSet("seat_layout", *patch.SeatLayout)
	}
	if patch.PricePerPerson != nil {
		addSet("price_per_person", *patch.PricePerPerson)
	}
	if patch.PaymentContact != nil {
		addSet("payment_contact", *patch.PaymentContact)
	}
	if patch.CarInfo != nil {
		addSet("car_info", *patch.CarInfo)
	}
	if patch.ExtraNotes != nil {
		addSet("extra_notes", *patch.ExtraNotes)
	}
	if patch.Status != nil {
		addSet("status", *patch.Status)
	}
	if reanchorWindow {
		sets = append(sets, "window_updated_at = NOW()")
	}

	query := fmt.Sprintf(`
		UPDATE rides
		SET %s
		WHERE id = $1 AND driver_id = $2
		RETURNING %s`, strings.Join(sets, ", "), rideColumns)

	var updated models.Ride
	err := r.db.GetContext(ctx, &updated, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrRideNotFound
		}
		return nil, fmt.Errorf("failed to update ride: %w", err)
	}
	return &updated, nil
}

// AdjustSeats adds delta to a ride's available seat counter inside the
// caller's transaction. The guard in the WHERE clause keeps the counter
// inside [0, total_seats]; a zero rowcount means the adjustment would have
// breached that range.
func (r *RideRepo) AdjustSeats(ctx context.Context, tx *sqlx.Tx, rideID uuid.UUID, delta int) error {
	query := `
		UPDATE rides
		SET available_seats = available_seats + $2, updated_at = NOW()
		WHERE id = $1
		  AND available_seats + $2 BETWEEN 0 AND total_seats`

	result, err := tx.ExecContext(ctx, query, rideID, delta)
	if err != nil {
		return fmt.Errorf("failed to adjust seats: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to adjust seats: %w", err)
	}
	if rows == 0 {
		if delta < 0 {
			return apperrors.ErrRideFull
		}
		return fmt.Errorf("seat adjustment out of range for ride %s", rideID)
	}
	return nil
}
