package rides

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/prasetyadi/nebeng/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/prasetyadi/nebeng/services/rides RideRepo

// RideRepo is the persistence contract for rides
type RideRepo interface {
	// Create persists a new ride and returns it with generated fields set
	Create(ctx context.Context, ride *models.Ride) (*models.Ride, error)

	// Get returns a ride or apperrors.ErrRideNotFound
	Get(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)

	// Update applies a validated partial update for the owning driver.
	// reanchorWindow additionally resets the window anchor timestamp.
	Update(ctx context.Context, rideID, driverID uuid.UUID, patch *models.UpdateRideRequest, reanchorWindow bool) (*models.Ride, error)

	// AdjustSeats atomically adds delta to available_seats inside the
	// caller's transaction, never allowing the result outside
	// [0, total_seats].
	AdjustSeats(ctx context.Context, tx *sqlx.Tx, rideID uuid.UUID, delta int) error

	// Search returns active rides with seats available matching the params
	Search(ctx context.Context, params models.RideSearchParams) ([]models.RideSummary, error)
}
