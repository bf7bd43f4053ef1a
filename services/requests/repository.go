package requests

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/prasetyadi/nebeng/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/prasetyadi/nebeng/services/requests RequestRepo,RideStore,TxManager

// RequestRepo is the persistence contract for ride requests
type RequestRepo interface {
	// FindByRideAndPassenger returns the pair's request, or nil when none exists
	FindByRideAndPassenger(ctx context.Context, rideID, passengerID uuid.UUID) (*models.RideRequest, error)

	// InsertPending creates a new pending request. A uniqueness violation on
	// (ride_id, passenger_id) surfaces as apperrors.ErrDuplicateRequest.
	InsertPending(ctx context.Context, rideID, passengerID uuid.UUID) (*models.RideRequest, error)

	// GetForUpdate loads the request joined with its ride's ownership and
	// seat fields under an exclusive row lock. The lock is held until the
	// surrounding transaction ends.
	GetForUpdate(ctx context.Context, tx *sqlx.Tx, requestID uuid.UUID) (*models.LockedRequest, error)

	// SetStatus flips the request's status inside the caller's transaction
	SetStatus(ctx context.Context, tx *sqlx.Tx, requestID uuid.UUID, status models.RequestStatus) (*models.RideRequest, error)

	// ListByPassenger returns the passenger's request history, newest first
	ListByPassenger(ctx context.Context, passengerID uuid.UUID) ([]models.PassengerRequestItem, error)

	// ListByRide returns a ride's requests, accepted before pending
	ListByRide(ctx context.Context, rideID uuid.UUID) ([]models.RideRequestItem, error)
}

// RideStore is the slice of the ride repository the request lifecycle needs
type RideStore interface {
	Get(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	AdjustSeats(ctx context.Context, tx *sqlx.Tx, rideID uuid.UUID, delta int) error
}

// TxManager runs a function inside a database transaction, committing when
// it returns nil and rolling back otherwise.
type TxManager interface {
	WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}
