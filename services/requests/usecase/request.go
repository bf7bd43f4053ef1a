package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/prasetyadi/nebeng/internal/pkg/apperrors"
	"github.com/prasetyadi/nebeng/internal/pkg/logger"
	"github.com/prasetyadi/nebeng/internal/pkg/models"
	"github.com/prasetyadi/nebeng/services/requests"
)

// RequestUC implements the seat request lifecycle. Accept and revoke run
// inside a single transaction that locks the request row and its ride, so
// the seat counter and the request status always move together.
type RequestUC struct {
	requestRepo requests.RequestRepo
	rideStore   requests.RideStore
	txManager   requests.TxManager
	requestGW   requests.RequestGW
}

// NewRequestUC creates a new request usecase
func NewRequestUC(
	requestRepo requests.RequestRepo,
	rideStore requests.RideStore,
	txManager requests.TxManager,
	requestGW requests.RequestGW,
) *RequestUC {
	return &RequestUC{
		requestRepo: requestRepo,
		rideStore:   rideStore,
		txManager:   txManager,
		requestGW:   requestGW,
	}
}

// CreateRequest files a pending request for a seat. The ride checks here are
// advisory reads: a pending request holds no seat, so nothing needs locking,
// and the unique constraint on (ride_id, passenger_id) catches the race
// where two identical requests arrive at once.
func (uc *RequestUC) CreateRequest(ctx context.Context, rideID, passengerID uuid.UUID) (*models.RideRequest, error) {
	ride, err := uc.rideStore.Get(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.Status != models.RideStatusActive {
		return nil, apperrors.ErrRideInactive
	}
	if ride.DriverID == passengerID {
		return nil, apperrors.ErrSelfRequest
	}
	if ride.AvailableSeats <= 0 {
		return nil, apperrors.ErrRideFull
	}

	existing, err := uc.requestRepo.FindByRideAndPassenger(ctx, rideID, passengerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicateRequest
	}

	req, err := uc.requestRepo.InsertPending(ctx, rideID, passengerID)
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, uc.requestGW.PublishRequestCreated, req, ride.DriverID)
	return req, nil
}

// AcceptRequest moves a pending request to accepted and takes one seat. The
// capacity check is repeated under the row lock: the advisory read at create
// time proves nothing by accept time.
func (uc *RequestUC) AcceptRequest(ctx context.Context, requestID, driverID uuid.UUID) (*models.RideRequest, error) {
	var accepted *models.RideRequest
	var ownerID uuid.UUID

	err := uc.txManager.WithTx(ctx, func(tx *sqlx.Tx) error {
		locked, err := uc.requestRepo.GetForUpdate(ctx, tx, requestID)
		if err != nil {
			return err
		}
		if locked.DriverID != driverID {
			return apperrors.ErrNotRideDriver
		}
		if locked.Status == models.RequestStatusAccepted {
			return apperrors.ErrAlreadyAccepted
		}
		if locked.AvailableSeats <= 0 {
			return apperrors.ErrRideFull
		}
		if err := uc.rideStore.AdjustSeats(ctx, tx, locked.RideID, -1); err != nil {
			return err
		}
		accepted, err = uc.requestRepo.SetStatus(ctx, tx, requestID, models.RequestStatusAccepted)
		if err != nil {
			return err
		}
		ownerID = locked.DriverID
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, uc.requestGW.PublishRequestAccepted, accepted, ownerID)
	return accepted, nil
}

// RevokeRequest returns an accepted request to pending and releases its
// seat. The request row stays around, so the passenger can be accepted
// again later without filing a new request.
func (uc *RequestUC) RevokeRequest(ctx context.Context, requestID, driverID uuid.UUID) (*models.RideRequest, error) {
	var revoked *models.RideRequest
	var ownerID uuid.UUID

	err := uc.txManager.WithTx(ctx, func(tx *sqlx.Tx) error {
		locked, err := uc.requestRepo.GetForUpdate(ctx, tx, requestID)
		if err != nil {
			return err
		}
		if locked.DriverID != driverID {
			return apperrors.ErrNotRideDriver
		}
		if locked.Status != models.RequestStatusAccepted {
			return apperrors.ErrNotAccepted
		}
		if err := uc.rideStore.AdjustSeats(ctx, tx, locked.RideID, 1); err != nil {
			return err
		}
		revoked, err = uc.requestRepo.SetStatus(ctx, tx, requestID, models.RequestStatusPending)
		if err != nil {
			return err
		}
		ownerID = locked.DriverID
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, uc.requestGW.PublishRequestRevoked, revoked, ownerID)
	return revoked, nil
}

// ListPassengerRequests returns the caller's request history
func (uc *RequestUC) ListPassengerRequests(ctx context.Context, passengerID uuid.UUID) ([]models.PassengerRequestItem, error) {
	return uc.requestRepo.ListByPassenger(ctx, passengerID)
}

// ListRideRequests returns a ride's requests for its driver
func (uc *RequestUC) ListRideRequests(ctx context.Context, rideID, driverID uuid.UUID) ([]models.RideRequestItem, error) {
	ride, err := uc.rideStore.Get(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID != driverID {
		return nil, apperrors.ErrNotRideDriver
	}
	return uc.requestRepo.ListByRide(ctx, rideID)
}

// publish emits a lifecycle event after the transition is durable. Broker
// failures are logged and swallowed; the committed state wins.
func (uc *RequestUC) publish(ctx context.Context, fn func(context.Context, *models.RequestLifecycleEvent) error, req *models.RideRequest, driverID uuid.UUID) {
	event := &models.RequestLifecycleEvent{
		RequestID:   req.ID,
		RideID:      req.RideID,
		PassengerID: req.PassengerID,
		DriverID:    driverID,
		Status:      req.Status,
		Timestamp:   time.Now(),
	}
	if err := fn(ctx, event); err != nil {
		logger.Error("failed to publish request lifecycle event",
			logger.String("request_id", req.ID.String()),
			logger.String("status", string(req.Status)),
			logger.Err(err))
	}
}
