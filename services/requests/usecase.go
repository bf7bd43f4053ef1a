package requests

import (
	"context"

	"github.com/google/uuid"
	"github.com/prasetyadi/nebeng/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/prasetyadi/nebeng/services/requests RequestUC

// RequestUC is the request lifecycle contract
type RequestUC interface {
	CreateRequest(ctx context.Context, rideID, passengerID uuid.UUID) (*models.RideRequest, error)
	AcceptRequest(ctx context.Context, requestID, driverID uuid.UUID) (*models.RideRequest, error)
	RevokeRequest(ctx context.Context, requestID, driverID uuid.UUID) (*models.RideRequest, error)
	ListPassengerRequests(ctx context.Context, passengerID uuid.UUID) ([]models.PassengerRequestItem, error)
	ListRideRequests(ctx context.Context, rideID, driverID uuid.UUID) ([]models.RideRequestItem, error)
}
