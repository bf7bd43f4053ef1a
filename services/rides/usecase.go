package rides

import (
	"context"

	"github.com/google/uuid"
	"github.com/prasetyadi/nebeng/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/prasetyadi/nebeng/services/rides RideUC

// RideUC is the rides business logic contract
type RideUC interface {
	CreateRide(ctx context.Context, driverID uuid.UUID, req *models.CreateRideRequest) (*models.Ride, error)
	UpdateRide(ctx context.Context, rideID, driverID uuid.UUID, req *models.UpdateRideRequest) (*models.Ride, error)
	SearchRides(ctx context.Context, params models.RideSearchParams) (*models.RideSearchPage, error)
}
