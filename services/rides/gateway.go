package rides

import (
	"context"

	"github.com/prasetyadi/nebeng/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/prasetyadi/nebeng/services/rides RideGW

// RideGW publishes ride events to the message broker
type RideGW interface {
	PublishRideCreated(ctx context.Context, event *models.RideCreatedEvent) error
}
