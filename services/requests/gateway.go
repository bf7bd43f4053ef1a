package requests

import (
	"context"

	"github.com/prasetyadi/nebeng/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/prasetyadi/nebeng/services/requests RequestGW

// RequestGW publishes request lifecycle events to the message broker
type RequestGW interface {
	PublishRequestCreated(ctx context.Context, event *models.RequestLifecycleEvent) error
	PublishRequestAccepted(ctx context.Context, event *models.RequestLifecycleEvent) error
	PublishRequestRevoked(ctx context.Context, event *models.RequestLifecycleEvent) error
}
