package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/prasetyadi/nebeng/internal/pkg/constants"
	"github.com/prasetyadi/nebeng/internal/pkg/models"
	natspkg "github.com/prasetyadi/nebeng/internal/pkg/nats"
)

// RideGW publishes ride events over NATS
type RideGW struct {
	nc *natspkg.Client
}

// NewRideGW creates a new ride gateway
func NewRideGW(nc *natspkg.Client) *RideGW {
	return &RideGW{nc: nc}
}

// PublishRideCreated announces a newly published ride
func (g *RideGW) PublishRideCreated(_ context.Context, event *models.RideCreatedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal ride created event: %w", err)
	}
	return g.nc.Publish(constants.SubjectRideCreated, data)
}
