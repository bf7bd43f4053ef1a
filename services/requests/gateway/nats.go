package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/prasetyadi/nebeng/internal/pkg/constants"
	"github.com/prasetyadi/nebeng/internal/pkg/models"
	natspkg "github.com/prasetyadi/nebeng/internal/pkg/nats"
)

// RequestGW publishes request lifecycle events over NATS
type RequestGW struct {
	nc *natspkg.Client
}

// NewRequestGW creates a new request gateway
func NewRequestGW(nc *natspkg.Client) *RequestGW {
	return &RequestGW{nc: nc}
}

// PublishRequestCreated announces a newly filed request
func (g *RequestGW) PublishRequestCreated(_ context.Context, event *models.RequestLifecycleEvent) error {
	return g.publish(constants.SubjectRequestCreated, event)
}

// PublishRequestAccepted announces an accepted request
func (g *RequestGW) PublishRequestAccepted(_ context.Context, event *models.RequestLifecycleEvent) error {
	return g.publish(constants.SubjectRequestAccepted, event)
}

// PublishRequestRevoked announces a revoked acceptance
func (g *RequestGW) PublishRequestRevoked(_ context.Context, event *models.RequestLifecycleEvent) error {
	return g.publish(constants.SubjectRequestRevoked, event)
}

func (g *RequestGW) publish(subject string, event *models.RequestLifecycleEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal request lifecycle event: %w", err)
	}
	return g.nc.Publish(subject, data)
}
