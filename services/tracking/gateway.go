package tracking

import (
	"context"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/BidumanADT/bellwood-admin/services/tracking TrackingGW

// TrackingGW defines the message queue operations for the tracking service.
// Publishing is best effort; implementations log failures and never let
// them surface into the request path.
type TrackingGW interface {
	// PublishRideStatusChanged announces a successful status transition
	PublishRideStatusChanged(ctx context.Context, event models.RideStatusChangedEvent) error

	// PublishTrackingStopped announces that a ride reached a terminal status
	PublishTrackingStopped(ctx context.Context, event models.TrackingStoppedEvent) error
}
