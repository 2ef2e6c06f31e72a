package tracking

import (
	"context"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/BidumanADT/bellwood-admin/services/tracking TrackingUC

// TrackingUC defines the tracking use case operations
type TrackingUC interface {
	// UpdateLocation records a driver position report for a ride
	UpdateLocation(ctx context.Context, caller models.CallerIdentity, rideID string, req models.LocationUpdateRequest) (*models.LocationUpdateAck, error)

	// GetRideLocation returns the latest sample for staff and the assigned driver
	GetRideLocation(ctx context.Context, caller models.CallerIdentity, rideID string) (*models.DriverLocationView, error)

	// GetPassengerView returns the customer-facing tracking read
	GetPassengerView(ctx context.Context, caller models.CallerIdentity, rideID string) (*models.PassengerTrackingView, error)

	// ListActiveLocations returns the staff overview of every tracked ride
	ListActiveLocations(ctx context.Context, caller models.CallerIdentity) (*models.ActiveLocationsResponse, error)

	// UpdateRideStatus applies a ride status transition
	UpdateRideStatus(ctx context.Context, caller models.CallerIdentity, rideID string, req models.StatusUpdateRequest) (*models.StatusUpdateResponse, error)
}
