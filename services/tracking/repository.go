package tracking

import (
	"context"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/BidumanADT/bellwood-admin/services/tracking BookingLookup

// BookingLookup is the tracking core's only view of booking records:
// existence, driver assignment, current status, and persistence of
// status changes. The bookings service provides the implementation.
type BookingLookup interface {
	// GetBooking returns the booking a ride id refers to, or nil when
	// no such booking exists
	GetBooking(ctx context.Context, rideID string) (*models.Booking, error)

	// GetDriverName resolves a driver uid to a display name
	GetDriverName(ctx context.Context, driverUID string) (string, error)

	// UpdateRideStatus persists an applied status transition
	UpdateRideStatus(ctx context.Context, rideID string, rideStatus models.RideStatus, bookingStatus models.BookingStatus) error
}
