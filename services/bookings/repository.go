package bookings

import (
	"context"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/BidumanADT/bellwood-admin/services/bookings BookingRepo

// BookingRepo defines the booking persistence operations. The
// GetBooking / GetDriverName / UpdateRideStatus subset doubles as the
// lookup the tracking subsystem consumes.
type BookingRepo interface {
	// CreateQuote stores a priced quote
	CreateQuote(ctx context.Context, quote *models.Quote) error

	// GetQuote returns a quote, nil when it does not exist
	GetQuote(ctx context.Context, quoteID string) (*models.Quote, error)

	// UpdateQuoteStatus moves a quote through its lifecycle
	UpdateQuoteStatus(ctx context.Context, quoteID string, status models.QuoteStatus) error

	// CreateBooking inserts a new booking
	CreateBooking(ctx context.Context, booking *models.Booking) error

	// CreateBookingFromQuote inserts the booking and marks its quote
	// accepted in one transaction
	CreateBookingFromQuote(ctx context.Context, booking *models.Booking) error

	// GetBooking returns a booking, nil when it does not exist
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)

	// ListBookings returns all bookings, newest first
	ListBookings(ctx context.Context) ([]models.Booking, error)

	// ListBookingsByBooker returns the bookings owned by a booker email,
	// newest first
	ListBookingsByBooker(ctx context.Context, bookerEmail string) ([]models.Booking, error)

	// AssignDriver sets the driver and booking status on a booking
	AssignDriver(ctx context.Context, bookingID, driverUID string, status models.BookingStatus) error

	// UpdateRideStatus persists a ride status transition and its booking
	// status side effect
	UpdateRideStatus(ctx context.Context, rideID string, rideStatus models.RideStatus, bookingStatus models.BookingStatus) error

	// GetDriverName returns the active driver's display name;
	// ErrDriverNotFound when the uid is unknown or inactive
	GetDriverName(ctx context.Context, driverUID string) (string, error)
}
