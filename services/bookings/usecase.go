package bookings

import (
	"context"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/BidumanADT/bellwood-admin/services/bookings BookingUC

// BookingUC defines the booking use case operations
type BookingUC interface {
	// CreateQuote prices a trip and stores the estimate
	CreateQuote(ctx context.Context, caller models.CallerIdentity, req models.QuoteRequest) (*models.Quote, error)

	// AcceptQuote turns a pending quote into a booking
	AcceptQuote(ctx context.Context, caller models.CallerIdentity, quoteID string, req models.AcceptQuoteRequest) (*models.Booking, error)

	// CreateBooking creates a booking directly, without a prior quote
	CreateBooking(ctx context.Context, caller models.CallerIdentity, req models.BookingRequest) (*models.Booking, error)

	// GetBooking returns the full booking record; staff only
	GetBooking(ctx context.Context, caller models.CallerIdentity, bookingID string) (*models.Booking, error)

	// GetBookingSummary returns the customer projection for the booker or
	// the assigned driver
	GetBookingSummary(ctx context.Context, caller models.CallerIdentity, bookingID string) (*models.BookingSummary, error)

	// ListBookings returns all bookings; staff only
	ListBookings(ctx context.Context, caller models.CallerIdentity) (*models.BookingListResponse, error)

	// ListOwnBookings returns the caller's bookings as customer projections
	ListOwnBookings(ctx context.Context, caller models.CallerIdentity) (*models.BookingSummaryListResponse, error)

	// AssignDriver assigns a driver to a booking and confirms it
	AssignDriver(ctx context.Context, caller models.CallerIdentity, bookingID string, req models.AssignDriverRequest) (*models.Booking, error)

	// IssueTrackingLink mints a passenger tracking token and URL
	IssueTrackingLink(ctx context.Context, caller models.CallerIdentity, bookingID string) (*models.TrackingLink, error)
}
