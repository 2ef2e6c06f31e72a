package bookings

import (
	"context"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/BidumanADT/bellwood-admin/services/bookings BookingGW

// BookingGW defines the outbound event operations of the booking service
type BookingGW interface {
	// PublishBookingCreated publishes a booking created event
	PublishBookingCreated(ctx context.Context, event models.BookingCreatedEvent) error
}
