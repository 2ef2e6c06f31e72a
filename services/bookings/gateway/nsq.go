package gateway

import (
	"context"
	"fmt"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/circuitbreaker"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/constants"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/logger"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/retry"
	"github.com/BidumanADT/bellwood-admin/services/bookings"
)

// breakerName identifies the shared circuit breaker for the NSQ daemon
const breakerName = "nsq-producer"

// Publisher is the producer capability the gateway needs
type Publisher interface {
	Publish(topic string, message interface{}) error
}

type bookingGW struct {
	publisher Publisher
	breaker   *circuitbreaker.Manager
	retrier   *retry.Retrier
}

// NewBookingGW creates a new booking gateway publishing over NSQ
func NewBookingGW(publisher Publisher, log *logger.ZapLogger) bookings.BookingGW {
	return &bookingGW{
		publisher: publisher,
		breaker:   circuitbreaker.NewManager(log),
		retrier:   retry.NewWithDefaults(log),
	}
}

// PublishBookingCreated announces a newly created booking
func (g *bookingGW) PublishBookingCreated(ctx context.Context, event models.BookingCreatedEvent) error {
	if err := g.publish(ctx, constants.TopicBookingCreated, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish booking created event",
			logger.String("booking_id", event.BookingID),
			logger.Err(err))
		return fmt.Errorf("failed to publish booking created event: %w", err)
	}

	return nil
}

// publish sends the payload with circuit breaker and retry protection
func (g *bookingGW) publish(ctx context.Context, topic string, payload interface{}) error {
	return g.breaker.Execute(ctx, breakerName, func(ctx context.Context) error {
		return g.retrier.Execute(ctx, func(ctx context.Context) error {
			return g.publisher.Publish(topic, payload)
		})
	})
}
