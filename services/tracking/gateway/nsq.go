package gateway

import (
	"context"
	"fmt"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/circuitbreaker"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/constants"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/logger"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/retry"
	"github.com/BidumanADT/bellwood-admin/services/tracking"
)

// breakerName identifies the shared circuit breaker for the NSQ daemon;
// all topics go through the same connection, so they share one breaker.
const breakerName = "nsq-producer"

// Publisher is the producer capability the gateway needs
type Publisher interface {
	Publish(topic string, message interface{}) error
}

type trackingGW struct {
	publisher Publisher
	breaker   *circuitbreaker.Manager
	retrier   *retry.Retrier
}

// NewTrackingGW creates a new tracking gateway publishing over NSQ
func NewTrackingGW(publisher Publisher, log *logger.ZapLogger) tracking.TrackingGW {
	return &trackingGW{
		publisher: publisher,
		breaker:   circuitbreaker.NewManager(log),
		retrier:   retry.NewWithDefaults(log),
	}
}

// PublishRideStatusChanged publishes a ride status transition event
func (g *trackingGW) PublishRideStatusChanged(ctx context.Context, event models.RideStatusChangedEvent) error {
	if err := g.publish(ctx, constants.TopicRideStatusChanged, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish ride status event",
			logger.String("ride_id", event.RideID),
			logger.String("new_status", string(event.NewStatus)),
			logger.Err(err))
		return fmt.Errorf("failed to publish ride status event: %w", err)
	}

	return nil
}

// PublishTrackingStopped publishes a tracking stopped event for a ride
// that reached a terminal status
func (g *trackingGW) PublishTrackingStopped(ctx context.Context, event models.TrackingStoppedEvent) error {
	if err := g.publish(ctx, constants.TopicTrackingStopped, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish tracking stopped event",
			logger.String("ride_id", event.RideID),
			logger.String("reason", event.Reason),
			logger.Err(err))
		return fmt.Errorf("failed to publish tracking stopped event: %w", err)
	}

	return nil
}

// publish sends the payload with circuit breaker and retry protection
func (g *trackingGW) publish(ctx context.Context, topic string, payload interface{}) error {
	return g.breaker.Execute(ctx, breakerName, func(ctx context.Context) error {
		return g.retrier.Execute(ctx, func(ctx context.Context) error {
			return g.publisher.Publish(topic, payload)
		})
	})
}
