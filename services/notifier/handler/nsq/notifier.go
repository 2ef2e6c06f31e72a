package nsq

import (
	"context"
	"fmt"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/constants"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
	nsqpkg "github.com/BidumanADT/bellwood-admin/internal/pkg/nsq"
	"github.com/BidumanADT/bellwood-admin/services/notifier"
)

// NotifierHandler consumes the lifecycle topics and hands each event to
// the notifier use case
type NotifierHandler struct {
	notifierUC notifier.NotifierUC
	consumers  []*nsqpkg.Consumer
}

// NewNotifierHandler creates a new NSQ notifier handler
func NewNotifierHandler(notifierUC notifier.NotifierUC) *NotifierHandler {
	return &NotifierHandler{
		notifierUC: notifierUC,
	}
}

// InitConsumers subscribes to the lifecycle topics. Handler errors
// requeue the message.
func (h *NotifierHandler) InitConsumers(cfg models.NSQConfig) error {
	subscriptions := []struct {
		topic   string
		handler nsqpkg.MessageHandler
	}{
		{constants.TopicBookingCreated, h.handleBookingCreated},
		{constants.TopicRideStatusChanged, h.handleRideStatusChanged},
		{constants.TopicTrackingStopped, h.handleTrackingStopped},
	}

	for _, sub := range subscriptions {
		consumer, err := nsqpkg.NewConsumer(sub.topic, cfg.Channel, cfg.NSQDAddress, sub.handler)
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", sub.topic, err)
		}
		h.consumers = append(h.consumers, consumer)
	}

	return nil
}

// Stop gracefully stops all consumers
func (h *NotifierHandler) Stop() {
	for _, consumer := range h.consumers {
		consumer.Stop()
	}
}

func (h *NotifierHandler) handleBookingCreated(message []byte) error {
	var event models.BookingCreatedEvent
	if err := nsqpkg.UnmarshalMessage(message, &event); err != nil {
		return err
	}
	return h.notifierUC.NotifyBookingCreated(context.Background(), event)
}

func (h *NotifierHandler) handleRideStatusChanged(message []byte) error {
	var event models.RideStatusChangedEvent
	if err := nsqpkg.UnmarshalMessage(message, &event); err != nil {
		return err
	}
	return h.notifierUC.NotifyRideStatusChanged(context.Background(), event)
}

func (h *NotifierHandler) handleTrackingStopped(message []byte) error {
	var event models.TrackingStoppedEvent
	if err := nsqpkg.UnmarshalMessage(message, &event); err != nil {
		return err
	}
	return h.notifierUC.NotifyTrackingStopped(context.Background(), event)
}
