package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/logger"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
	"github.com/BidumanADT/bellwood-admin/internal/utils"
	"github.com/BidumanADT/bellwood-admin/services/notifier"
)

// notifierUC implements the notifier.NotifierUC interface
type notifierUC struct {
	cfg *models.Config
}

// NewNotifierUC creates a new notifier use case
func NewNotifierUC(cfg *models.Config) (notifier.NotifierUC, error) {
	return &notifierUC{
		cfg: cfg,
	}, nil
}

// NotifyBookingCreated dispatches the booking confirmation to the
// booker and, when it differs, the passenger
func (uc *notifierUC) NotifyBookingCreated(ctx context.Context, event models.BookingCreatedEvent) error {
	if event.BookingID == "" {
		return fmt.Errorf("booking created event missing booking id")
	}

	subject := fmt.Sprintf("Booking received for %s", event.ScheduledAt.Format(time.RFC1123))
	for _, recipient := range bookingRecipients(event) {
		uc.dispatch(ctx, recipient, subject,
			logger.String("booking_id", event.BookingID),
			logger.String("passenger_name", event.PassengerName))
	}

	return nil
}

// NotifyRideStatusChanged dispatches the ride progress update
func (uc *notifierUC) NotifyRideStatusChanged(ctx context.Context, event models.RideStatusChangedEvent) error {
	if event.RideID == "" {
		return fmt.Errorf("ride status event missing ride id")
	}

	uc.dispatch(ctx, "", subjectForStatus(event.NewStatus),
		logger.String("ride_id", event.RideID),
		logger.String("old_status", string(event.OldStatus)),
		logger.String("new_status", string(event.NewStatus)),
		logger.String("driver_uid", event.DriverUID))

	return nil
}

// NotifyTrackingStopped dispatches the end-of-tracking notice
func (uc *notifierUC) NotifyTrackingStopped(ctx context.Context, event models.TrackingStoppedEvent) error {
	if event.RideID == "" {
		return fmt.Errorf("tracking stopped event missing ride id")
	}

	uc.dispatch(ctx, "", "Live tracking ended",
		logger.String("ride_id", event.RideID),
		logger.String("reason", event.Reason))

	return nil
}

// dispatch is the delivery sink. It logs the notification; swapping in
// a mail provider means replacing this method only. Recipient addresses
// are masked before they reach the logs.
func (uc *notifierUC) dispatch(ctx context.Context, recipient, subject string, fields ...logger.Field) {
	all := append([]logger.Field{
		logger.String("recipient", utils.MaskEmail(recipient)),
		logger.String("subject", subject),
	}, fields...)
	logger.InfoCtx(ctx, "Notification dispatched", all...)
}

func bookingRecipients(event models.BookingCreatedEvent) []string {
	recipients := make([]string, 0, 2)
	if event.BookerEmail != "" {
		recipients = append(recipients, event.BookerEmail)
	}
	if event.PassengerEmail != "" && event.PassengerEmail != event.BookerEmail {
		recipients = append(recipients, event.PassengerEmail)
	}
	return recipients
}

func subjectForStatus(status models.RideStatus) string {
	switch status {
	case models.RideStatusOnRoute:
		return "Your chauffeur is on the way"
	case models.RideStatusArrived:
		return "Your chauffeur has arrived"
	case models.RideStatusPassengerOnboard:
		return "Your trip is underway"
	case models.RideStatusCompleted:
		return "Trip completed"
	case models.RideStatusCancelled:
		return "Booking cancelled"
	default:
		return fmt.Sprintf("Ride update: %s", status)
	}
}
