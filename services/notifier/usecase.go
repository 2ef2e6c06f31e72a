package notifier

import (
	"context"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/BidumanADT/bellwood-admin/services/notifier NotifierUC

// NotifierUC defines the notification dispatch contract. The current
// sink logs each notification; a mail provider slots in behind the same
// interface.
type NotifierUC interface {
	NotifyBookingCreated(ctx context.Context, event models.BookingCreatedEvent) error
	NotifyRideStatusChanged(ctx context.Context, event models.RideStatusChangedEvent) error
	NotifyTrackingStopped(ctx context.Context, event models.TrackingStoppedEvent) error
}
