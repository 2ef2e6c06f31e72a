package tracking

import (
	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
)

// statusTransitions holds the allowed ride status progressions. Absence of
// a key or a target means the transition is rejected.
var statusTransitions = map[models.RideStatus][]models.RideStatus{
	models.RideStatusScheduled:        {models.RideStatusOnRoute, models.RideStatusCancelled},
	models.RideStatusOnRoute:          {models.RideStatusArrived, models.RideStatusCancelled},
	models.RideStatusArrived:          {models.RideStatusPassengerOnboard, models.RideStatusCancelled},
	models.RideStatusPassengerOnboard: {models.RideStatusCompleted, models.RideStatusCancelled},
	models.RideStatusCompleted:        {},
	models.RideStatusCancelled:        {},
}

// ValidateTransition reports whether requested is a legal next status from
// current. Terminal statuses have no legal next status.
func ValidateTransition(current, requested models.RideStatus) bool {
	for _, next := range statusTransitions[current] {
		if next == requested {
			return true
		}
	}
	return false
}

// ApplyTransition validates the requested ride status change and computes
// the booking status that should accompany it. The booking status only
// moves on the milestones customers see: pickup, completion, cancellation.
// All other ride progress leaves it untouched.
func ApplyTransition(current, requested models.RideStatus, booking models.BookingStatus) (models.RideStatus, models.BookingStatus, error) {
	if !ValidateTransition(current, requested) {
		return current, booking, &InvalidTransitionError{Current: current, Requested: requested}
	}

	switch requested {
	case models.RideStatusPassengerOnboard:
		booking = models.BookingStatusInProgress
	case models.RideStatusCompleted:
		booking = models.BookingStatusCompleted
	case models.RideStatusCancelled:
		booking = models.BookingStatusCancelled
	}
	return requested, booking, nil
}

// TerminalReason maps a terminal ride status to the reason carried on
// tracking stop events. It returns "" for non-terminal statuses.
func TerminalReason(status models.RideStatus) string {
	switch status {
	case models.RideStatusCompleted:
		return "completed"
	case models.RideStatusCancelled:
		return "cancelled"
	default:
		return ""
	}
}
