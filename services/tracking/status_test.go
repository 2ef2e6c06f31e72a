package tracking

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
)

func TestValidateTransition_Table(t *testing.T) {
	allowed := map[models.RideStatus][]models.RideStatus{
		models.RideStatusScheduled:        {models.RideStatusOnRoute, models.RideStatusCancelled},
		models.RideStatusOnRoute:          {models.RideStatusArrived, models.RideStatusCancelled},
		models.RideStatusArrived:          {models.RideStatusPassengerOnboard, models.RideStatusCancelled},
		models.RideStatusPassengerOnboard: {models.RideStatusCompleted, models.RideStatusCancelled},
	}
	all := []models.RideStatus{
		models.RideStatusScheduled,
		models.RideStatusOnRoute,
		models.RideStatusArrived,
		models.RideStatusPassengerOnboard,
		models.RideStatusCompleted,
		models.RideStatusCancelled,
	}

	for _, current := range all {
		for _, requested := range all {
			want := false
			for _, next := range allowed[current] {
				if next == requested {
					want = true
				}
			}
			got := ValidateTransition(current, requested)
			assert.Equal(t, want, got, "%s -> %s", current, requested)
		}
	}
}

func TestValidateTransition_TerminalStatesAreDeadEnds(t *testing.T) {
	for _, terminal := range []models.RideStatus{models.RideStatusCompleted, models.RideStatusCancelled} {
		for _, requested := range []models.RideStatus{
			models.RideStatusScheduled,
			models.RideStatusOnRoute,
			models.RideStatusArrived,
			models.RideStatusPassengerOnboard,
			models.RideStatusCompleted,
			models.RideStatusCancelled,
		} {
			assert.False(t, ValidateTransition(terminal, requested), "%s -> %s", terminal, requested)
		}
	}
}

func TestValidateTransition_NoSelfLoops(t *testing.T) {
	for _, s := range []models.RideStatus{
		models.RideStatusScheduled,
		models.RideStatusOnRoute,
		models.RideStatusArrived,
		models.RideStatusPassengerOnboard,
	} {
		assert.False(t, ValidateTransition(s, s), "%s -> %s", s, s)
	}
}

func TestApplyTransition_BookingUnchangedEarlyInRide(t *testing.T) {
	// Arrange: driver heads out; the customer-facing status should not move
	ride, booking, err := ApplyTransition(models.RideStatusScheduled, models.RideStatusOnRoute, models.BookingStatusConfirmed)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusOnRoute, ride)
	assert.Equal(t, models.BookingStatusConfirmed, booking)
}

func TestApplyTransition_PickupMovesBookingToInProgress(t *testing.T) {
	ride, booking, err := ApplyTransition(models.RideStatusArrived, models.RideStatusPassengerOnboard, models.BookingStatusConfirmed)

	require.NoError(t, err)
	assert.Equal(t, models.RideStatusPassengerOnboard, ride)
	assert.Equal(t, models.BookingStatusInProgress, booking)
}

func TestApplyTransition_CompletionMirrorsToBooking(t *testing.T) {
	ride, booking, err := ApplyTransition(models.RideStatusPassengerOnboard, models.RideStatusCompleted, models.BookingStatusInProgress)

	require.NoError(t, err)
	assert.Equal(t, models.RideStatusCompleted, ride)
	assert.Equal(t, models.BookingStatusCompleted, booking)
}

func TestApplyTransition_CancellationMirrorsToBooking(t *testing.T) {
	tests := []struct {
		name    string
		current models.RideStatus
		booking models.BookingStatus
	}{
		{"before dispatch", models.RideStatusScheduled, models.BookingStatusConfirmed},
		{"en route", models.RideStatusOnRoute, models.BookingStatusConfirmed},
		{"at pickup", models.RideStatusArrived, models.BookingStatusConfirmed},
		{"mid ride", models.RideStatusPassengerOnboard, models.BookingStatusInProgress},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ride, booking, err := ApplyTransition(tt.current, models.RideStatusCancelled, tt.booking)

			require.NoError(t, err)
			assert.Equal(t, models.RideStatusCancelled, ride)
			assert.Equal(t, models.BookingStatusCancelled, booking)
		})
	}
}

func TestApplyTransition_InvalidTransitionError(t *testing.T) {
	// Act: skipping straight from Scheduled to Completed
	ride, booking, err := ApplyTransition(models.RideStatusScheduled, models.RideStatusCompleted, models.BookingStatusConfirmed)

	// Assert: both statuses are left as they were
	require.Error(t, err)
	assert.Equal(t, models.RideStatusScheduled, ride)
	assert.Equal(t, models.BookingStatusConfirmed, booking)

	assert.True(t, errors.Is(err, ErrInvalidTransition))

	var invalid *InvalidTransitionError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, models.RideStatusScheduled, invalid.Current)
	assert.Equal(t, models.RideStatusCompleted, invalid.Requested)
	assert.Contains(t, err.Error(), "Scheduled")
	assert.Contains(t, err.Error(), "Completed")
}

func TestApplyTransition_TerminalStateRejectsFurtherChanges(t *testing.T) {
	_, _, err := ApplyTransition(models.RideStatusCompleted, models.RideStatusCancelled, models.BookingStatusCompleted)

	assert.True(t, errors.Is(err, ErrInvalidTransition))
}

func TestTerminalReason(t *testing.T) {
	assert.Equal(t, "completed", TerminalReason(models.RideStatusCompleted))
	assert.Equal(t, "cancelled", TerminalReason(models.RideStatusCancelled))
	assert.Equal(t, "", TerminalReason(models.RideStatusOnRoute))
	assert.Equal(t, "", TerminalReason(models.RideStatusScheduled))
}
