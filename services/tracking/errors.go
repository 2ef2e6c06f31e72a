package tracking

import (
	"errors"
	"fmt"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
)

// Sentinel errors for the tracking domain. Handlers map these to HTTP
// statuses; callers match with errors.Is.
var (
	// ErrRateLimited rejects a write inside the minimum update interval.
	// Expected under normal operation, not a fault.
	ErrRateLimited = errors.New("location update rate limited")

	// ErrRideNotActive rejects a write from the assigned driver while the
	// ride is not in a trackable status
	ErrRideNotActive = errors.New("ride is not in a trackable status")

	// ErrInvalidTransition rejects a status edge not present in the
	// transition table
	ErrInvalidTransition = errors.New("invalid ride status transition")

	// ErrUnauthorized rejects a caller failing a role or ownership check
	ErrUnauthorized = errors.New("caller is not authorized")

	// ErrRideNotFound covers both an unknown ride and a caller that is not
	// the assigned driver; the two are indistinguishable on the write path
	ErrRideNotFound = errors.New("ride not found")

	// ErrNoRecentLocation is the absent-data read result: no sample stored,
	// or the stored sample aged past the TTL
	ErrNoRecentLocation = errors.New("no recent location for ride")
)

// InvalidTransitionError names the rejected edge. It matches
// ErrInvalidTransition under errors.Is.
type InvalidTransitionError struct {
	Current   models.RideStatus
	Requested models.RideStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid ride status transition from %s to %s", e.Current, e.Requested)
}

// Is matches the ErrInvalidTransition sentinel
func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
