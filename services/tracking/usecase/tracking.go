package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/constants"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/logger"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
	"github.com/BidumanADT/bellwood-admin/services/tracking"
)

// trackingUC implements the tracking.TrackingUC interface
type trackingUC struct {
	cfg      *models.Config
	store    *tracking.LocationStore
	gate     *tracking.AuthorizationGate
	registry *tracking.SubscriptionRegistry
	enricher *tracking.Enricher
	lookup   tracking.BookingLookup
	gw       tracking.TrackingGW

	// statusLocks serializes validate-then-apply per ride so two
	// concurrent transitions cannot both read the same current status
	statusLocks sync.Map
}

// NewTrackingUC creates a new tracking use case
func NewTrackingUC(
	cfg *models.Config,
	store *tracking.LocationStore,
	registry *tracking.SubscriptionRegistry,
	lookup tracking.BookingLookup,
	gw tracking.TrackingGW,
) (tracking.TrackingUC, error) {
	return &trackingUC{
		cfg:      cfg,
		store:    store,
		gate:     tracking.NewAuthorizationGate(),
		registry: registry,
		enricher: tracking.NewEnricher(lookup),
		lookup:   lookup,
		gw:       gw,
	}, nil
}

// UpdateLocation records a driver position report for a ride
func (uc *trackingUC) UpdateLocation(ctx context.Context, caller models.CallerIdentity, rideID string, req models.LocationUpdateRequest) (*models.LocationUpdateAck, error) {
	booking, err := uc.lookup.GetBooking(ctx, rideID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve ride %s: %w", rideID, err)
	}
	if booking == nil {
		return nil, tracking.ErrRideNotFound
	}

	if err := uc.gate.CanWriteLocation(caller, booking); err != nil {
		return nil, err
	}

	timestamp := models.Now()
	if req.Timestamp != nil {
		timestamp = *req.Timestamp
	}
	sample := models.LocationSample{
		RideID:    rideID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Timestamp: timestamp,
		Heading:   req.Heading,
		Speed:     req.Speed,
		Accuracy:  req.Accuracy,
	}

	if !uc.store.TryUpdate(rideID, caller.DriverUID, sample) {
		return nil, tracking.ErrRateLimited
	}

	logger.DebugCtx(ctx, "Location update accepted",
		logger.String("ride_id", rideID),
		logger.String("driver_uid", caller.DriverUID))

	return &models.LocationUpdateAck{RideID: rideID, Timestamp: timestamp}, nil
}

// GetRideLocation returns the latest sample for staff and the assigned driver
func (uc *trackingUC) GetRideLocation(ctx context.Context, caller models.CallerIdentity, rideID string) (*models.DriverLocationView, error) {
	booking, err := uc.lookup.GetBooking(ctx, rideID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve ride %s: %w", rideID, err)
	}
	if booking == nil {
		return nil, tracking.ErrRideNotFound
	}

	if !uc.gate.CanReadLocation(caller, booking) {
		return nil, tracking.ErrUnauthorized
	}

	loc, ok := uc.store.GetLatest(rideID)
	if !ok {
		return nil, tracking.ErrNoRecentLocation
	}

	driverName := ""
	if loc.DriverUID != "" {
		if name, err := uc.lookup.GetDriverName(ctx, loc.DriverUID); err == nil {
			driverName = name
		}
	}

	return &models.DriverLocationView{
		RideID:     rideID,
		DriverUID:  loc.DriverUID,
		DriverName: driverName,
		Latitude:   loc.Sample.Latitude,
		Longitude:  loc.Sample.Longitude,
		Timestamp:  loc.Sample.Timestamp,
		Heading:    loc.Sample.Heading,
		Speed:      loc.Sample.Speed,
		Accuracy:   loc.Sample.Accuracy,
		AgeSeconds: loc.AgeSeconds,
		Status:     booking.RideStatus,
	}, nil
}

// GetPassengerView returns the customer-facing tracking read. The no-data
// case is a normal response with trackingActive false, never an error.
func (uc *trackingUC) GetPassengerView(ctx context.Context, caller models.CallerIdentity, rideID string) (*models.PassengerTrackingView, error) {
	booking, err := uc.lookup.GetBooking(ctx, rideID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve ride %s: %w", rideID, err)
	}
	if booking == nil {
		return nil, tracking.ErrRideNotFound
	}

	if !uc.gate.CanReadLocation(caller, booking) {
		return nil, tracking.ErrUnauthorized
	}

	loc, ok := uc.store.GetLatest(rideID)
	if !ok {
		return &models.PassengerTrackingView{
			RideID:         rideID,
			TrackingActive: false,
			Message:        "Tracking has not started for this ride",
			CurrentStatus:  booking.RideStatus,
		}, nil
	}

	driverName := ""
	if loc.DriverUID != "" {
		if name, err := uc.lookup.GetDriverName(ctx, loc.DriverUID); err == nil {
			driverName = name
		}
	}

	return &models.PassengerTrackingView{
		RideID:         rideID,
		TrackingActive: true,
		CurrentStatus:  booking.RideStatus,
		DriverName:     driverName,
		Latitude:       &loc.Sample.Latitude,
		Longitude:      &loc.Sample.Longitude,
		Timestamp:      &loc.Sample.Timestamp,
		AgeSeconds:     &loc.AgeSeconds,
	}, nil
}

// ListActiveLocations returns the staff overview of every tracked ride
func (uc *trackingUC) ListActiveLocations(ctx context.Context, caller models.CallerIdentity) (*models.ActiveLocationsResponse, error) {
	if !caller.IsStaff() {
		return nil, tracking.ErrUnauthorized
	}

	snapshot := uc.store.ListActive()
	locations := make([]models.EnrichedLocation, 0, len(snapshot))
	for _, loc := range snapshot {
		booking, err := uc.lookup.GetBooking(ctx, loc.RideID)
		if err != nil || booking == nil {
			logger.WarnCtx(ctx, "Skipping unresolvable tracked ride in overview",
				logger.String("ride_id", loc.RideID),
				logger.Err(err))
			continue
		}
		locations = append(locations, uc.enricher.Enrich(ctx, loc, booking))
	}

	return &models.ActiveLocationsResponse{
		Count:     len(locations),
		Locations: locations,
		Timestamp: models.Now(),
	}, nil
}

// UpdateRideStatus applies a ride status transition. Validate-then-apply
// is atomic per ride; a terminal result evicts the location entry and
// stops tracking.
func (uc *trackingUC) UpdateRideStatus(ctx context.Context, caller models.CallerIdentity, rideID string, req models.StatusUpdateRequest) (*models.StatusUpdateResponse, error) {
	unlock := uc.lockRide(rideID)
	defer unlock()

	booking, err := uc.lookup.GetBooking(ctx, rideID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve ride %s: %w", rideID, err)
	}
	if booking == nil {
		return nil, tracking.ErrRideNotFound
	}

	if !uc.canUpdateStatus(caller, booking) {
		return nil, tracking.ErrUnauthorized
	}

	oldStatus := booking.RideStatus
	newRide, newBooking, err := tracking.ApplyTransition(oldStatus, req.NewStatus, booking.BookingStatus)
	if err != nil {
		return nil, err
	}

	if err := uc.lookup.UpdateRideStatus(ctx, rideID, newRide, newBooking); err != nil {
		return nil, fmt.Errorf("failed to persist status change for ride %s: %w", rideID, err)
	}

	timestamp := models.Now()
	logger.InfoCtx(ctx, "Ride status changed",
		logger.String("ride_id", rideID),
		logger.String("old_status", string(oldStatus)),
		logger.String("new_status", string(newRide)))

	uc.notifyStatusChanged(ctx, booking, oldStatus, newRide, newBooking, timestamp)

	if newRide.IsTerminal() {
		uc.stopTracking(ctx, rideID, booking.AssignedDriver(), newRide, timestamp)
	}

	return &models.StatusUpdateResponse{
		Success:       true,
		RideID:        rideID,
		NewStatus:     newRide,
		BookingStatus: newBooking,
		Timestamp:     timestamp,
	}, nil
}

// canUpdateStatus allows back-office staff and the assigned driver to
// advance a ride
func (uc *trackingUC) canUpdateStatus(caller models.CallerIdentity, booking *models.Booking) bool {
	if caller.IsStaff() {
		return true
	}
	return caller.DriverUID != "" && caller.DriverUID == booking.AssignedDriver()
}

// lockRide acquires the per-ride transition lock. Unrelated rides never
// serialize against each other.
func (uc *trackingUC) lockRide(rideID string) func() {
	v, _ := uc.statusLocks.LoadOrStore(rideID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// notifyStatusChanged pushes the change to subscribers and the message
// queue. Delivery is best effort and never fails the request.
func (uc *trackingUC) notifyStatusChanged(ctx context.Context, booking *models.Booking, oldStatus, newStatus models.RideStatus, bookingStatus models.BookingStatus, at time.Time) {
	event := models.RideStatusChanged{
		RideID:        booking.ID,
		OldStatus:     oldStatus,
		NewStatus:     newStatus,
		BookingStatus: bookingStatus,
		Timestamp:     at,
	}

	uc.broadcastToRideGroups(booking.ID, booking.AssignedDriver(), constants.EventRideStatusChanged, event)

	if err := uc.gw.PublishRideStatusChanged(ctx, models.RideStatusChangedEvent{
		RideID:        booking.ID,
		OldStatus:     oldStatus,
		NewStatus:     newStatus,
		BookingStatus: bookingStatus,
		DriverUID:     booking.AssignedDriver(),
		Timestamp:     at,
	}); err != nil {
		logger.WarnCtx(ctx, "Failed to publish ride status change",
			logger.String("ride_id", booking.ID),
			logger.Err(err))
	}
}

// stopTracking evicts the ride's location entry and announces the end of
// tracking with the terminal reason.
func (uc *trackingUC) stopTracking(ctx context.Context, rideID, driverUID string, terminal models.RideStatus, at time.Time) {
	uc.store.Remove(rideID)

	reason := tracking.TerminalReason(terminal)
	uc.broadcastToRideGroups(rideID, driverUID, constants.EventTrackingStopped, models.TrackingStopped{
		RideID:    rideID,
		Reason:    reason,
		Timestamp: at,
	})

	if err := uc.gw.PublishTrackingStopped(ctx, models.TrackingStoppedEvent{
		RideID:    rideID,
		Reason:    reason,
		Timestamp: at,
	}); err != nil {
		logger.WarnCtx(ctx, "Failed to publish tracking stopped",
			logger.String("ride_id", rideID),
			logger.Err(err))
	}
}

// broadcastToRideGroups sends an event to the ride, driver and admin
// groups. Group failures are isolated inside the registry.
func (uc *trackingUC) broadcastToRideGroups(rideID, driverUID, event string, data interface{}) {
	uc.registry.Broadcast(tracking.RideGroup(rideID), event, data)
	if driverUID != "" {
		uc.registry.Broadcast(tracking.DriverGroup(driverUID), event, data)
	}
	uc.registry.Broadcast(constants.GroupAdmin, event, data)
}
