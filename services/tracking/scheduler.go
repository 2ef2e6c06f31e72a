package tracking

import (
	"context"
	"sync"
	"time"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/constants"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/logger"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
)

const defaultBroadcastInterval = 5 * time.Second

// BroadcastScheduler periodically pushes enriched location updates to all
// subscribed connections. It runs one background goroutine; everything it
// reads is either immutable or safe for concurrent use.
type BroadcastScheduler struct {
	store    *LocationStore
	lookup   BookingLookup
	enricher *Enricher
	registry *SubscriptionRegistry
	interval time.Duration
}

func NewBroadcastScheduler(cfg models.TrackingConfig, store *LocationStore, lookup BookingLookup, registry *SubscriptionRegistry) *BroadcastScheduler {
	interval := time.Duration(cfg.BroadcastIntervalSec) * time.Second
	if interval <= 0 {
		interval = defaultBroadcastInterval
	}
	return &BroadcastScheduler{
		store:    store,
		lookup:   lookup,
		enricher: NewEnricher(lookup),
		registry: registry,
		interval: interval,
	}
}

// Run drives the broadcast loop until ctx is cancelled. Cancellation is
// observed between ticks; a tick already in flight finishes its sends
// before Run returns. Callers run this in its own goroutine.
func (s *BroadcastScheduler) Run(ctx context.Context) {
	logger.Info("Broadcast scheduler started",
		logger.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Broadcast scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick broadcasts one snapshot of the active rides. A panic anywhere in
// the pass is recovered so the loop survives to the next tick.
func (s *BroadcastScheduler) tick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Recovered panic in broadcast tick",
				logger.Any("panic", r))
		}
	}()

	for _, loc := range s.store.ListActive() {
		booking, err := s.lookup.GetBooking(ctx, loc.RideID)
		if err != nil {
			logger.Warn("Skipping unresolvable tracked ride",
				logger.String("ride_id", loc.RideID),
				logger.Err(err))
			continue
		}
		if booking == nil {
			logger.Warn("Skipping tracked ride with no booking",
				logger.String("ride_id", loc.RideID))
			continue
		}

		s.publish(loc, s.enricher.Enrich(ctx, loc, booking))
	}
}

// publish fans the payload out to the ride, driver and admin groups
// concurrently. Each group is delivered independently; a failure in one
// never blocks or drops the others.
func (s *BroadcastScheduler) publish(loc ActiveLocation, payload models.EnrichedLocation) {
	groups := []string{RideGroup(loc.RideID), constants.GroupAdmin}
	if loc.DriverUID != "" {
		groups = append(groups, DriverGroup(loc.DriverUID))
	}

	var wg sync.WaitGroup
	for _, group := range groups {
		wg.Add(1)
		go func(g string) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Recovered panic publishing to group",
						logger.String("group", g),
						logger.Any("panic", r))
				}
			}()
			s.registry.Broadcast(g, constants.EventLocationUpdate, payload)
		}(group)
	}
	wg.Wait()
}
