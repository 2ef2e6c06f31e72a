package tracking

import (
	"sync"
	"time"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
)

// ActiveLocation is one non-expired store entry as seen by readers
type ActiveLocation struct {
	RideID     string
	DriverUID  string
	Sample     models.LocationSample
	ReceivedAt time.Time
	AgeSeconds int64
}

// locationEntry holds the latest sample for one ride. The mutex makes the
// rate-limit check-and-set atomic per ride; removed marks an entry that
// lost a race with Remove so writers retry against a fresh one.
type locationEntry struct {
	mu         sync.Mutex
	driverUID  string
	sample     models.LocationSample
	receivedAt time.Time
	removed    bool
}

// LocationStore keeps the latest GPS sample per active ride in memory.
// Writes are rate limited per ride and entries expire after a TTL. The
// store is the only mutable shared state in the tracking core; all
// mutation goes through the per-entry mutex, never a global lock.
type LocationStore struct {
	entries     sync.Map // rideID -> *locationEntry
	minInterval time.Duration
	ttl         time.Duration
	now         func() time.Time
}

// NewLocationStore creates a store with the configured minimum update
// interval and sample TTL
func NewLocationStore(cfg models.TrackingConfig) *LocationStore {
	minInterval := time.Duration(cfg.MinUpdateIntervalSec) * time.Second
	if minInterval <= 0 {
		minInterval = 10 * time.Second
	}
	ttl := time.Duration(cfg.LocationTTLMin) * time.Minute
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &LocationStore{
		minInterval: minInterval,
		ttl:         ttl,
		now:         time.Now,
	}
}

// TryUpdate records a sample for the ride unless a previous write was
// accepted less than the minimum interval ago. The check-and-set is
// atomic per ride: of two concurrent writers racing inside the window,
// at most one succeeds. Returns whether the sample was stored.
func (s *LocationStore) TryUpdate(rideID, driverUID string, sample models.LocationSample) bool {
	for {
		v, _ := s.entries.LoadOrStore(rideID, &locationEntry{})
		entry := v.(*locationEntry)

		entry.mu.Lock()
		if entry.removed {
			// Lost a race with Remove; the map slot holds a dead entry
			entry.mu.Unlock()
			continue
		}

		now := s.now()
		if !entry.receivedAt.IsZero() && now.Sub(entry.receivedAt) < s.minInterval {
			entry.mu.Unlock()
			return false
		}

		entry.driverUID = driverUID
		entry.sample = sample
		entry.receivedAt = now
		entry.mu.Unlock()
		return true
	}
}

// GetLatest returns the ride's latest sample. An entry older than the TTL
// is logically absent even though it has not been evicted yet.
func (s *LocationStore) GetLatest(rideID string) (ActiveLocation, bool) {
	v, ok := s.entries.Load(rideID)
	if !ok {
		return ActiveLocation{}, false
	}
	entry := v.(*locationEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.removed || entry.receivedAt.IsZero() {
		return ActiveLocation{}, false
	}

	age := s.now().Sub(entry.receivedAt)
	if age >= s.ttl {
		return ActiveLocation{}, false
	}

	return ActiveLocation{
		RideID:     rideID,
		DriverUID:  entry.driverUID,
		Sample:     entry.sample,
		ReceivedAt: entry.receivedAt,
		AgeSeconds: int64(age.Seconds()),
	}, true
}

// Remove evicts the ride's entry immediately. Idempotent; used on
// terminal status transitions.
func (s *LocationStore) Remove(rideID string) {
	v, ok := s.entries.Load(rideID)
	if !ok {
		return
	}
	entry := v.(*locationEntry)

	entry.mu.Lock()
	entry.removed = true
	entry.mu.Unlock()

	s.entries.Delete(rideID)
}

// ListActive returns a point-in-time snapshot of all non-expired entries.
// Safe to call concurrently with writers. Entries past the TTL are pruned
// as the snapshot ranges over them.
func (s *LocationStore) ListActive() []ActiveLocation {
	var active []ActiveLocation

	s.entries.Range(func(key, value interface{}) bool {
		rideID := key.(string)
		entry := value.(*locationEntry)

		entry.mu.Lock()
		if entry.removed || entry.receivedAt.IsZero() {
			entry.mu.Unlock()
			return true
		}

		age := s.now().Sub(entry.receivedAt)
		if age >= s.ttl {
			entry.removed = true
			entry.mu.Unlock()
			s.entries.Delete(rideID)
			return true
		}

		active = append(active, ActiveLocation{
			RideID:     rideID,
			DriverUID:  entry.driverUID,
			Sample:     entry.sample,
			ReceivedAt: entry.receivedAt,
			AgeSeconds: int64(age.Seconds()),
		})
		entry.mu.Unlock()
		return true
	})

	return active
}
