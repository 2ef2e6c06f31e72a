package tracking

import (
	"context"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/logger"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
	"github.com/BidumanADT/bellwood-admin/internal/utils"
)

// geohash cell size for the dispatch map, ~150m at this precision
const geohashPrecision = 7

// Enricher joins location snapshots with booking metadata into broadcast
// payloads. Both the scheduler and the staff overview read go through it.
type Enricher struct {
	lookup BookingLookup
}

func NewEnricher(lookup BookingLookup) *Enricher {
	return &Enricher{lookup: lookup}
}

// Enrich builds the broadcast payload for one tracked ride. A failed
// driver name lookup leaves the name empty rather than failing the entry.
func (e *Enricher) Enrich(ctx context.Context, loc ActiveLocation, booking *models.Booking) models.EnrichedLocation {
	driverName := ""
	if loc.DriverUID != "" {
		name, err := e.lookup.GetDriverName(ctx, loc.DriverUID)
		if err != nil {
			logger.Debug("Driver name lookup failed",
				logger.String("driver_uid", loc.DriverUID),
				logger.Err(err))
		} else {
			driverName = name
		}
	}

	position := utils.GeoPoint{Latitude: loc.Sample.Latitude, Longitude: loc.Sample.Longitude}
	pickup := utils.GeoPoint{Latitude: booking.PickupLat, Longitude: booking.PickupLon}

	return models.EnrichedLocation{
		RideID:               loc.RideID,
		DriverUID:            loc.DriverUID,
		DriverName:           driverName,
		PassengerName:        booking.PassengerName,
		Pickup:               booking.Pickup(),
		Dropoff:              booking.Dropoff(),
		CurrentStatus:        booking.RideStatus,
		Latitude:             loc.Sample.Latitude,
		Longitude:            loc.Sample.Longitude,
		Timestamp:            loc.Sample.Timestamp,
		Heading:              loc.Sample.Heading,
		Speed:                loc.Sample.Speed,
		AgeSeconds:           loc.AgeSeconds,
		Geohash:              utils.EncodePoint(loc.Sample.Latitude, loc.Sample.Longitude, geohashPrecision),
		DistanceFromPickupKm: utils.CalculateDistance(position, pickup),
	}
}
