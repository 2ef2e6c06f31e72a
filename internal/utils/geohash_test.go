package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDistance(t *testing.T) {
	tests := []struct {
		name      string
		point1    GeoPoint
		point2    GeoPoint
		expected  float64
		tolerance float64
	}{
		{
			name: "Same point",
			point1: GeoPoint{
				Latitude:  41.8781,
				Longitude: -87.6298,
			},
			point2: GeoPoint{
				Latitude:  41.8781,
				Longitude: -87.6298,
			},
			expected:  0.0,
			tolerance: 0.001,
		},
		{
			name: "O'Hare to downtown Chicago",
			point1: GeoPoint{
				Latitude:  41.9742, // ORD
				Longitude: -87.9073,
			},
			point2: GeoPoint{
				Latitude:  41.8781, // The Loop
				Longitude: -87.6298,
			},
			expected:  25.0,
			tolerance: 3.0,
		},
		{
			name: "Bellwood to Midway",
			point1: GeoPoint{
				Latitude:  41.8814, // Bellwood
				Longitude: -87.8831,
			},
			point2: GeoPoint{
				Latitude:  41.7868, // MDW
				Longitude: -87.7522,
			},
			expected:  15.0,
			tolerance: 3.0,
		},
		{
			name: "Cross equator",
			point1: GeoPoint{
				Latitude:  -1.0,
				Longitude: 100.0,
			},
			point2: GeoPoint{
				Latitude:  1.0,
				Longitude: 100.0,
			},
			expected:  222.4, // 2 degrees of latitude
			tolerance: 5.0,
		},
		{
			name: "Cross 180th meridian",
			point1: GeoPoint{
				Latitude:  0.0,
				Longitude: 179.0,
			},
			point2: GeoPoint{
				Latitude:  0.0,
				Longitude: -179.0,
			},
			expected:  222.4, // 2 degrees of longitude at the equator
			tolerance: 5.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateDistance(tt.point1, tt.point2)

			assert.GreaterOrEqual(t, result, 0.0, "Distance should be non-negative")
			assert.InDelta(t, tt.expected, result, tt.tolerance,
				"Distance should be within tolerance of expected value")
		})
	}
}

func TestCalculateDistance_EdgeCases(t *testing.T) {
	t.Run("North and South Poles", func(t *testing.T) {
		northPole := GeoPoint{Latitude: 90.0, Longitude: 0.0}
		southPole := GeoPoint{Latitude: -90.0, Longitude: 0.0}

		distance := CalculateDistance(northPole, southPole)

		expected := math.Pi * 6371.0
		assert.InDelta(t, expected, distance, 10.0, "Distance between poles should be approximately π * R")
	})

	t.Run("Very small distance", func(t *testing.T) {
		point1 := GeoPoint{Latitude: 0.0, Longitude: 0.0}
		point2 := GeoPoint{Latitude: 0.0001, Longitude: 0.0001}

		distance := CalculateDistance(point1, point2)

		assert.Greater(t, distance, 0.0, "Distance should be positive")
		assert.Less(t, distance, 0.1, "Distance should be very small")
	})
}

func TestEncodePoint(t *testing.T) {
	t.Run("Encode and decode round trip", func(t *testing.T) {
		lat, lon := 41.8781, -87.6298

		hash := EncodePoint(lat, lon, 7)
		assert.Len(t, hash, 7)

		decodedLat, decodedLon := DecodeGeohash(hash)
		assert.InDelta(t, lat, decodedLat, 0.01)
		assert.InDelta(t, lon, decodedLon, 0.01)
	})

	t.Run("Higher precision yields longer hash", func(t *testing.T) {
		short := EncodePoint(41.8781, -87.6298, 5)
		long := EncodePoint(41.8781, -87.6298, 9)

		assert.Len(t, short, 5)
		assert.Len(t, long, 9)
		// Longer hash shares the shorter prefix
		assert.Equal(t, short, long[:5])
	})

	t.Run("Nearby points share a prefix", func(t *testing.T) {
		hash1 := EncodePoint(41.8781, -87.6298, 6)
		hash2 := EncodePoint(41.8785, -87.6301, 6)

		assert.Equal(t, hash1[:4], hash2[:4])
	})
}

func TestGetNeighbors(t *testing.T) {
	hash := EncodePoint(41.8781, -87.6298, 6)
	neighbors := GetNeighbors(hash)

	assert.Len(t, neighbors, 8)
	for _, n := range neighbors {
		assert.Len(t, n, 6)
		assert.NotEqual(t, hash, n)
	}
}

func BenchmarkCalculateDistance(b *testing.B) {
	point1 := GeoPoint{Latitude: 41.9742, Longitude: -87.9073}
	point2 := GeoPoint{Latitude: 41.8781, Longitude: -87.6298}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		CalculateDistance(point1, point2)
	}
}
