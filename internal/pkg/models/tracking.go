package models

import "time"

// LocationSample is a single position report from a driver. Values are
// immutable once recorded; a newer sample replaces the prior one whole.
type LocationSample struct {
	RideID    string    `json:"rideId"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
	Heading   *float64  `json:"heading,omitempty"`
	Speed     *float64  `json:"speed,omitempty"`
	Accuracy  *float64  `json:"accuracy,omitempty"`
}

// LocationUpdateRequest is the driver write payload. The ride id comes
// from the request path; a missing timestamp defaults to receipt time.
type LocationUpdateRequest struct {
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Heading   *float64   `json:"heading,omitempty"`
	Speed     *float64   `json:"speed,omitempty"`
	Accuracy  *float64   `json:"accuracy,omitempty"`
}

// LocationUpdateAck acknowledges an accepted driver write
type LocationUpdateAck struct {
	RideID    string    `json:"rideId"`
	Timestamp time.Time `json:"timestamp"`
}

// DriverLocationView is the staff and driver read of the latest sample
type DriverLocationView struct {
	RideID     string     `json:"rideId"`
	DriverUID  string     `json:"driverUid"`
	DriverName string     `json:"driverName,omitempty"`
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	Timestamp  time.Time  `json:"timestamp"`
	Heading    *float64   `json:"heading,omitempty"`
	Speed      *float64   `json:"speed,omitempty"`
	Accuracy   *float64   `json:"accuracy,omitempty"`
	AgeSeconds int64      `json:"ageSeconds"`
	Status     RideStatus `json:"currentStatus"`
}

// PassengerTrackingView is the customer read. It never reports a hard
// not-found for the no-data case; trackingActive distinguishes "not
// started yet" from "not authorized".
type PassengerTrackingView struct {
	RideID         string      `json:"rideId"`
	TrackingActive bool        `json:"trackingActive"`
	Message        string      `json:"message,omitempty"`
	CurrentStatus  RideStatus  `json:"currentStatus"`
	DriverName     string      `json:"driverName,omitempty"`
	Latitude       *float64    `json:"latitude,omitempty"`
	Longitude      *float64    `json:"longitude,omitempty"`
	Timestamp      *time.Time  `json:"timestamp,omitempty"`
	AgeSeconds     *int64      `json:"ageSeconds,omitempty"`
}

// EnrichedLocation is a broadcast payload element: the latest sample
// joined with booking metadata for the dispatch board.
type EnrichedLocation struct {
	RideID               string     `json:"rideId"`
	DriverUID            string     `json:"driverUid"`
	DriverName           string     `json:"driverName"`
	PassengerName        string     `json:"passengerName"`
	Pickup               Stop       `json:"pickup"`
	Dropoff              Stop       `json:"dropoff"`
	CurrentStatus        RideStatus `json:"currentStatus"`
	Latitude             float64    `json:"latitude"`
	Longitude            float64    `json:"longitude"`
	Timestamp            time.Time  `json:"timestamp"`
	Heading              *float64   `json:"heading,omitempty"`
	Speed                *float64   `json:"speed,omitempty"`
	AgeSeconds           int64      `json:"ageSeconds"`
	Geohash              string     `json:"geohash"`
	DistanceFromPickupKm float64    `json:"distanceFromPickupKm"`
}

// ActiveLocationsResponse is the staff overview envelope
type ActiveLocationsResponse struct {
	Count     int                `json:"count"`
	Locations []EnrichedLocation `json:"locations"`
	Timestamp time.Time          `json:"timestamp"`
}

// StatusUpdateRequest asks for a ride status transition
type StatusUpdateRequest struct {
	NewStatus RideStatus `json:"newStatus"`
}

// StatusUpdateResponse reports the applied transition
type StatusUpdateResponse struct {
	Success       bool          `json:"success"`
	RideID        string        `json:"rideId"`
	NewStatus     RideStatus    `json:"newStatus"`
	BookingStatus BookingStatus `json:"bookingStatus"`
	Timestamp     time.Time     `json:"timestamp"`
}

// RideStatusChanged is pushed to subscribers after a successful transition
type RideStatusChanged struct {
	RideID        string        `json:"rideId"`
	OldStatus     RideStatus    `json:"oldStatus"`
	NewStatus     RideStatus    `json:"newStatus"`
	BookingStatus BookingStatus `json:"bookingStatus"`
	Timestamp     time.Time     `json:"timestamp"`
}

// TrackingStopped is pushed when a ride reaches a terminal status
type TrackingStopped struct {
	RideID    string    `json:"rideId"`
	Reason    string    `json:"reason"` // "completed" or "cancelled"
	Timestamp time.Time `json:"timestamp"`
}

// SubscriptionConfirmed is the direct reply to a successful subscribe
type SubscriptionConfirmed struct {
	Group string `json:"group"`
}
