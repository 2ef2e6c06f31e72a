package models

import "time"

// BookingCreatedEvent is published when a booking is created
type BookingCreatedEvent struct {
	BookingID      string    `json:"bookingId"`
	BookerEmail    string    `json:"bookerEmail"`
	PassengerName  string    `json:"passengerName"`
	PassengerEmail string    `json:"passengerEmail"`
	ScheduledAt    time.Time `json:"scheduledAt"`
	CreatedAt      time.Time `json:"createdAt"`
}

// RideStatusChangedEvent is published after a successful status transition
type RideStatusChangedEvent struct {
	RideID        string        `json:"rideId"`
	OldStatus     RideStatus    `json:"oldStatus"`
	NewStatus     RideStatus    `json:"newStatus"`
	BookingStatus BookingStatus `json:"bookingStatus"`
	DriverUID     string        `json:"driverUid,omitempty"`
	Timestamp     time.Time     `json:"timestamp"`
}

// TrackingStoppedEvent is published when a ride reaches a terminal status
type TrackingStoppedEvent struct {
	RideID    string    `json:"rideId"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}
