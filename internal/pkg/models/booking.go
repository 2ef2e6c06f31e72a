package models

import (
	"time"
)

// RideStatus represents the operational status of a ride
type RideStatus string

const (
	RideStatusScheduled        RideStatus = "Scheduled"
	RideStatusOnRoute          RideStatus = "OnRoute"
	RideStatusArrived          RideStatus = "Arrived"
	RideStatusPassengerOnboard RideStatus = "PassengerOnboard"
	RideStatusCompleted        RideStatus = "Completed"
	RideStatusCancelled        RideStatus = "Cancelled"
)

// IsTerminal reports whether the status admits no further transitions
func (s RideStatus) IsTerminal() bool {
	return s == RideStatusCompleted || s == RideStatusCancelled
}

// BookingStatus is the coarse booking lifecycle shown to customers
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "Pending"
	BookingStatusConfirmed  BookingStatus = "Confirmed"
	BookingStatusInProgress BookingStatus = "InProgress"
	BookingStatusCompleted  BookingStatus = "Completed"
	BookingStatusCancelled  BookingStatus = "Cancelled"
)

// QuoteStatus is the lifecycle of a fare quote
type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusExpired  QuoteStatus = "expired"
)

// Stop is one end of a trip
type Stop struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
	Address   string  `json:"address,omitempty" db:"address"`
}

// Quote represents a fare estimate offered to a booker
type Quote struct {
	ID            string      `json:"id" db:"id"`
	BookerEmail   string      `json:"bookerEmail" db:"booker_email"`
	PickupLat     float64     `json:"-" db:"pickup_lat"`
	PickupLon     float64     `json:"-" db:"pickup_lon"`
	PickupAddr    string      `json:"-" db:"pickup_addr"`
	DropoffLat    float64     `json:"-" db:"dropoff_lat"`
	DropoffLon    float64     `json:"-" db:"dropoff_lon"`
	DropoffAddr   string      `json:"-" db:"dropoff_addr"`
	DistanceKm    float64     `json:"distanceKm" db:"distance_km"`
	EstimatedFare float64     `json:"estimatedFare" db:"estimated_fare"`
	Currency      string      `json:"currency" db:"currency"`
	Status        QuoteStatus `json:"status" db:"status"`
	CreatedAt     time.Time   `json:"createdAt" db:"created_at"`
}

// Pickup returns the pickup stop of the quote
func (q *Quote) Pickup() Stop {
	return Stop{Latitude: q.PickupLat, Longitude: q.PickupLon, Address: q.PickupAddr}
}

// Dropoff returns the dropoff stop of the quote
func (q *Quote) Dropoff() Stop {
	return Stop{Latitude: q.DropoffLat, Longitude: q.DropoffLon, Address: q.DropoffAddr}
}

// Booking represents a confirmed transport order. Its id doubles as the
// rideId used throughout the tracking subsystem.
type Booking struct {
	ID             string        `json:"id" db:"id"`
	QuoteID        *string       `json:"quoteId,omitempty" db:"quote_id"`
	BookerEmail    string        `json:"bookerEmail" db:"booker_email"`
	PassengerName  string        `json:"passengerName" db:"passenger_name"`
	PassengerEmail string        `json:"passengerEmail" db:"passenger_email"`
	PickupLat      float64       `json:"-" db:"pickup_lat"`
	PickupLon      float64       `json:"-" db:"pickup_lon"`
	PickupAddr     string        `json:"-" db:"pickup_addr"`
	DropoffLat     float64       `json:"-" db:"dropoff_lat"`
	DropoffLon     float64       `json:"-" db:"dropoff_lon"`
	DropoffAddr    string        `json:"-" db:"dropoff_addr"`
	ScheduledAt    time.Time     `json:"scheduledAt" db:"scheduled_at"`
	DriverUID      *string       `json:"driverUid,omitempty" db:"driver_uid"`
	RideStatus     RideStatus    `json:"rideStatus" db:"ride_status"`
	BookingStatus  BookingStatus `json:"bookingStatus" db:"booking_status"`
	CreatedAt      time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time     `json:"updatedAt" db:"updated_at"`
}

// Pickup returns the pickup stop of the booking
func (b *Booking) Pickup() Stop {
	return Stop{Latitude: b.PickupLat, Longitude: b.PickupLon, Address: b.PickupAddr}
}

// Dropoff returns the dropoff stop of the booking
func (b *Booking) Dropoff() Stop {
	return Stop{Latitude: b.DropoffLat, Longitude: b.DropoffLon, Address: b.DropoffAddr}
}

// AssignedDriver returns the assigned driver uid, empty when unassigned
func (b *Booking) AssignedDriver() string {
	if b.DriverUID == nil {
		return ""
	}
	return *b.DriverUID
}

// QuoteRequest is the payload for requesting a fare estimate
type QuoteRequest struct {
	BookerEmail string `json:"bookerEmail"`
	Pickup      Stop   `json:"pickup"`
	Dropoff     Stop   `json:"dropoff"`
}

// BookingRequest is the payload for creating a booking directly
type BookingRequest struct {
	BookerEmail    string    `json:"bookerEmail"`
	PassengerName  string    `json:"passengerName"`
	PassengerEmail string    `json:"passengerEmail"`
	Pickup         Stop      `json:"pickup"`
	Dropoff        Stop      `json:"dropoff"`
	ScheduledAt    time.Time `json:"scheduledAt"`
}

// AcceptQuoteRequest is the payload for turning a quote into a booking
type AcceptQuoteRequest struct {
	PassengerName  string    `json:"passengerName"`
	PassengerEmail string    `json:"passengerEmail"`
	ScheduledAt    time.Time `json:"scheduledAt"`
}

// AssignDriverRequest is the payload for assigning a driver to a booking
type AssignDriverRequest struct {
	DriverUID string `json:"driverUid"`
}

// BookingSummary is the role-filtered projection returned to bookers.
// Staff receive the full Booking; customers never see internal fields.
type BookingSummary struct {
	ID            string        `json:"id"`
	PassengerName string        `json:"passengerName"`
	Pickup        Stop          `json:"pickup"`
	Dropoff       Stop          `json:"dropoff"`
	ScheduledAt   time.Time     `json:"scheduledAt"`
	BookingStatus BookingStatus `json:"bookingStatus"`
	RideStatus    RideStatus    `json:"rideStatus"`
	DriverName    string        `json:"driverName,omitempty"`
}

// BookingListResponse is the staff listing envelope
type BookingListResponse struct {
	Count    int       `json:"count"`
	Bookings []Booking `json:"bookings"`
}

// BookingSummaryListResponse is the customer listing envelope
type BookingSummaryListResponse struct {
	Count    int              `json:"count"`
	Bookings []BookingSummary `json:"bookings"`
}

// TrackingLink is the passenger-facing tracking URL plus its token
type TrackingLink struct {
	RideID    string    `json:"rideId"`
	URL       string    `json:"url"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
