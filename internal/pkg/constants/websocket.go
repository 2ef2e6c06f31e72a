package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Tracking events
	EventLocationUpdate        = "location_update"
	EventRideStatusChanged     = "ride_status_changed"
	EventTrackingStopped       = "tracking_stopped"
	EventSubscriptionConfirmed = "subscription_confirmed"

	// Client operations
	EventSubscribeRide     = "subscribe_ride"
	EventUnsubscribeRide   = "unsubscribe_ride"
	EventSubscribeDriver   = "subscribe_driver"
	EventUnsubscribeDriver = "unsubscribe_driver"
)

// WebSocket error codes
const (
	ErrorInvalidFormat     = "invalid_format"
	ErrorValidationFailed  = "validation_failed"
	ErrorUnauthorized      = "unauthorized"
	ErrorInternalError     = "internal_error"
	ErrorRateLimitExceeded = "rate_limit_exceeded"
	ErrorRideNotActive     = "ride_not_active"
	ErrorRideNotFound      = "ride_not_found"
)

// Subscription group name formats
const (
	GroupAdmin  = "admin"
	GroupRide   = "ride:%s"   // Format: ride:{ride_id}
	GroupDriver = "driver:%s" // Format: driver:{driver_uid}
)
