package constants

// NSQ topics
const (
	TopicBookingCreated    = "booking.created"
	TopicRideStatusChanged = "ride.status_changed"
	TopicTrackingStopped   = "tracking.stopped"
)

// NSQ channels
const (
	ChannelNotifier = "notifier"
)
