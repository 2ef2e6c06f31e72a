package models

import (
	"time"
)

// Now returns the current time in UTC. All persisted and broadcast
// timestamps go through this so age math never crosses time zones.
func Now() time.Time {
	return time.Now().UTC()
}
