package tracking

import (
	"fmt"
	"strings"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/constants"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
)

// writableStatuses are the ride statuses during which the assigned driver
// may report locations.
var writableStatuses = map[models.RideStatus]bool{
	models.RideStatusOnRoute:          true,
	models.RideStatusArrived:          true,
	models.RideStatusPassengerOnboard: true,
}

// AuthorizationGate decides who may read, write and subscribe to ride
// tracking data. Rules are evaluated first-match-grants with a default
// deny.
type AuthorizationGate struct{}

func NewAuthorizationGate() *AuthorizationGate {
	return &AuthorizationGate{}
}

// CanReadLocation grants the assigned driver, back-office staff, and the
// booking's booker or passenger by email.
func (g *AuthorizationGate) CanReadLocation(caller models.CallerIdentity, booking *models.Booking) bool {
	if booking == nil {
		return false
	}
	if caller.DriverUID != "" && caller.DriverUID == booking.AssignedDriver() {
		return true
	}
	if caller.IsStaff() {
		return true
	}
	if caller.Email != "" {
		if strings.EqualFold(caller.Email, booking.BookerEmail) ||
			strings.EqualFold(caller.Email, booking.PassengerEmail) {
			return true
		}
	}
	return false
}

// CanWriteLocation permits only the assigned driver, and only while the
// ride is in a trackable status. A non-assigned caller gets ErrRideNotFound
// so probing cannot distinguish "someone else's ride" from "no such ride";
// the assigned driver outside a trackable status gets ErrRideNotActive so
// driver apps can tell "wrong ride" from "ride not started yet".
func (g *AuthorizationGate) CanWriteLocation(caller models.CallerIdentity, booking *models.Booking) error {
	if booking == nil {
		return ErrRideNotFound
	}
	if caller.DriverUID == "" || caller.DriverUID != booking.AssignedDriver() {
		return ErrRideNotFound
	}
	if !writableStatuses[booking.RideStatus] {
		return ErrRideNotActive
	}
	return nil
}

// CanSubscribe gates group membership: the admin feed and per-driver feeds
// are staff only, per-ride feeds are open to any authenticated caller.
func (g *AuthorizationGate) CanSubscribe(caller models.CallerIdentity, group string) bool {
	switch {
	case group == constants.GroupAdmin:
		return caller.IsStaff()
	case strings.HasPrefix(group, groupRidePrefix):
		return true
	case strings.HasPrefix(group, groupDriverPrefix):
		return caller.IsStaff()
	default:
		return false
	}
}

const (
	groupRidePrefix   = "ride:"
	groupDriverPrefix = "driver:"
)

// RideGroup returns the subscription group name for a ride's feed.
func RideGroup(rideID string) string {
	return fmt.Sprintf(constants.GroupRide, rideID)
}

// DriverGroup returns the subscription group name for a driver's feed.
func DriverGroup(driverUID string) string {
	return fmt.Sprintf(constants.GroupDriver, driverUID)
}
