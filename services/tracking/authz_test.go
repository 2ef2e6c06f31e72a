package tracking

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/models"
)

func testBooking(driverUID string, status models.RideStatus) *models.Booking {
	b := &models.Booking{
		ID:             "B1",
		BookerEmail:    "assistant@sterlingcorp.example",
		PassengerName:  "Margaret Sterling",
		PassengerEmail: "m.sterling@sterlingcorp.example",
		RideStatus:     status,
		BookingStatus:  models.BookingStatusConfirmed,
	}
	if driverUID != "" {
		b.DriverUID = &driverUID
	}
	return b
}

func TestCanReadLocation_RoleMatrix(t *testing.T) {
	gate := NewAuthorizationGate()
	booking := testBooking("D1", models.RideStatusOnRoute)

	tests := []struct {
		name   string
		caller models.CallerIdentity
		want   bool
	}{
		{
			name:   "assigned driver",
			caller: models.CallerIdentity{UserID: "u-d1", Role: models.RoleDriver, DriverUID: "D1"},
			want:   true,
		},
		{
			name:   "other driver",
			caller: models.CallerIdentity{UserID: "u-d2", Role: models.RoleDriver, DriverUID: "D2"},
			want:   false,
		},
		{
			name:   "admin",
			caller: models.CallerIdentity{UserID: "u-a1", Role: models.RoleAdmin},
			want:   true,
		},
		{
			name:   "dispatcher",
			caller: models.CallerIdentity{UserID: "u-p1", Role: models.RoleDispatcher},
			want:   true,
		},
		{
			name:   "booker by email",
			caller: models.CallerIdentity{UserID: "u-b1", Role: models.RoleBooker, Email: "assistant@sterlingcorp.example"},
			want:   true,
		},
		{
			name:   "passenger by tracking token email",
			caller: models.CallerIdentity{Role: models.RolePassenger, Email: "m.sterling@sterlingcorp.example", RideID: "B1"},
			want:   true,
		},
		{
			name:   "passenger email differing only in case",
			caller: models.CallerIdentity{Role: models.RolePassenger, Email: "M.Sterling@SterlingCorp.example"},
			want:   true,
		},
		{
			name:   "unrelated booker",
			caller: models.CallerIdentity{UserID: "u-b2", Role: models.RoleBooker, Email: "someone@else.example"},
			want:   false,
		},
		{
			name:   "no identity claims at all",
			caller: models.CallerIdentity{},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gate.CanReadLocation(tt.caller, booking))
		})
	}
}

func TestCanReadLocation_EmptyEmailNeverMatchesEmptyBookingEmail(t *testing.T) {
	gate := NewAuthorizationGate()
	booking := testBooking("D1", models.RideStatusOnRoute)
	booking.PassengerEmail = ""

	caller := models.CallerIdentity{UserID: "u-b2", Role: models.RoleBooker, Email: ""}

	assert.False(t, gate.CanReadLocation(caller, booking))
}

func TestCanReadLocation_NilBookingDenied(t *testing.T) {
	gate := NewAuthorizationGate()

	assert.False(t, gate.CanReadLocation(models.CallerIdentity{Role: models.RoleAdmin}, nil))
}

func TestCanWriteLocation_AssignedDriverActiveRide(t *testing.T) {
	gate := NewAuthorizationGate()
	caller := models.CallerIdentity{UserID: "u-d1", Role: models.RoleDriver, DriverUID: "D1"}

	for _, status := range []models.RideStatus{
		models.RideStatusOnRoute,
		models.RideStatusArrived,
		models.RideStatusPassengerOnboard,
	} {
		assert.NoError(t, gate.CanWriteLocation(caller, testBooking("D1", status)), string(status))
	}
}

func TestCanWriteLocation_AssignedDriverInactiveRide(t *testing.T) {
	gate := NewAuthorizationGate()
	caller := models.CallerIdentity{UserID: "u-d1", Role: models.RoleDriver, DriverUID: "D1"}

	for _, status := range []models.RideStatus{
		models.RideStatusScheduled,
		models.RideStatusCompleted,
		models.RideStatusCancelled,
	} {
		err := gate.CanWriteLocation(caller, testBooking("D1", status))
		assert.True(t, errors.Is(err, ErrRideNotActive), string(status))
	}
}

func TestCanWriteLocation_NotAssignedLooksLikeUnknownRide(t *testing.T) {
	// Arrange: another driver probing an active ride they are not on
	gate := NewAuthorizationGate()
	caller := models.CallerIdentity{UserID: "u-d2", Role: models.RoleDriver, DriverUID: "D2"}

	// Act
	err := gate.CanWriteLocation(caller, testBooking("D1", models.RideStatusOnRoute))

	// Assert: same error as a ride that does not exist
	assert.True(t, errors.Is(err, ErrRideNotFound))
	assert.True(t, errors.Is(gate.CanWriteLocation(caller, nil), ErrRideNotFound))
}

func TestCanWriteLocation_StaffCannotWrite(t *testing.T) {
	gate := NewAuthorizationGate()

	err := gate.CanWriteLocation(models.CallerIdentity{UserID: "u-a1", Role: models.RoleAdmin}, testBooking("D1", models.RideStatusOnRoute))

	assert.True(t, errors.Is(err, ErrRideNotFound))
}

func TestCanWriteLocation_UnassignedRide(t *testing.T) {
	gate := NewAuthorizationGate()
	caller := models.CallerIdentity{UserID: "u-d1", Role: models.RoleDriver, DriverUID: "D1"}

	err := gate.CanWriteLocation(caller, testBooking("", models.RideStatusScheduled))

	assert.True(t, errors.Is(err, ErrRideNotFound))
}

func TestCanSubscribe_Groups(t *testing.T) {
	gate := NewAuthorizationGate()

	admin := models.CallerIdentity{UserID: "u-a1", Role: models.RoleAdmin}
	dispatcher := models.CallerIdentity{UserID: "u-p1", Role: models.RoleDispatcher}
	driver := models.CallerIdentity{UserID: "u-d1", Role: models.RoleDriver, DriverUID: "D1"}
	booker := models.CallerIdentity{UserID: "u-b1", Role: models.RoleBooker, Email: "assistant@sterlingcorp.example"}

	tests := []struct {
		name   string
		caller models.CallerIdentity
		group  string
		want   bool
	}{
		{"admin joins admin feed", admin, "admin", true},
		{"dispatcher joins admin feed", dispatcher, "admin", true},
		{"driver denied admin feed", driver, "admin", false},
		{"booker denied admin feed", booker, "admin", false},
		{"driver joins ride feed", driver, RideGroup("B1"), true},
		{"booker joins ride feed", booker, RideGroup("B1"), true},
		{"staff joins driver feed", dispatcher, DriverGroup("D1"), true},
		{"driver denied own driver feed", driver, DriverGroup("D1"), false},
		{"booker denied driver feed", booker, DriverGroup("D1"), false},
		{"unknown group denied", admin, "fleet:all", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gate.CanSubscribe(tt.caller, tt.group))
		})
	}
}

func TestGroupNames(t *testing.T) {
	assert.Equal(t, "ride:B1", RideGroup("B1"))
	assert.Equal(t, "driver:D1", DriverGroup("D1"))
}
