package models

import (
	"time"
)

// UserRole identifies what a user account is allowed to do
type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleDispatcher UserRole = "dispatcher"
	RoleDriver     UserRole = "driver"
	RoleBooker     UserRole = "booker"
	// RolePassenger is never stored; it only appears in tracking link tokens
	RolePassenger UserRole = "passenger"
)

// IsStaff reports whether the role carries back-office privileges
func (r UserRole) IsStaff() bool {
	return r == RoleAdmin || r == RoleDispatcher
}

// User represents an account in the system (staff, driver or booker)
type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FullName     string    `json:"fullName" db:"full_name"`
	Role         UserRole  `json:"role" db:"role"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// Driver represents the chauffeur profile behind a driver account
type Driver struct {
	UID          string    `json:"uid" db:"uid"`
	UserID       string    `json:"userId" db:"user_id"`
	FullName     string    `json:"fullName" db:"full_name"`
	Phone        string    `json:"phone" db:"phone"`
	VehicleMake  string    `json:"vehicleMake" db:"vehicle_make"`
	VehiclePlate string    `json:"vehiclePlate" db:"vehicle_plate"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// CallerIdentity describes the authenticated caller of a request.
// It is derived from JWT claims on every request and never persisted.
type CallerIdentity struct {
	UserID    string   `json:"userId"`
	Role      UserRole `json:"role"`
	DriverUID string   `json:"driverUid,omitempty"`
	Email     string   `json:"email,omitempty"`
	RideID    string   `json:"rideId,omitempty"` // set only on passenger tracking tokens
}

// IsStaff reports whether the caller has back-office privileges
func (c CallerIdentity) IsStaff() bool {
	return c.Role.IsStaff()
}

// LoginRequest is the credential payload for password login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateDriverRequest is the payload for onboarding a driver. It creates
// the login account and the chauffeur profile together.
type CreateDriverRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	VehicleMake  string `json:"vehicleMake"`
	VehiclePlate string `json:"vehiclePlate"`
}

// DriverListResponse is the staff driver listing envelope
type DriverListResponse struct {
	Count   int      `json:"count"`
	Drivers []Driver `json:"drivers"`
}

// LoginResponse carries the issued session token
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Role      UserRole  `json:"role"`
	FullName  string    `json:"fullName"`
}

// Session is the server-side record of an issued token
type Session struct {
	UserID    string    `json:"userId"`
	Role      UserRole  `json:"role"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}
