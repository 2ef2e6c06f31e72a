package accounts

import "errors"

// Sentinel errors for the accounts domain. Handlers map these to HTTP
// statuses; callers match with errors.Is.
var (
	// ErrInvalidCredentials rejects a login with an unknown email or a
	// wrong password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountDisabled rejects a login for a deactivated account
	ErrAccountDisabled = errors.New("account is disabled")

	// ErrEmailTaken rejects creating an account with an email that is
	// already registered
	ErrEmailTaken = errors.New("email is already registered")

	// ErrDriverNotFound rejects an operation on an unknown driver
	ErrDriverNotFound = errors.New("driver not found")

	// ErrInvalidPhone rejects a driver profile with a contact number
	// that cannot be dialed
	ErrInvalidPhone = errors.New("invalid phone number")

	// ErrUnauthorized rejects a caller failing a role or ownership check
	ErrUnauthorized = errors.New("caller is not authorized for this account")
)
