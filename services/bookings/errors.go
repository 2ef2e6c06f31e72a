package bookings

import "errors"

// Sentinel errors for the bookings domain. Handlers map these to HTTP
// statuses; callers match with errors.Is.
var (
	// ErrQuoteNotFound rejects an operation on an unknown quote
	ErrQuoteNotFound = errors.New("quote not found")

	// ErrQuoteNotPending rejects accepting a quote that was already
	// accepted or expired
	ErrQuoteNotPending = errors.New("quote is not pending")

	// ErrQuoteExpired rejects accepting a quote past its validity window
	ErrQuoteExpired = errors.New("quote has expired")

	// ErrBookingNotFound rejects an operation on an unknown booking
	ErrBookingNotFound = errors.New("booking not found")

	// ErrBookingClosed rejects changes to a completed or cancelled booking
	ErrBookingClosed = errors.New("booking is no longer open")

	// ErrDriverNotFound rejects assigning a driver uid that does not exist
	// or is inactive
	ErrDriverNotFound = errors.New("driver not found")

	// ErrUnauthorized rejects a caller failing a role or ownership check
	ErrUnauthorized = errors.New("caller is not authorized for this booking")
)
