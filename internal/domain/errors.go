package domain

import "errors"

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrWalletNotFound  = errors.New("wallet not found")

	// ErrInvalidDates covers unparseable dates, check-out not after
	// check-in, and check-in in the past.
	ErrInvalidDates = errors.New("invalid dates")

	// ErrSelfBooking is returned when the requesting user owns the listing.
	ErrSelfBooking = errors.New("cannot book your own listing")

	// ErrDatesUnavailable is the admission rejection: the proposed range
	// overlaps an existing non-cancelled booking.
	ErrDatesUnavailable = errors.New("dates unavailable")

	// ErrListingBusy means another booking attempt holds the listing's
	// admission lock right now.
	ErrListingBusy = errors.New("listing is busy, try again")

	ErrNotAllowed        = errors.New("operation not allowed for this user")
	ErrInvalidTransition = errors.New("invalid booking status transition")
)
