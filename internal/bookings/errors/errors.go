package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	ErrCorruptLedger = errors.New("stored bookings cannot be decoded")

	ErrMissingDates = errors.New("check-in and check-out dates are required")

	ErrInvalidDate = errors.New("dates must be formatted as YYYY-MM-DD")

	ErrInvalidGuests = errors.New("at least one guest is required")

	ErrNonPositiveNights = errors.New("check-out must be after check-in")

	ErrMissingProperty = errors.New("property is required")
)
