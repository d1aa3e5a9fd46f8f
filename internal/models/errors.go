package models

import "errors"

// Domain-specific errors shared by the store and the booking service
var (
	// ErrBookingNotFound indicates that no booking matched the lookup
	ErrBookingNotFound = errors.New("booking not found")
)
