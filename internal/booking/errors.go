package booking

import "errors"

// Booking-related errors
var (
	// Validation errors
	ErrInvalidDate   = errors.New("invalid start date")
	ErrInvalidWeeks  = errors.New("week count must be positive")
	ErrUnknownOption = errors.New("unknown week option")
	ErrInvalidLimit  = errors.New("limit must be positive")
	ErrEmptyCatalog  = errors.New("catalog has no week options")
)
