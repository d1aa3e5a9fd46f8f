package cli

import (
	"errors"
	"strings"

	"charm.land/huh/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"

	"github.com/thenoetrevino/aftercare/internal/booking"
	"github.com/thenoetrevino/aftercare/internal/models"
)

// Problem is how a failed command is reported: a stable code for --json
// consumers, the process exit code and an optional hint
type Problem struct {
	Code       string
	Exit       int
	Suggestion string
}

// Classify maps domain errors to a Problem
func Classify(err error) Problem {
	switch {
	case errors.Is(err, booking.ErrInvalidDate):
		return Problem{"INVALID_DATE", ExitValidation, `Use a date like "January 18, 2026" or 2026-01-18`}
	case errors.Is(err, booking.ErrInvalidWeeks):
		return Problem{"INVALID_WEEKS", ExitValidation, "Pass a positive --weeks value"}
	case errors.Is(err, booking.ErrUnknownOption):
		return Problem{"OPTION_NOT_FOUND", ExitNotFound, "Use 'aftercare options' to see the available packages"}
	case errors.Is(err, models.ErrBookingNotFound):
		return Problem{"BOOKING_NOT_FOUND", ExitNotFound, "Use 'aftercare bookings' to see recent references"}
	case errors.Is(err, booking.ErrInvalidLimit):
		return Problem{"INVALID_LIMIT", ExitUsage, ""}
	case errors.Is(err, booking.ErrEmptyCatalog):
		return Problem{"INVALID_PROGRAM", ExitDataErr, "Check the program section of your config file"}
	case errors.Is(err, huh.ErrUserAborted):
		return Problem{"CANCELLED", ExitCancelled, ""}
	default:
		return Problem{"INTERNAL_ERROR", ExitError, ""}
	}
}

// Wrap word-wraps plain text to width, leaving it alone when width is not
// positive
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return strings.TrimRight(wordwrap.String(text, width), "\n")
}

// Truncate shortens s to width cells with a trailing ellipsis
func Truncate(s string, width int) string {
	return ansi.Truncate(s, width, "…")
}
