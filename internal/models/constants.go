package models

// ============================================================================
// PROGRAM CONSTANTS
// ============================================================================

// Program defaults used when no configuration overrides them
const (
	DefaultPricePerWeek    = 35
	DefaultSessionsPerWeek = 5
	DefaultMaxWeeks        = 4
)

// DefaultSessionDays lists the weekdays sessions run on
const DefaultSessionDays = "Mon, Tue, Thu, Fri, Sat"

// ============================================================================
// LIST DEFAULTS
// ============================================================================

// DefaultBookingListLimit caps listings when no limit is given
const DefaultBookingListLimit = 20
