package config

import "errors"

// Configuration errors
var (
	ErrInvalidYearRange   = errors.New("picker year_min must not exceed year_max")
	ErrInvalidVisibleRows = errors.New("picker visible_rows must be a positive odd number")
	ErrInvalidProgram     = errors.New("program values must be positive")
)
