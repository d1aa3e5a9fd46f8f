package picker

import "errors"

var (
	ErrNoItems     = errors.New("column has no items")
	ErrItemHeight  = errors.New("item height must be positive")
	ErrUnknownItem = errors.New("value is not an item of the column")
	ErrYearRange   = errors.New("year range is empty")
)
