package models

import "time"

// WeekOption is one purchasable program length
type WeekOption struct {
	ID              int
	Weeks           int
	PricePerWeek    int
	SessionsPerWeek int
}

// Days is the number of sessions the option buys
func (o WeekOption) Days() int {
	return o.Weeks * o.SessionsPerWeek
}

// Price is the total price of the option in whole dollars
func (o WeekOption) Price() int {
	return o.Weeks * o.PricePerWeek
}

// Booking is a confirmed program with its derived end date.
// StartDate and EndDate use the "January 2, 2006" display layout
type Booking struct {
	ID        int
	Reference string
	Weeks     int
	Days      int
	Price     int
	StartDate string
	EndDate   string
	CreatedAt time.Time
}
