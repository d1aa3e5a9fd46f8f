package database

import (
	"context"

	"github.com/thenoetrevino/aftercare/internal/models"
)

// BookingReader defines read operations for bookings.
type BookingReader interface {
	ListBookings(ctx context.Context, limit int) ([]*models.Booking, error)
	GetLatestBooking(ctx context.Context) (*models.Booking, error)
	GetBookingByReference(ctx context.Context, reference string) (*models.Booking, error)
	CountBookings(ctx context.Context) (int, error)
}

// BookingWriter defines write operations for bookings.
type BookingWriter interface {
	CreateBooking(ctx context.Context, b *models.Booking) (*models.Booking, error)
}

// BookingRepository combines all booking-related operations.
type BookingRepository interface {
	BookingReader
	BookingWriter
}
