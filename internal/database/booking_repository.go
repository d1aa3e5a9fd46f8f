package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/aftercare/internal/models"
)

// ============================================================================
// Booking Operations
// ============================================================================

const bookingColumns = `id, reference, weeks, days, price, start_date, end_date, created_at`

// BookingRepo handles booking persistence.
type BookingRepo struct {
	db *sql.DB
}

// CreateBooking inserts b and returns it with its ID and creation time.
func (r *BookingRepo) CreateBooking(ctx context.Context, b *models.Booking) (*models.Booking, error) {
	var created *models.Booking
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO bookings (reference, weeks, days, price, start_date, end_date) VALUES (?, ?, ?, ?, ?, ?)`,
			b.Reference, b.Weeks, b.Days, b.Price, b.StartDate, b.EndDate,
		)
		if err != nil {
			return fmt.Errorf("failed to insert booking: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get booking id: %w", err)
		}

		row := tx.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = ?`, id)
		created, err = scanBooking(row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ListBookings returns at most limit bookings, newest first.
func (r *BookingRepo) ListBookings(ctx context.Context, limit int) ([]*models.Booking, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}

// GetLatestBooking returns the most recent booking.
func (r *BookingRepo) GetLatestBooking(ctx context.Context) (*models.Booking, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings ORDER BY created_at DESC, id DESC LIMIT 1`)
	return scanBooking(row)
}

// GetBookingByReference looks a booking up by its public reference.
func (r *BookingRepo) GetBookingByReference(ctx context.Context, reference string) (*models.Booking, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE reference = ?`, reference)
	return scanBooking(row)
}

// CountBookings returns the number of stored bookings.
func (r *BookingRepo) CountBookings(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&count)
	return count, err
}

func scanBooking(row rowScanner) (*models.Booking, error) {
	b := &models.Booking{}
	err := row.Scan(&b.ID, &b.Reference, &b.Weeks, &b.Days, &b.Price, &b.StartDate, &b.EndDate, &b.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}
