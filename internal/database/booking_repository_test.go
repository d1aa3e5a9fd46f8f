package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/aftercare/internal/models"
)

func TestCreateBooking(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	created, err := repo.CreateBooking(ctx, testBooking("ref-1", 2, "January 18, 2026", "January 31, 2026"))
	require.NoError(t, err)

	assert.Positive(t, created.ID)
	assert.Equal(t, "ref-1", created.Reference)
	assert.Equal(t, 2, created.Weeks)
	assert.Equal(t, 10, created.Days)
	assert.Equal(t, 70, created.Price)
	assert.Equal(t, "January 18, 2026", created.StartDate)
	assert.Equal(t, "January 31, 2026", created.EndDate)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateBooking_DuplicateReference(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	_, err := repo.CreateBooking(ctx, testBooking("dup", 1, "March 2, 2026", "March 8, 2026"))
	require.NoError(t, err)
	_, err = repo.CreateBooking(ctx, testBooking("dup", 1, "March 2, 2026", "March 8, 2026"))
	assert.Error(t, err)

	count, err := repo.CountBookings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "failed insert must roll back")
}

func TestCreateBooking_RejectsNonPositiveWeeks(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))

	_, err := repo.CreateBooking(context.Background(), testBooking("zero", 0, "March 2, 2026", ""))
	assert.Error(t, err)
}

func TestListBookings_NewestFirstWithLimit(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		_, err := repo.CreateBooking(ctx, testBooking(fmt.Sprintf("ref-%d", i), 1, "May 1, 2026", "May 7, 2026"))
		require.NoError(t, err)
	}

	bookings, err := repo.ListBookings(ctx, 3)
	require.NoError(t, err)
	require.Len(t, bookings, 3)
	assert.Equal(t, "ref-5", bookings[0].Reference)
	assert.Equal(t, "ref-4", bookings[1].Reference)
	assert.Equal(t, "ref-3", bookings[2].Reference)
}

func TestListBookings_Empty(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))

	bookings, err := repo.ListBookings(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestGetLatestBooking(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	_, err := repo.GetLatestBooking(ctx)
	assert.True(t, errors.Is(err, models.ErrBookingNotFound))

	_, err = repo.CreateBooking(ctx, testBooking("first", 1, "May 1, 2026", "May 7, 2026"))
	require.NoError(t, err)
	_, err = repo.CreateBooking(ctx, testBooking("second", 3, "June 1, 2026", "June 21, 2026"))
	require.NoError(t, err)

	latest, err := repo.GetLatestBooking(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", latest.Reference)
}

func TestGetBookingByReference(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	_, err := repo.CreateBooking(ctx, testBooking("abc", 4, "July 6, 2026", "August 2, 2026"))
	require.NoError(t, err)

	found, err := repo.GetBookingByReference(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, 4, found.Weeks)

	_, err = repo.GetBookingByReference(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrBookingNotFound)
}

func TestBookingPersistence(t *testing.T) {
	t.Parallel()
	db, path := setupTestDBFile(t)
	ctx := context.Background()

	_, err := NewRepository(db).CreateBooking(ctx, testBooking("kept", 2, "January 18, 2026", "January 31, 2026"))
	require.NoError(t, err)
	require.NoError(t, db.Close())

	reopened, err := OpenDB(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	found, err := NewRepository(reopened).GetBookingByReference(ctx, "kept")
	require.NoError(t, err)
	assert.Equal(t, "January 31, 2026", found.EndDate)
}
