package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/aftercare/internal/booking"
	"github.com/thenoetrevino/aftercare/internal/models"
)

func TestAppState_Empty(t *testing.T) {
	s := NewAppState(booking.DefaultCatalog())

	assert.Nil(t, s.Selected())
	assert.Len(t, s.Options(), 4)
	assert.False(t, s.CanPickDate())
	assert.False(t, s.CanProceed())
	assert.Empty(t, s.EndDate())
}

// TestAppState_SelectThenDate derives the end date once both halves are set.
func TestAppState_SelectThenDate(t *testing.T) {
	s := NewAppState(booking.DefaultCatalog())

	require.True(t, s.SelectOption(2))
	assert.True(t, s.CanPickDate())
	assert.False(t, s.CanProceed())
	assert.Empty(t, s.EndDate())

	s.SetStartDate("January 18, 2026")
	assert.True(t, s.CanProceed())
	assert.Equal(t, "January 31, 2026", s.EndDate())
}

// TestAppState_ReselectRecomputes changes the end date when the option changes
// after a start date was confirmed.
func TestAppState_ReselectRecomputes(t *testing.T) {
	s := NewAppState(booking.DefaultCatalog())
	require.True(t, s.SelectOption(1))
	s.SetStartDate("March 2, 2026")
	assert.Equal(t, "March 8, 2026", s.EndDate())

	require.True(t, s.SelectOption(4))
	assert.Equal(t, "March 29, 2026", s.EndDate())
}

func TestAppState_UnknownOption(t *testing.T) {
	s := NewAppState(booking.DefaultCatalog())

	assert.False(t, s.SelectOption(9))
	assert.Nil(t, s.Selected())
}

func TestAppState_Reset(t *testing.T) {
	s := NewAppState(booking.DefaultCatalog())
	s.SelectOption(3)
	s.SetStartDate("June 15, 2026")
	s.SetLastBooking(&models.Booking{Reference: "abc"})

	s.Reset()

	assert.Nil(t, s.Selected())
	assert.Empty(t, s.StartDate())
	assert.Empty(t, s.EndDate())
	assert.NotNil(t, s.LastBooking(), "reset keeps the booking history")
}
