package picker_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/aftercare/internal/booking"
	"github.com/thenoetrevino/aftercare/internal/picker"
)

func TestDragToDayEighteenThenDeriveEndDate(t *testing.T) {
	clock := picker.NewManualClock()
	var confirmed string
	w, err := picker.New(clock, picker.WithOnConfirm(func(s picker.Selection) {
		confirmed = s.String()
	}))
	require.NoError(t, err)

	require.NoError(t, w.Open(picker.Selection{Day: 1, Month: time.January, Year: 2026}))
	clock.Advance(picker.DefaultOpenDelay)

	drag := w.Day().Drag()
	require.True(t, drag.PointerDown(500))
	drag.PointerMove(500 - 17*picker.DefaultItemHeight)
	drag.PointerUp()
	clock.Advance(picker.DefaultDebounce)

	sel, ok := w.Confirm()
	require.True(t, ok)
	assert.Equal(t, picker.Selection{Day: 18, Month: time.January, Year: 2026}, sel)
	assert.Equal(t, "January 18, 2026", confirmed)
	assert.Equal(t, "January 31, 2026", booking.EndDate(confirmed, 2))
}

func TestWheelScrollAcrossAllColumns(t *testing.T) {
	clock := picker.NewManualClock()
	w, err := picker.New(clock)
	require.NoError(t, err)
	require.NoError(t, w.Open(picker.Selection{Day: 1, Month: time.January, Year: 2000}))
	clock.Advance(picker.DefaultOpenDelay)

	for i := 0; i < 5; i++ {
		w.Month().ScrollBy(picker.DefaultItemHeight)
		clock.Advance(10 * time.Millisecond)
	}
	w.Year().ScrollBy(30 * picker.DefaultItemHeight)
	clock.Advance(picker.DefaultDebounce)

	sel, ok := w.Confirm()
	require.True(t, ok)
	assert.Equal(t, picker.Selection{Day: 1, Month: time.June, Year: 2030}, sel)
}
