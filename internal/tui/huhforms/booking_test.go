package huhforms

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/aftercare/internal/booking"
	"github.com/thenoetrevino/aftercare/internal/config/colors"
)

func TestBookingOptions(t *testing.T) {
	opts := BookingOptions(booking.DefaultCatalog())

	assert.Len(t, opts, 4)
	assert.Equal(t, "1 WEEK · $35 for 5 days", opts[0].Key)
	assert.Equal(t, 1, opts[0].Value)
	assert.Equal(t, "4 WEEKS · $140 for 20 days", opts[3].Key)
}

func TestValidateStart(t *testing.T) {
	assert.NoError(t, ValidateStart("January 18, 2026"))
	assert.NoError(t, ValidateStart("2026-01-18"))
	assert.Error(t, ValidateStart("someday"))
	assert.Error(t, ValidateStart(""))
}

func TestCreateBookingForm(t *testing.T) {
	values := &BookingValues{}
	form := CreateBookingForm(booking.DefaultCatalog(), values)

	assert.NotNil(t, form)
	assert.NotNil(t, form.WithTheme(CreateTheme(*colors.Default())))
}

func TestCreateKeyMap_EscQuits(t *testing.T) {
	km := CreateKeyMap()

	assert.Contains(t, km.Quit.Keys(), "esc")
	assert.Contains(t, km.Quit.Keys(), "ctrl+c")
}
