package huhforms

import (
	"fmt"

	"charm.land/huh/v2"

	"github.com/thenoetrevino/aftercare/internal/booking"
)

// BookingValues are the fields the booking form fills in place.
type BookingValues struct {
	OptionID int
	Start    string
	Confirm  bool
}

// BookingOptions turns the catalog into select options labelled
// "2 WEEKS · $70 for 10 days".
func BookingOptions(catalog booking.Catalog) []huh.Option[int] {
	opts := make([]huh.Option[int], 0, len(catalog.Options))
	for _, o := range catalog.Options {
		label := fmt.Sprintf("%s · %s", booking.WeeksLabel(o), booking.PriceLabel(o))
		opts = append(opts, huh.NewOption(label, o.ID))
	}
	return opts
}

// ValidateStart accepts any start date booking.ParseStart understands.
func ValidateStart(s string) error {
	if _, err := booking.ParseStart(s); err != nil {
		return fmt.Errorf("enter a date like \"January 18, 2026\"")
	}
	return nil
}

// CreateBookingForm creates a huh form for booking a program from the CLI
// The form uses pointers to update values in place
func CreateBookingForm(catalog booking.Catalog, values *BookingValues) *huh.Form {
	fields := []huh.Field{
		huh.NewSelect[int]().
			Key("option").
			Title("How many weeks you like to continue?").
			Description(booking.SelectionLabel(catalog.SessionDays)).
			Options(BookingOptions(catalog)...).
			Value(&values.OptionID),

		huh.NewInput().
			Key("start").
			Title("Start date").
			Placeholder("January 18, 2026").
			Validate(ValidateStart).
			Value(&values.Start),

		huh.NewConfirm().
			Key("confirm").
			Title("Book this program?").
			Affirmative("Yes").
			Negative("No").
			Value(&values.Confirm),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMap())
}
