package state

import (
	"github.com/thenoetrevino/aftercare/internal/booking"
	"github.com/thenoetrevino/aftercare/internal/models"
)

// AppState holds the booking being configured: the chosen week option, the
// start date confirmed in the picker and the end date derived from both.
type AppState struct {
	catalog booking.Catalog

	// selectedID is the chosen option ID; 0 means nothing is selected
	selectedID int

	startDate string
	endDate   string

	lastBooking *models.Booking

	// saving is set while a NEXT save is in flight
	saving bool
}

// NewAppState creates an empty booking for the given catalog.
func NewAppState(catalog booking.Catalog) *AppState {
	return &AppState{catalog: catalog}
}

// Catalog returns the options on offer.
func (s *AppState) Catalog() booking.Catalog {
	return s.catalog
}

// Options returns the week options in display order.
func (s *AppState) Options() []models.WeekOption {
	return s.catalog.Options
}

// Selected returns the chosen option, or nil.
func (s *AppState) Selected() *models.WeekOption {
	if s.selectedID == 0 {
		return nil
	}
	o, ok := s.catalog.Option(s.selectedID)
	if !ok {
		return nil
	}
	return &o
}

// SelectedID returns the chosen option ID, 0 when none.
func (s *AppState) SelectedID() int {
	return s.selectedID
}

// SelectOption chooses an option and recomputes the end date when a start
// date is already set. Unknown IDs are ignored.
func (s *AppState) SelectOption(id int) bool {
	if _, ok := s.catalog.Option(id); !ok {
		return false
	}
	s.selectedID = id
	s.recompute()
	return true
}

// StartDate returns the confirmed start date, "" when unset.
func (s *AppState) StartDate() string {
	return s.startDate
}

// SetStartDate stores a confirmed start date and recomputes the end date
// when an option is selected.
func (s *AppState) SetStartDate(start string) {
	s.startDate = start
	s.recompute()
}

// EndDate returns the derived end date, "" when it cannot be derived.
func (s *AppState) EndDate() string {
	return s.endDate
}

// CanPickDate reports whether the date picker may be opened.
func (s *AppState) CanPickDate() bool {
	return s.Selected() != nil
}

// CanProceed reports whether NEXT is enabled.
func (s *AppState) CanProceed() bool {
	return !s.saving && s.Selected() != nil && s.startDate != ""
}

// Saving reports whether a booking save is in flight.
func (s *AppState) Saving() bool {
	return s.saving
}

// SetSaving marks a booking save as started or finished.
func (s *AppState) SetSaving(saving bool) {
	s.saving = saving
}

// Reset clears the selection and both dates.
func (s *AppState) Reset() {
	s.selectedID = 0
	s.startDate = ""
	s.endDate = ""
}

// LastBooking returns the most recently saved booking, or nil.
func (s *AppState) LastBooking() *models.Booking {
	return s.lastBooking
}

// SetLastBooking records a saved booking.
func (s *AppState) SetLastBooking(b *models.Booking) {
	s.lastBooking = b
}

func (s *AppState) recompute() {
	o := s.Selected()
	if o == nil || s.startDate == "" {
		return
	}
	s.endDate = booking.EndDate(s.startDate, o.Weeks)
}
