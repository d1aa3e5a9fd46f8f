package tui

import (
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/aftercare/internal/booking"
	"github.com/thenoetrevino/aftercare/internal/models"
)

// bookingSavedMsg reports a booking persisted by NEXT.
type bookingSavedMsg struct {
	booking *models.Booking
}

// bookingFailedMsg reports a booking NEXT could not persist.
type bookingFailedMsg struct {
	err error
}

// latestBookingMsg carries the most recent booking found at startup.
type latestBookingMsg struct {
	booking *models.Booking
}

// saveBooking persists the current selection off the event loop.
func (m Model) saveBooking() tea.Cmd {
	opt := m.AppState.Selected()
	if opt == nil {
		return nil
	}
	req := booking.BookRequest{OptionID: opt.ID, Start: m.AppState.StartDate()}
	ctx, svc := m.ctx, m.bookings
	return func() tea.Msg {
		b, err := svc.Book(ctx, req)
		if err != nil {
			return bookingFailedMsg{err: err}
		}
		return bookingSavedMsg{booking: b}
	}
}

// loadLatestBooking fetches the newest saved booking, if any.
func (m Model) loadLatestBooking() tea.Cmd {
	ctx, svc := m.ctx, m.bookings
	return func() tea.Msg {
		b, err := svc.Latest(ctx)
		if err != nil {
			if !errors.Is(err, models.ErrBookingNotFound) {
				return bookingFailedMsg{err: err}
			}
			return nil
		}
		return latestBookingMsg{booking: b}
	}
}
