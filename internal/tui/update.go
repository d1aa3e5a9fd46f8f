package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/aftercare/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)

	// picker timers scheduled while handling msg become ticks
	if s, ok := m.sched.(*teaScheduler); ok {
		if timers := s.Drain(); timers != nil {
			cmd = tea.Batch(cmd, timers)
		}
	}
	return next, cmd
}

func (m Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		m.NotificationState.SetWindowSize(msg.Width, msg.Height)
		m.help.SetWidth(msg.Width - 2*pageMargin)
		return m, nil

	case timerFiredMsg:
		if s, ok := m.sched.(*teaScheduler); ok {
			s.Fire(msg.id)
		}
		return m, nil

	case tea.KeyPressMsg:
		switch m.UiState.Mode() {
		case state.PickerMode:
			return m.handlePickerMode(msg)
		case state.HelpMode:
			return m.handleHelpMode(msg)
		default:
			return m.handleNormalMode(msg)
		}

	case tea.MouseClickMsg:
		return m.handleMouseClick(msg.Mouse())
	case tea.MouseMotionMsg:
		return m.handleMouseMotion(msg.Mouse())
	case tea.MouseReleaseMsg:
		return m.handleMouseRelease()
	case tea.MouseWheelMsg:
		return m.handleMouseWheel(msg.Mouse())

	case bookingSavedMsg:
		b := msg.booking
		m.AppState.SetSaving(false)
		m.AppState.SetLastBooking(b)
		m.AppState.Reset()
		m.UiState.SetFocusedOption(0, len(m.AppState.Options()))
		m.NotificationState.Add(state.LevelInfo,
			fmt.Sprintf("Booked %d weeks from %s to %s", b.Weeks, b.StartDate, b.EndDate))
		return m, nil

	case bookingFailedMsg:
		m.AppState.SetSaving(false)
		m.logger.Error("booking failed", "error", msg.err)
		m.NotificationState.Add(state.LevelError, fmt.Sprintf("Could not save booking: %v", msg.err))
		return m, nil

	case latestBookingMsg:
		m.AppState.SetLastBooking(msg.booking)
		m.logger.Debug("loaded latest booking", "reference", msg.booking.Reference)
		return m, nil
	}

	return m, nil
}
