package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/aftercare/internal/tui/state"
)

// handleOpenPicker opens the date picker on its current selection. A
// package has to be chosen first.
func (m Model) handleOpenPicker() (tea.Model, tea.Cmd) {
	if !m.AppState.CanPickDate() {
		m.NotificationState.Add(state.LevelError, "Choose a package before picking a start date")
		return m, nil
	}
	if err := m.Wheel.Open(m.Wheel.Selection()); err != nil {
		m.logger.Error("failed to open date picker", "error", err)
		m.NotificationState.Add(state.LevelError, "Could not open the date picker")
		return m, nil
	}
	m.UiState.SetMode(state.PickerMode)
	m.UiState.SetFocusedColumn(0, len(m.columns()))
	m.UiState.ClearDrag()
	return m, nil
}

// handlePickerMode turns keys into the same wheel scrolls the mouse
// produces, plus confirm and cancel.
func (m Model) handlePickerMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()
	step := m.Config.Picker.WheelStep

	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Confirm):
		return m.handleConfirmPicker()
	case key.Matches(msg, m.keys.Cancel):
		return m.handleCancelPicker()
	case key.Matches(msg, m.keys.PrevColumn):
		m.UiState.SetFocusedColumn(m.UiState.FocusedColumn()-1, len(m.columns()))
	case key.Matches(msg, m.keys.NextColumn):
		m.UiState.SetFocusedColumn(m.UiState.FocusedColumn()+1, len(m.columns()))
	case key.Matches(msg, m.keys.ScrollUp):
		m.focusedScroller().ScrollBy(-step)
	case key.Matches(msg, m.keys.ScrollDown):
		m.focusedScroller().ScrollBy(step)
	}
	return m, nil
}

// handleConfirmPicker hands the composed date to the booking; the confirm
// callback stores it and derives the end date.
func (m Model) handleConfirmPicker() (tea.Model, tea.Cmd) {
	if sel, ok := m.Wheel.Confirm(); ok {
		m.logger.Info("start date confirmed", "start", sel.String(), "end", m.AppState.EndDate())
	}
	m.UiState.SetMode(state.NormalMode)
	m.UiState.ClearDrag()
	return m, nil
}

func (m Model) handleCancelPicker() (tea.Model, tea.Cmd) {
	m.Wheel.Cancel()
	m.UiState.SetMode(state.NormalMode)
	m.UiState.ClearDrag()
	return m, nil
}

// handleDismissPicker is a click outside the dialog.
func (m Model) handleDismissPicker() (tea.Model, tea.Cmd) {
	m.Wheel.Close()
	m.UiState.SetMode(state.NormalMode)
	m.UiState.ClearDrag()
	return m, nil
}
