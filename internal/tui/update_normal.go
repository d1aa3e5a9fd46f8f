package tui

import (
	"strconv"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/aftercare/internal/tui/state"
)

func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.handleQuit()
	case key.Matches(msg, m.keys.ShowHelp):
		return m.handleShowHelp()
	case key.Matches(msg, m.keys.PrevOption):
		return m.handleFocusOption(m.UiState.FocusedOption() - 1)
	case key.Matches(msg, m.keys.NextOption):
		return m.handleFocusOption(m.UiState.FocusedOption() + 1)
	case key.Matches(msg, m.keys.SelectOption):
		return m.handleSelectFocused()
	case key.Matches(msg, m.keys.PickDate):
		return m.handleOpenPicker()
	case key.Matches(msg, m.keys.Next):
		return m.handleNext()
	case key.Matches(msg, m.keys.Back):
		return m.handleBack()
	}

	// 1-9 choose a package directly
	if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(m.AppState.Options()) {
		m.UiState.SetFocusedOption(n-1, len(m.AppState.Options()))
		return m.handleSelectFocused()
	}

	return m, nil
}

func (m Model) handleQuit() (tea.Model, tea.Cmd) {
	return m, tea.Quit
}

func (m Model) handleShowHelp() (tea.Model, tea.Cmd) {
	m.UiState.SetMode(state.HelpMode)
	return m, nil
}

func (m Model) handleFocusOption(index int) (tea.Model, tea.Cmd) {
	m.UiState.SetFocusedOption(index, len(m.AppState.Options()))
	return m, nil
}

func (m Model) handleSelectFocused() (tea.Model, tea.Cmd) {
	options := m.AppState.Options()
	idx := m.UiState.FocusedOption()
	if idx < 0 || idx >= len(options) {
		return m, nil
	}
	return m.handleSelectOption(options[idx].ID)
}

func (m Model) handleSelectOption(id int) (tea.Model, tea.Cmd) {
	if !m.AppState.SelectOption(id) {
		return m, nil
	}
	m.logger.Debug("package selected", "option", id, "end", m.AppState.EndDate())
	return m, nil
}

func (m Model) handleNext() (tea.Model, tea.Cmd) {
	if m.AppState.Saving() {
		return m, nil
	}
	if !m.AppState.CanProceed() {
		m.NotificationState.Add(state.LevelError, "Choose a package and a start date first")
		return m, nil
	}
	cmd := m.saveBooking()
	if cmd != nil {
		m.AppState.SetSaving(true)
	}
	return m, cmd
}

func (m Model) handleBack() (tea.Model, tea.Cmd) {
	m.AppState.Reset()
	m.UiState.SetFocusedOption(0, len(m.AppState.Options()))
	return m, nil
}
