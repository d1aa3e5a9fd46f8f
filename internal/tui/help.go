package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/aftercare/internal/tui/state"
)

// handleHelpMode closes the help screen on any key.
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	m.UiState.SetMode(state.NormalMode)
	return m, nil
}
