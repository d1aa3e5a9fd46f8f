package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/aftercare/internal/tui/state"
)

// pointerY maps a terminal row to the picker's logical units; one row is
// one item.
func (m Model) pointerY(row int) float64 {
	return float64(row) * m.Config.Picker.ItemHeight
}

func (m Model) handleMouseClick(mouse tea.Mouse) (tea.Model, tea.Cmd) {
	if mouse.Button != tea.MouseLeft {
		return m, nil
	}

	switch m.UiState.Mode() {
	case state.HelpMode:
		m.UiState.SetMode(state.NormalMode)
		return m, nil

	case state.PickerMode:
		region, ok := m.renderPicker().hitTest(mouse.X, mouse.Y)
		if !ok {
			return m.handleDismissPicker()
		}
		switch region.kind {
		case hitColumn:
			// a press while a drag is held means its release was missed
			if prev := m.UiState.DragColumn(); prev != state.NoColumn {
				m.columns()[prev].Drag().PointerUp()
				m.UiState.ClearDrag()
			}
			m.UiState.SetFocusedColumn(region.index, len(m.columns()))
			if m.columns()[region.index].Drag().PointerDown(m.pointerY(mouse.Y)) {
				m.UiState.SetDragColumn(region.index)
			}
		case hitCancel:
			return m.handleCancelPicker()
		case hitConfirm:
			return m.handleConfirmPicker()
		}
		return m, nil
	}

	m.NotificationState.Clear()
	region, ok := m.renderPage().hitTest(mouse.X, mouse.Y)
	if !ok {
		return m, nil
	}
	switch region.kind {
	case hitCard:
		m.UiState.SetFocusedOption(region.index, len(m.AppState.Options()))
		return m.handleSelectFocused()
	case hitStartField:
		return m.handleOpenPicker()
	case hitBack, hitBackLink:
		return m.handleBack()
	case hitNext:
		return m.handleNext()
	}
	return m, nil
}

// handleMouseMotion drives a drag. Leaving the column ends it like a
// pointer leave.
func (m Model) handleMouseMotion(mouse tea.Mouse) (tea.Model, tea.Cmd) {
	col := m.UiState.DragColumn()
	if m.UiState.Mode() != state.PickerMode || col == state.NoColumn {
		return m, nil
	}

	drag := m.columns()[col].Drag()
	region, ok := m.renderPicker().hitTest(mouse.X, mouse.Y)
	if !ok || region.kind != hitColumn || region.index != col {
		drag.PointerLeave()
		m.UiState.ClearDrag()
		return m, nil
	}
	drag.PointerMove(m.pointerY(mouse.Y))
	return m, nil
}

func (m Model) handleMouseRelease() (tea.Model, tea.Cmd) {
	col := m.UiState.DragColumn()
	if col == state.NoColumn {
		return m, nil
	}
	if m.UiState.Mode() == state.PickerMode {
		m.columns()[col].Drag().PointerUp()
	}
	m.UiState.ClearDrag()
	return m, nil
}

// handleMouseWheel is the native scroll path of a column.
func (m Model) handleMouseWheel(mouse tea.Mouse) (tea.Model, tea.Cmd) {
	if m.UiState.Mode() != state.PickerMode {
		return m, nil
	}
	region, ok := m.renderPicker().hitTest(mouse.X, mouse.Y)
	if !ok || region.kind != hitColumn {
		return m, nil
	}

	step := m.Config.Picker.WheelStep
	switch mouse.Button {
	case tea.MouseWheelUp:
		step = -step
	case tea.MouseWheelDown:
	default:
		return m, nil
	}
	m.UiState.SetFocusedColumn(region.index, len(m.columns()))
	m.columns()[region.index].ScrollBy(step)
	return m, nil
}
