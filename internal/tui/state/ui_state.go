package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode Mode = iota // Booking page
	PickerMode             // Date picker modal open
	HelpMode               // Displaying help screen
)

// NoColumn is the drag column when no pointer is held down in the picker.
const NoColumn = -1

// UIState manages the user interface state.
// This includes the focused week option, the focused picker column,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// focusedOption is the index of the week card under the keyboard cursor
	focusedOption int

	// focusedColumn is the picker column keys scroll (0 day, 1 month, 2 year)
	focusedColumn int

	// dragColumn is the picker column a mouse button went down in, or NoColumn
	dragColumn int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:       NormalMode,
		dragColumn: NoColumn,
	}
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode changes the interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// FocusedOption returns the index of the focused week card.
func (s *UIState) FocusedOption() int {
	return s.focusedOption
}

// SetFocusedOption moves the card focus, clamped to [0, count-1].
func (s *UIState) SetFocusedOption(index, count int) {
	if count <= 0 {
		s.focusedOption = 0
		return
	}
	s.focusedOption = max(0, min(index, count-1))
}

// FocusedColumn returns the picker column keys act on.
func (s *UIState) FocusedColumn() int {
	return s.focusedColumn
}

// SetFocusedColumn moves the column focus, clamped to [0, count-1].
func (s *UIState) SetFocusedColumn(index, count int) {
	if count <= 0 {
		s.focusedColumn = 0
		return
	}
	s.focusedColumn = max(0, min(index, count-1))
}

// DragColumn returns the column holding the mouse, or NoColumn.
func (s *UIState) DragColumn() int {
	return s.dragColumn
}

// SetDragColumn records the column a mouse drag started in.
func (s *UIState) SetDragColumn(index int) {
	s.dragColumn = index
}

// ClearDrag forgets the drag column.
func (s *UIState) ClearDrag() {
	s.dragColumn = NoColumn
}
