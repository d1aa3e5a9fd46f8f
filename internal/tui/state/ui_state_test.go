package state

import (
	"testing"
)

// TestNewUIState ensures the UI starts on the booking page with no drag.
func TestNewUIState(t *testing.T) {
	s := NewUIState()

	if s.Mode() != NormalMode {
		t.Errorf("Mode() = %v, want NormalMode", s.Mode())
	}
	if s.DragColumn() != NoColumn {
		t.Errorf("DragColumn() = %d, want NoColumn", s.DragColumn())
	}
}

// TestSetFocusedOption_Clamps ensures card focus never leaves the option list.
// Edge case: h pressed on the first card, l pressed on the last.
func TestSetFocusedOption_Clamps(t *testing.T) {
	s := NewUIState()

	s.SetFocusedOption(-1, 4)
	if s.FocusedOption() != 0 {
		t.Errorf("FocusedOption() after -1 = %d, want 0", s.FocusedOption())
	}

	s.SetFocusedOption(9, 4)
	if s.FocusedOption() != 3 {
		t.Errorf("FocusedOption() after 9 = %d, want 3", s.FocusedOption())
	}

	s.SetFocusedOption(2, 0)
	if s.FocusedOption() != 0 {
		t.Errorf("FocusedOption() with empty list = %d, want 0", s.FocusedOption())
	}
}

// TestSetFocusedColumn_Clamps ensures column focus stays on day, month or year.
func TestSetFocusedColumn_Clamps(t *testing.T) {
	s := NewUIState()

	s.SetFocusedColumn(5, 3)
	if s.FocusedColumn() != 2 {
		t.Errorf("FocusedColumn() = %d, want 2", s.FocusedColumn())
	}
	s.SetFocusedColumn(-3, 3)
	if s.FocusedColumn() != 0 {
		t.Errorf("FocusedColumn() = %d, want 0", s.FocusedColumn())
	}
}

func TestDragColumn(t *testing.T) {
	s := NewUIState()

	s.SetDragColumn(1)
	if s.DragColumn() != 1 {
		t.Errorf("DragColumn() = %d, want 1", s.DragColumn())
	}
	s.ClearDrag()
	if s.DragColumn() != NoColumn {
		t.Errorf("DragColumn() after ClearDrag = %d, want NoColumn", s.DragColumn())
	}
}
