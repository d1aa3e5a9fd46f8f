package tui

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/aftercare/internal/booking"
	"github.com/thenoetrevino/aftercare/internal/config"
	"github.com/thenoetrevino/aftercare/internal/tui/state"
)

func TestTeaScheduler_FireRunsOnce(t *testing.T) {
	s := newTeaScheduler()
	runs := 0
	s.Schedule(time.Millisecond, func() { runs++ })

	require.Equal(t, 1, s.Pending())
	assert.True(t, s.Fire(1))
	assert.False(t, s.Fire(1))
	assert.Equal(t, 1, runs)
	assert.Zero(t, s.Pending())
}

func TestTeaScheduler_CancelledTaskIgnored(t *testing.T) {
	s := newTeaScheduler()
	runs := 0
	task := s.Schedule(time.Millisecond, func() { runs++ })
	task.Cancel()

	assert.False(t, s.Fire(1))
	assert.Zero(t, runs)
}

func TestTeaScheduler_DrainEmptiesQueue(t *testing.T) {
	s := newTeaScheduler()
	assert.Nil(t, s.Drain())

	s.Schedule(time.Millisecond, func() {})
	cmd := s.Drain()
	require.NotNil(t, cmd)
	assert.Nil(t, s.Drain())

	msg := cmd()
	assert.Equal(t, timerFiredMsg{id: 1}, msg)
}

// runCmd executes cmd and feeds every resulting message back into the model,
// following batches and the commands they produce.
func runCmd(m Model, cmd tea.Cmd) Model {
	if cmd == nil {
		return m
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			m = runCmd(m, c)
		}
		return m
	}
	if msg == nil {
		return m
	}
	next, more := m.Update(msg)
	return runCmd(next.(Model), more)
}

// TestTeaScheduler_DrivesPickerThroughUpdate runs the picker on real ticks.
func TestTeaScheduler_DrivesPickerThroughUpdate(t *testing.T) {
	cfg := config.Default()
	cfg.Picker.OpenDelayMS = 1
	cfg.Picker.DebounceMS = 1

	m, err := InitialModel(context.Background(), &fakeService{catalog: booking.DefaultCatalog()}, cfg, WithNow(fixedNow))
	require.NoError(t, err)
	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 50})
	m = press(m, "1")

	next, cmd := m.Update(keyMsg("d"))
	m = next.(Model)
	require.Equal(t, state.PickerMode, m.UiState.Mode())
	require.NotNil(t, cmd)
	m = runCmd(m, cmd)
	require.True(t, m.Wheel.Synced())

	next, cmd = m.Update(keyMsg("j"))
	m = runCmd(next.(Model), cmd)
	assert.Equal(t, 10, m.Wheel.Day().Committed())

	m = press(m, "enter")
	assert.Equal(t, "March 10, 2026", m.AppState.StartDate())
}
