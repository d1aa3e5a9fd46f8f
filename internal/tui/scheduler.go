package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/aftercare/internal/picker"
)

// timerFiredMsg delivers a picker timer back to Update.
type timerFiredMsg struct {
	id uint64
}

// teaScheduler runs picker timers on the bubbletea event loop. Schedule
// queues a tea.Tick; the tick comes back as a timerFiredMsg and the task runs
// inside Update, on the same goroutine as every other picker call.
type teaScheduler struct {
	seq    uint64
	tasks  map[uint64]func()
	queued []tea.Cmd
}

type teaTask struct {
	sched *teaScheduler
	id    uint64
}

// Cancel drops the task; its tick still arrives and is ignored.
func (t teaTask) Cancel() {
	delete(t.sched.tasks, t.id)
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{tasks: make(map[uint64]func())}
}

// Schedule implements picker.Scheduler.
func (s *teaScheduler) Schedule(d time.Duration, fn func()) picker.Task {
	s.seq++
	id := s.seq
	s.tasks[id] = fn
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return timerFiredMsg{id: id}
	}))
	return teaTask{sched: s, id: id}
}

// Fire runs the task for id unless it was cancelled or already ran.
func (s *teaScheduler) Fire(id uint64) bool {
	fn, ok := s.tasks[id]
	if !ok {
		return false
	}
	delete(s.tasks, id)
	fn()
	return true
}

// Drain returns the ticks queued since the last call.
func (s *teaScheduler) Drain() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

// Pending returns the number of live tasks.
func (s *teaScheduler) Pending() int {
	return len(s.tasks)
}
