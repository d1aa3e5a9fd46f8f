package picker

import (
	"sort"
	"time"
)

// Task is a handle to a callback registered with a Scheduler.
type Task interface {
	// Cancel prevents the callback from running. Cancelling a task that
	// already ran is a no-op.
	Cancel()
}

// Scheduler runs fn once after d has elapsed.
//
// Implementations must invoke fn on the goroutine that drives the picker.
// The terminal host does this by routing timers through the bubbletea event
// loop; tests use ManualClock.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) Task
}

// ManualClock is a logical Scheduler whose time only moves when Advance is
// called.
type ManualClock struct {
	now   time.Duration
	seq   uint64
	tasks []*manualTask
}

type manualTask struct {
	at        time.Duration
	seq       uint64
	fn        func()
	cancelled bool
	done      bool
}

func (t *manualTask) Cancel() {
	t.cancelled = true
}

// NewManualClock creates a clock positioned at zero.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// Now returns the logical time elapsed since the clock was created.
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Schedule implements Scheduler.
func (c *ManualClock) Schedule(d time.Duration, fn func()) Task {
	if d < 0 {
		d = 0
	}
	c.seq++
	t := &manualTask{at: c.now + d, seq: c.seq, fn: fn}
	c.tasks = append(c.tasks, t)
	return t
}

// Advance moves the clock forward by d, running every task that becomes due
// in order of its deadline. Tasks scheduled by a running callback also run if
// they fall inside the window. It returns the number of callbacks run.
func (c *ManualClock) Advance(d time.Duration) int {
	target := c.now + d
	fired := 0
	for {
		next := c.nextDue(target)
		if next == nil {
			break
		}
		c.now = next.at
		next.done = true
		next.fn()
		fired++
	}
	c.now = target
	c.prune()
	return fired
}

// Pending returns the number of tasks that have neither run nor been cancelled.
func (c *ManualClock) Pending() int {
	n := 0
	for _, t := range c.tasks {
		if !t.done && !t.cancelled {
			n++
		}
	}
	return n
}

func (c *ManualClock) nextDue(target time.Duration) *manualTask {
	due := make([]*manualTask, 0, len(c.tasks))
	for _, t := range c.tasks {
		if !t.done && !t.cancelled && t.at <= target {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].at == due[j].at {
			return due[i].seq < due[j].seq
		}
		return due[i].at < due[j].at
	})
	return due[0]
}

func (c *ManualClock) prune() {
	live := c.tasks[:0]
	for _, t := range c.tasks {
		if !t.done && !t.cancelled {
			live = append(live, t)
		}
	}
	c.tasks = live
}
