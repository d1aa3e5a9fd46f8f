package picker

import "time"

// DefaultDebounce is the quiet period after the last scroll event before a
// column commits its value.
const DefaultDebounce = 50 * time.Millisecond

// Debouncer coalesces bursts of offset updates into a single trailing-edge
// commit. Every Notify supersedes the pending one, so only the offset seen
// last before the quiet period is ever resolved.
type Debouncer struct {
	delay  time.Duration
	sched  Scheduler
	commit func(offset float64) bool

	pending Task
	latest  float64

	// gen is bumped on every Notify and on Stop; a task only commits when the
	// generation it captured is still current.
	gen  uint64
	live bool
}

// NewDebouncer creates a live debouncer. commit receives the settled offset
// and reports whether the committed value changed.
func NewDebouncer(sched Scheduler, delay time.Duration, commit func(offset float64) bool) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{
		delay:  delay,
		sched:  sched,
		commit: commit,
		live:   true,
	}
}

// Notify records offset and restarts the quiet-period timer.
func (d *Debouncer) Notify(offset float64) {
	if !d.live {
		return
	}
	d.latest = offset
	if d.pending != nil {
		d.pending.Cancel()
	}
	d.gen++
	gen := d.gen
	d.pending = d.sched.Schedule(d.delay, func() { d.fire(gen) })
}

// Pending reports whether a commit is waiting for the quiet period to end.
func (d *Debouncer) Pending() bool {
	return d.pending != nil
}

// Stop cancels any pending commit and ignores further notifications until
// Start is called. A task that slips through cancellation is dropped by the
// generation check.
func (d *Debouncer) Stop() {
	d.live = false
	d.gen++
	if d.pending != nil {
		d.pending.Cancel()
		d.pending = nil
	}
}

// Start re-arms a stopped debouncer.
func (d *Debouncer) Start() {
	d.live = true
}

func (d *Debouncer) fire(gen uint64) {
	if !d.live || gen != d.gen {
		return
	}
	d.pending = nil
	d.commit(d.latest)
}
