// Package picker implements a three-column wheel date picker: day, month and
// year strips that scroll independently, debounce their scroll position into
// a committed value and compose the committed values into a Selection.
//
// Everything in this package runs on one goroutine. Deferred work (debounce
// commits and the open-time offset sync) goes through a Scheduler.
package picker

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"
)

const (
	DefaultItemHeight     = 44
	DefaultViewportHeight = 220
	DefaultOpenDelay      = 150 * time.Millisecond
	DefaultYearMin        = 2000
	DefaultYearMax        = 2030
)

// Selection is the composed day, month and year of the picker.
type Selection struct {
	Day   int
	Month time.Month
	Year  int
}

// SelectionFromTime returns the calendar date of t.
func SelectionFromTime(t time.Time) Selection {
	return Selection{Day: t.Day(), Month: t.Month(), Year: t.Year()}
}

// String formats the selection as "Month Day, Year".
func (s Selection) String() string {
	return fmt.Sprintf("%s %d, %d", s.Month, s.Day, s.Year)
}

type options struct {
	geometry  Geometry
	debounce  time.Duration
	openDelay time.Duration
	yearMin   int
	yearMax   int
	initial   *Selection
	onConfirm func(Selection)
	logger    *slog.Logger
	now       func() time.Time
}

// Option configures a Wheel.
type Option func(*options)

// WithGeometry sets the uniform item height and viewport height of every column.
func WithGeometry(itemHeight, viewportHeight float64) Option {
	return func(o *options) {
		o.geometry = Geometry{ItemHeight: itemHeight, ViewportHeight: viewportHeight}
	}
}

// WithDebounce sets the quiet period before a column commits.
func WithDebounce(d time.Duration) Option {
	return func(o *options) { o.debounce = d }
}

// WithOpenDelay sets how long Open waits before syncing offsets.
func WithOpenDelay(d time.Duration) Option {
	return func(o *options) { o.openDelay = d }
}

// WithYearRange sets the inclusive range of the year column.
func WithYearRange(minYear, maxYear int) Option {
	return func(o *options) {
		o.yearMin = minYear
		o.yearMax = maxYear
	}
}

// WithInitial sets the selection the closed picker starts with.
func WithInitial(sel Selection) Option {
	return func(o *options) { o.initial = &sel }
}

// WithOnConfirm registers the callback invoked once per Confirm.
func WithOnConfirm(fn func(Selection)) Option {
	return func(o *options) { o.onConfirm = fn }
}

// WithLogger sets the logger for the picker and its columns.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithNow sets the clock used for the default selection.
func WithNow(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// Wheel composes the day, month and year columns behind an open, confirm and
// cancel lifecycle.
type Wheel struct {
	day   *Column[int]
	month *Column[time.Month]
	year  *Column[int]

	sched     Scheduler
	openDelay time.Duration
	onConfirm func(Selection)
	logger    *slog.Logger

	open bool
	// openGen identifies the current open; a sync task scheduled by an
	// earlier open sees a different value and does nothing.
	openGen uint64
	sync    Task
	synced  bool
}

// Days returns 1 through 31.
func Days() []int {
	days := make([]int, 31)
	for i := range days {
		days[i] = i + 1
	}
	return days
}

// Months returns January through December.
func Months() []time.Month {
	months := make([]time.Month, 12)
	for i := range months {
		months[i] = time.Month(i + 1)
	}
	return months
}

// Years returns minYear through maxYear.
func Years(minYear, maxYear int) []int {
	if maxYear < minYear {
		return nil
	}
	years := make([]int, 0, maxYear-minYear+1)
	for y := minYear; y <= maxYear; y++ {
		years = append(years, y)
	}
	return years
}

// New creates a closed picker. Without WithInitial the selection defaults to
// today, with the year clamped into the year range.
func New(sched Scheduler, opts ...Option) (*Wheel, error) {
	o := options{
		geometry:  Geometry{ItemHeight: DefaultItemHeight, ViewportHeight: DefaultViewportHeight},
		debounce:  DefaultDebounce,
		openDelay: DefaultOpenDelay,
		yearMin:   DefaultYearMin,
		yearMax:   DefaultYearMax,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.yearMax < o.yearMin {
		return nil, fmt.Errorf("years %d-%d: %w", o.yearMin, o.yearMax, ErrYearRange)
	}

	initial := SelectionFromTime(o.now())
	if o.initial != nil {
		initial = *o.initial
	}
	initial.Year = max(o.yearMin, min(initial.Year, o.yearMax))

	day, err := NewColumn("day", Days(), strconv.Itoa, initial.Day, o.geometry, sched, o.debounce, o.logger)
	if err != nil {
		return nil, err
	}
	month, err := NewColumn("month", Months(), time.Month.String, initial.Month, o.geometry, sched, o.debounce, o.logger)
	if err != nil {
		return nil, err
	}
	year, err := NewColumn("year", Years(o.yearMin, o.yearMax), strconv.Itoa, initial.Year, o.geometry, sched, o.debounce, o.logger)
	if err != nil {
		return nil, err
	}

	w := &Wheel{
		day:       day,
		month:     month,
		year:      year,
		sched:     sched,
		openDelay: o.openDelay,
		onConfirm: o.onConfirm,
		logger:    o.logger,
	}
	w.unmountColumns()
	return w, nil
}

func (w *Wheel) Day() *Column[int]          { return w.day }
func (w *Wheel) Month() *Column[time.Month] { return w.month }
func (w *Wheel) Year() *Column[int]         { return w.year }

// Columns returns day, month and year in display order.
func (w *Wheel) Columns() []Scroller {
	return []Scroller{w.day, w.month, w.year}
}

// IsOpen reports whether the picker is visible.
func (w *Wheel) IsOpen() bool { return w.open }

// Synced reports whether the current open has positioned its columns.
func (w *Wheel) Synced() bool { return w.synced }

// SetOnConfirm replaces the confirm callback.
func (w *Wheel) SetOnConfirm(fn func(Selection)) { w.onConfirm = fn }

// Selection composes the committed values of the three columns.
func (w *Wheel) Selection() Selection {
	return Selection{
		Day:   w.day.Committed(),
		Month: w.month.Committed(),
		Year:  w.year.Committed(),
	}
}

// Open shows the picker committed to initial and schedules a single offset
// sync once layout has settled. Opening an open picker restarts it.
func (w *Wheel) Open(initial Selection) error {
	if w.day.IndexOf(initial.Day) < 0 ||
		w.month.IndexOf(initial.Month) < 0 ||
		w.year.IndexOf(initial.Year) < 0 {
		return fmt.Errorf("open %s: %w", initial, ErrUnknownItem)
	}
	if w.open {
		w.close()
	}

	w.day.Select(initial.Day)
	w.month.Select(initial.Month)
	w.year.Select(initial.Year)
	w.day.mount()
	w.month.mount()
	w.year.mount()

	w.open = true
	w.synced = false
	w.openGen++
	gen := w.openGen
	w.sync = w.sched.Schedule(w.openDelay, func() { w.syncOffsets(gen, initial) })
	w.logger.Debug("picker opened", "selection", initial.String())
	return nil
}

// Confirm closes the picker and hands the composed selection to the confirm
// callback. It returns false when the picker is closed.
func (w *Wheel) Confirm() (Selection, bool) {
	if !w.open {
		return Selection{}, false
	}
	sel := w.Selection()
	w.close()
	w.logger.Debug("picker confirmed", "selection", sel.String())
	if w.onConfirm != nil {
		w.onConfirm(sel)
	}
	return sel, true
}

// Cancel closes the picker without emitting a selection.
func (w *Wheel) Cancel() {
	if !w.open {
		return
	}
	w.close()
	w.logger.Debug("picker cancelled")
}

// Close is the overlay-dismiss path; it behaves like Cancel.
func (w *Wheel) Close() {
	w.Cancel()
}

func (w *Wheel) syncOffsets(gen uint64, initial Selection) {
	if !w.open || gen != w.openGen || w.synced {
		return
	}
	w.synced = true
	w.sync = nil
	w.day.ScrollTo(initial.Day)
	w.month.ScrollTo(initial.Month)
	w.year.ScrollTo(initial.Year)
}

func (w *Wheel) close() {
	w.open = false
	w.openGen++
	if w.sync != nil {
		w.sync.Cancel()
		w.sync = nil
	}
	w.unmountColumns()
}

func (w *Wheel) unmountColumns() {
	w.day.unmount()
	w.month.unmount()
	w.year.unmount()
}
