package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/aftercare/internal/booking"
	"github.com/thenoetrevino/aftercare/internal/config"
	"github.com/thenoetrevino/aftercare/internal/picker"
	"github.com/thenoetrevino/aftercare/internal/tui/components"
	"github.com/thenoetrevino/aftercare/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	ctx      context.Context
	bookings booking.Service
	sched    picker.Scheduler
	keys     keyMap
	help     help.Model
	logger   *slog.Logger

	Config            *config.Config
	AppState          *state.AppState
	UiState           *state.UIState
	NotificationState *state.NotificationState
	Wheel             *picker.Wheel
}

type options struct {
	sched  picker.Scheduler
	now    func() time.Time
	logger *slog.Logger
}

// Option configures the TUI model.
type Option func(*options)

// WithScheduler replaces the bubbletea timer scheduler, e.g. with a
// picker.ManualClock in tests.
func WithScheduler(s picker.Scheduler) Option {
	return func(o *options) { o.sched = s }
}

// WithNow sets the clock used for the picker's default date.
func WithNow(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithLogger sets the logger for the model and its picker.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// InitialModel creates the booking page for the given service and config.
func InitialModel(ctx context.Context, bookings booking.Service, cfg *config.Config, opts ...Option) (Model, error) {
	o := options{now: time.Now, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.sched == nil {
		o.sched = newTeaScheduler()
	}

	components.InitStyles(cfg.ColorScheme)

	pickerOpts := append(cfg.Picker.Options(),
		picker.WithNow(o.now),
		picker.WithLogger(o.logger),
	)
	wheel, err := picker.New(o.sched, pickerOpts...)
	if err != nil {
		return Model{}, fmt.Errorf("create date picker: %w", err)
	}

	appState := state.NewAppState(bookings.Catalog())
	wheel.SetOnConfirm(func(sel picker.Selection) {
		appState.SetStartDate(sel.String())
	})

	return Model{
		ctx:               ctx,
		bookings:          bookings,
		sched:             o.sched,
		keys:              newKeyMap(cfg.KeyMappings),
		help:              help.New(),
		logger:            o.logger,
		Config:            cfg,
		AppState:          appState,
		UiState:           state.NewUIState(),
		NotificationState: state.NewNotificationState(),
		Wheel:             wheel,
	}, nil
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return m.loadLatestBooking()
}

// columns returns the picker columns in display order.
func (m Model) columns() []picker.Scroller {
	return m.Wheel.Columns()
}

// focusedScroller returns the picker column keys act on.
func (m Model) focusedScroller() picker.Scroller {
	cols := m.columns()
	return cols[m.UiState.FocusedColumn()]
}
