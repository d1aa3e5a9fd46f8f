package tui

import (
	"context"
	"log/slog"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/aftercare/internal/booking"
	"github.com/thenoetrevino/aftercare/internal/config"
	"github.com/thenoetrevino/aftercare/internal/models"
	"github.com/thenoetrevino/aftercare/internal/picker"
)

func fixedNow() time.Time {
	return time.Date(2026, time.March, 9, 12, 0, 0, 0, time.UTC)
}

// fakeService records bookings in memory.
type fakeService struct {
	catalog booking.Catalog
	booked  []booking.BookRequest
	err     error
	latest  *models.Booking
}

func (f *fakeService) Catalog() booking.Catalog { return f.catalog }

func (f *fakeService) List(context.Context, int) ([]*models.Booking, error) {
	return nil, nil
}

func (f *fakeService) Latest(context.Context) (*models.Booking, error) {
	if f.latest == nil {
		return nil, models.ErrBookingNotFound
	}
	return f.latest, nil
}

func (f *fakeService) Get(context.Context, string) (*models.Booking, error) {
	return nil, models.ErrBookingNotFound
}

func (f *fakeService) Book(_ context.Context, req booking.BookRequest) (*models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.booked = append(f.booked, req)
	opt, _ := f.catalog.Option(req.OptionID)
	return &models.Booking{
		ID:        len(f.booked),
		Reference: "ref",
		Weeks:     opt.Weeks,
		Days:      opt.Days(),
		Price:     opt.Price(),
		StartDate: req.Start,
		EndDate:   booking.EndDate(req.Start, opt.Weeks),
		CreatedAt: fixedNow(),
	}, nil
}

// setupTestModel creates a sized Model driven by a manual clock.
func setupTestModel(t *testing.T) (Model, *picker.ManualClock, *fakeService) {
	t.Helper()
	clock := picker.NewManualClock()
	svc := &fakeService{catalog: booking.DefaultCatalog()}

	m, err := InitialModel(context.Background(), svc, config.Default(),
		WithScheduler(clock),
		WithNow(fixedNow),
		WithLogger(slog.New(slog.DiscardHandler)),
	)
	require.NoError(t, err)

	return send(m, tea.WindowSizeMsg{Width: 120, Height: 50}), clock, svc
}

// send pushes msg through Update and returns the updated Model.
func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

// press sends one key per string: single characters as text, the rest by name.
func press(m Model, keys ...string) Model {
	for _, k := range keys {
		m = send(m, keyMsg(k))
	}
	return m
}

func keyMsg(k string) tea.KeyPressMsg {
	switch k {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	}
	r := []rune(k)[0]
	return tea.KeyPressMsg{Code: r, Text: k}
}

// regionCenter returns a cell inside the first region of kind and index.
func regionCenter(t *testing.T, f frame, kind hitKind, index int) (int, int) {
	t.Helper()
	for _, r := range f.regions {
		if r.kind == kind && r.index == index {
			return r.rect.X + r.rect.W/2, r.rect.Y + r.rect.H/2
		}
	}
	t.Fatalf("no region %v/%d", kind, index)
	return 0, 0
}

// regionRect returns the first region of kind and index.
func regionRect(t *testing.T, f frame, kind hitKind, index int) hitRegion {
	t.Helper()
	for _, r := range f.regions {
		if r.kind == kind && r.index == index {
			return r
		}
	}
	t.Fatalf("no region %v/%d", kind, index)
	return hitRegion{}
}

func click(m Model, x, y int) Model {
	return send(m, tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft})
}
