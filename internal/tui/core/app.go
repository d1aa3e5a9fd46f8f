package core

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/aftercare/internal/app"
	"github.com/thenoetrevino/aftercare/internal/config"
	"github.com/thenoetrevino/aftercare/internal/tui"
)

// App wraps the TUI Model and implements the tea.Model interface.
// This is the single entry point for the Bubble Tea application.
type App struct {
	model *tui.Model
}

// New creates a new App with an initialized Model.
func New(ctx context.Context, application *app.App, cfg *config.Config, opts ...tui.Option) (*App, error) {
	opts = append([]tui.Option{tui.WithLogger(application.Logger())}, opts...)
	model, err := tui.InitialModel(ctx, application.BookingService, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &App{model: &model}, nil
}

// Init initializes the Bubble Tea application.
func (a *App) Init() tea.Cmd {
	return a.model.Init()
}

// Update handles all messages and stores the updated Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedModel, cmd := a.model.Update(msg)
	if m, ok := updatedModel.(tui.Model); ok {
		*a.model = m
	}
	return a, cmd
}

// View renders the current state of the application.
func (a *App) View() tea.View {
	return a.model.View()
}

// GetModel returns the underlying Model.
// This is primarily useful for testing purposes.
func (a *App) GetModel() *tui.Model {
	return a.model
}
