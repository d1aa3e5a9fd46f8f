package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/aftercare/internal/booking"
	"github.com/thenoetrevino/aftercare/internal/config"
	"github.com/thenoetrevino/aftercare/internal/database"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	// Service layer (business logic)
	BookingService booking.Service

	logger *slog.Logger
	closer io.Closer
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(repo database.DataStore, catalog booking.Catalog, opts ...Option) *App {
	cfg := appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	serviceOpts := []booking.ServiceOption{booking.WithServiceLogger(cfg.logger)}
	if cfg.newRef != nil {
		serviceOpts = append(serviceOpts, booking.WithReferenceFunc(cfg.newRef))
	}

	return &App{
		repo:           repo,
		BookingService: booking.NewService(repo, catalog, serviceOpts...),
		logger:         cfg.logger,
		closer:         cfg.closer,
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases the resource registered with WithCloser, if any.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

// Open initializes the bookings database and builds an App whose catalog
// comes from the program section of cfg. Closing the App closes the database.
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	program := cfg.Program
	catalog, err := booking.NewCatalog(program.MaxWeeks, program.PricePerWeek,
		program.SessionsPerWeek, program.SessionDays)
	if err != nil {
		return nil, fmt.Errorf("invalid program configuration: %w", err)
	}

	db, err := database.InitDB(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	opts = append([]Option{WithCloser(db)}, opts...)
	return New(database.NewRepository(db), catalog, opts...), nil
}
