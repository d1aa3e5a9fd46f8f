package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/aftercare/internal/app"
	"github.com/thenoetrevino/aftercare/internal/config"
	"github.com/thenoetrevino/aftercare/internal/logging"
	"github.com/thenoetrevino/aftercare/internal/tui/core"
)

// shutdownGrace is how long an interrupted program gets to finish a save
const shutdownGrace = 2 * time.Second

// Launch starts the TUI application
func Launch() error {
	// Initialize logging to file before anything else
	if err := logging.Init(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	application, err := app.Open(ctx, cfg, app.WithLogger(logging.Logger))
	if err != nil {
		return err
	}

	// database cleanup
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	tuiApp, err := core.New(ctx, application, cfg)
	if err != nil {
		return fmt.Errorf("failed to create booking screen: %w", err)
	}
	p := tea.NewProgram(tuiApp, tea.WithContext(ctx))

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	// Wait for program completion or cancellation
	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		select {
		case <-errChan:
		case <-time.After(shutdownGrace):
			slog.Warn("program did not stop in time")
		}
	}

	return nil
}
