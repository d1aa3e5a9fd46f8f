package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/aftercare/internal/app"
	"github.com/thenoetrevino/aftercare/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
	ctx    context.Context

	// owned is false when the App was handed in through the context and
	// belongs to the caller
	owned bool
}

// NewCLI loads the configuration and opens the bookings database
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	application, err := app.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &CLI{
		App:    application,
		Config: cfg,
		ctx:    ctx,
		owned:  true,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
