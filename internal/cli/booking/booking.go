// Package booking holds the CLI commands for week options and bookings
package booking

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/aftercare/internal/cli"
	"github.com/thenoetrevino/aftercare/internal/models"
)

// Commands returns the booking subcommands registered on the root command
func Commands() []*cobra.Command {
	return []*cobra.Command{
		EndDateCmd(),
		OptionsCmd(),
		ListCmd(),
		ShowCmd(),
		BookCmd(),
	}
}

// withCLI runs fn with a CLI for ctx and closes it afterwards
func withCLI(ctx context.Context, fn func(*cli.CLI) (any, error)) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()
	return fn(cliInstance)
}

// bookingView is a stored booking as the commands print it
type bookingView struct {
	*models.Booking
	note string
}

func (v bookingView) QuietValue() string {
	return v.Reference
}

func (v bookingView) String() string {
	var b strings.Builder
	b.WriteString(renderBooking(v.Booking))
	if v.note != "" {
		fmt.Fprintf(&b, "\n\n%s", v.note)
	}
	return b.String()
}
