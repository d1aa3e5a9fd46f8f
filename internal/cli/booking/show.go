package booking

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/aftercare/internal/cli"
	"github.com/thenoetrevino/aftercare/internal/cli/handler"
	"github.com/thenoetrevino/aftercare/internal/cli/styles"
	"github.com/thenoetrevino/aftercare/internal/models"
)

// ShowCmd returns the show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <reference>",
		Short: "Show one booking",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.SimpleCommand(handler.HandlerFunc(runShow)),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(ctx context.Context, args *handler.Arguments) (any, error) {
	return withCLI(ctx, func(c *cli.CLI) (any, error) {
		b, err := c.App.BookingService.Get(ctx, args.Args[0])
		if err != nil {
			return nil, err
		}
		return bookingView{Booking: b}, nil
	})
}

func renderBooking(b *models.Booking) string {
	return styles.RenderBookingCard(b)
}
