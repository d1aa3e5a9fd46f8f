package booking

import (
	"context"
	"fmt"
	"strings"

	"charm.land/huh/v2"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/aftercare/internal/booking"
	"github.com/thenoetrevino/aftercare/internal/cli"
	"github.com/thenoetrevino/aftercare/internal/cli/handler"
	"github.com/thenoetrevino/aftercare/internal/tui/huhforms"
)

// noteWidth is the wrap width of the reminder printed after booking
const noteWidth = 72

// BookCmd returns the book subcommand
func BookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book an aftercare program",
		Long: `Book an aftercare program. Without --weeks and --start an interactive
form asks for the package and the start date.

Examples:
  # Interactive
  aftercare book

  # Scripted
  aftercare book --weeks 2 --start "January 18, 2026" --quiet
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runBook)),
	}

	cmd.Flags().Int("weeks", 0, "Program length in weeks")
	cmd.Flags().String("start", "", "Start date, e.g. \"January 18, 2026\"")
	cli.AddOutputFlags(cmd)

	return cmd
}

// promptBooking fills values through the interactive form. Tests swap it out.
var promptBooking = func(c *cli.CLI, values *huhforms.BookingValues) error {
	form := huhforms.CreateBookingForm(c.App.BookingService.Catalog(), values).
		WithTheme(huhforms.CreateTheme(c.Config.ColorScheme))
	return form.Run()
}

func runBook(ctx context.Context, args *handler.Arguments) (any, error) {
	return withCLI(ctx, func(c *cli.CLI) (any, error) {
		catalog := c.App.BookingService.Catalog()

		req, err := bookRequestFromFlags(args, catalog)
		if err != nil {
			return nil, err
		}
		if req == nil {
			values := huhforms.BookingValues{}
			if err := promptBooking(c, &values); err != nil {
				return nil, err
			}
			if !values.Confirm {
				return nil, huh.ErrUserAborted
			}
			req = &booking.BookRequest{OptionID: values.OptionID, Start: values.Start}
		}

		b, err := c.App.BookingService.Book(ctx, *req)
		if err != nil {
			return nil, err
		}

		note := booking.Note(b.Weeks, b.StartDate, catalog.SessionDays)
		note = cli.Wrap(strings.ReplaceAll(note, "**", ""), noteWidth)
		return bookingView{Booking: b, note: note}, nil
	})
}

// bookRequestFromFlags returns nil when neither --weeks nor --start was
// given, meaning the form should ask
func bookRequestFromFlags(args *handler.Arguments, catalog booking.Catalog) (*booking.BookRequest, error) {
	if !args.IsSet("weeks") && !args.IsSet("start") {
		return nil, nil
	}

	parser := args.Parser()
	weeks, err := parser.ParseWeeks("weeks")
	if err != nil {
		return nil, err
	}
	start, err := parser.ParseStart("start")
	if err != nil {
		return nil, err
	}
	option, ok := catalog.ForWeeks(weeks)
	if !ok {
		return nil, fmt.Errorf("%d weeks: %w", weeks, booking.ErrUnknownOption)
	}
	return &booking.BookRequest{OptionID: option.ID, Start: booking.Format(start)}, nil
}
