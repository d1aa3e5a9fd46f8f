package booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/aftercare/internal/cli"
	"github.com/thenoetrevino/aftercare/internal/cli/handler"
	"github.com/thenoetrevino/aftercare/internal/models"
)

// referenceWidth is how much of a booking reference the list shows
const referenceWidth = 9

// ListCmd returns the bookings subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "List recent bookings",
		Long: `List the most recent bookings, newest first.

Examples:
  aftercare bookings
  aftercare bookings --limit 5 --json
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runList)),
	}

	cmd.Flags().Int("limit", models.DefaultBookingListLimit, "Maximum number of bookings to show")
	cli.AddOutputFlags(cmd)

	return cmd
}

type listResult struct {
	Bookings []*models.Booking `json:"bookings"`
}

func (r listResult) QuietValue() string {
	refs := make([]string, len(r.Bookings))
	for i, b := range r.Bookings {
		refs[i] = b.Reference
	}
	return strings.Join(refs, "\n")
}

func (r listResult) String() string {
	if len(r.Bookings) == 0 {
		return "No bookings found"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d bookings:\n", len(r.Bookings))
	for _, bk := range r.Bookings {
		fmt.Fprintf(&b, "\n  %s  %d wk  %s → %s  (%s)",
			cli.Truncate(bk.Reference, referenceWidth),
			bk.Weeks,
			bk.StartDate,
			bk.EndDate,
			humanize.Time(bk.CreatedAt))
	}
	return b.String()
}

func runList(ctx context.Context, args *handler.Arguments) (any, error) {
	limit, err := args.Parser().ParseLimit("limit")
	if err != nil {
		return nil, err
	}
	return withCLI(ctx, func(c *cli.CLI) (any, error) {
		bookings, err := c.App.BookingService.List(ctx, limit)
		if err != nil {
			return nil, err
		}
		return listResult{Bookings: bookings}, nil
	})
}
