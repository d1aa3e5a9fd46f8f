package booking

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/aftercare/internal/booking"
	"github.com/thenoetrevino/aftercare/internal/cli"
	"github.com/thenoetrevino/aftercare/internal/cli/handler"
)

// EndDateCmd returns the enddate subcommand
func EndDateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enddate",
		Short: "Compute the end date of a program",
		Long: `Compute the last day of a program that starts on --start and lasts --weeks weeks.

Examples:
  aftercare enddate --start "January 18, 2026" --weeks 2
  aftercare enddate --start 2026-01-18 --weeks 4 --quiet
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runEndDate)),
	}

	cmd.Flags().String("start", "", "Start date, e.g. \"January 18, 2026\" (required)")
	cmd.Flags().Int("weeks", 0, "Program length in weeks (required)")
	cli.AddOutputFlags(cmd)

	return cmd
}

// endDateResult is the output of enddate
type endDateResult struct {
	Start string `json:"start"`
	Weeks int    `json:"weeks"`
	End   string `json:"end"`
}

func (r endDateResult) QuietValue() string {
	return r.End
}

func (r endDateResult) String() string {
	return fmt.Sprintf("A %d-week program starting %s ends on %s", r.Weeks, r.Start, r.End)
}

func runEndDate(_ context.Context, args *handler.Arguments) (any, error) {
	parser := args.Parser()
	weeks, err := parser.ParseWeeks("weeks")
	if err != nil {
		return nil, err
	}
	start, err := parser.ParseStart("start")
	if err != nil {
		return nil, err
	}

	startLabel := booking.Format(start)
	return endDateResult{
		Start: startLabel,
		Weeks: weeks,
		End:   booking.EndDate(startLabel, weeks),
	}, nil
}
