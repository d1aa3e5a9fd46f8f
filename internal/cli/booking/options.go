package booking

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/aftercare/internal/booking"
	"github.com/thenoetrevino/aftercare/internal/cli"
	"github.com/thenoetrevino/aftercare/internal/cli/handler"
	"github.com/thenoetrevino/aftercare/internal/cli/styles"
)

// OptionsCmd returns the options subcommand
func OptionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the week packages on offer",
		RunE:  handler.SimpleCommand(handler.HandlerFunc(runOptions)),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

// optionView is one catalog entry with its derived values
type optionView struct {
	ID     int    `json:"id"`
	Weeks  int    `json:"weeks"`
	Days   int    `json:"days"`
	Price  int    `json:"price"`
	Label  string `json:"label"`
	Detail string `json:"detail"`
}

type optionsResult struct {
	SessionDays string       `json:"session_days"`
	Options     []optionView `json:"options"`

	catalog booking.Catalog
}

func (r optionsResult) QuietValue() string {
	ids := make([]string, len(r.Options))
	for i, o := range r.Options {
		ids[i] = strconv.Itoa(o.ID)
	}
	return strings.Join(ids, "\n")
}

func (r optionsResult) String() string {
	lines := []string{styles.SubtitleStyle.Render(booking.SelectionLabel(r.SessionDays)), ""}
	for _, o := range r.catalog.Options {
		lines = append(lines, styles.RenderOption(o))
	}
	return strings.Join(lines, "\n")
}

func runOptions(ctx context.Context, _ *handler.Arguments) (any, error) {
	return withCLI(ctx, func(c *cli.CLI) (any, error) {
		catalog := c.App.BookingService.Catalog()
		result := optionsResult{SessionDays: catalog.SessionDays, catalog: catalog}
		for _, o := range catalog.Options {
			result.Options = append(result.Options, optionView{
				ID:     o.ID,
				Weeks:  o.Weeks,
				Days:   o.Days(),
				Price:  o.Price(),
				Label:  booking.WeeksLabel(o),
				Detail: booking.DetailLabel(o),
			})
		}
		return result, nil
	})
}
