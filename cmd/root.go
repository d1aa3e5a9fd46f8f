package cmd

import (
	"github.com/spf13/cobra"

	clibooking "github.com/thenoetrevino/aftercare/internal/cli/booking"
	"github.com/thenoetrevino/aftercare/internal/launcher"
)

var rootCmd = &cobra.Command{
	Use:   "aftercare",
	Short: "Aftercare - book a weekly aftercare program",
	Long: `Aftercare books a weekly aftercare program from the terminal.

Run without arguments to open the booking screen, or use the subcommands
to script bookings.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launcher.Launch()
	},
}

func init() {
	rootCmd.AddCommand(clibooking.Commands()...)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
