package handler

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/aftercare/internal/booking"
	"github.com/thenoetrevino/aftercare/internal/cli"
)

// createTestCommand creates a command with the flags the booking commands use
func createTestCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{
		Use: "test",
		Run: func(cmd *cobra.Command, args []string) {},
	}
	cmd.Flags().Int("weeks", 0, "")
	cmd.Flags().Int("limit", 20, "")
	cmd.Flags().String("start", "", "")
	cli.AddOutputFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestParseWeeks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    int
		wantErr error
	}{
		{name: "valid", args: []string{"--weeks", "3"}, want: 3},
		{name: "zero", args: []string{"--weeks", "0"}, wantErr: booking.ErrInvalidWeeks},
		{name: "negative", args: []string{"--weeks", "-2"}, wantErr: booking.ErrInvalidWeeks},
		{name: "missing", args: nil, wantErr: booking.ErrInvalidWeeks},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewFlagParser(createTestCommand(t, tt.args...)).ParseWeeks("weeks")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStart(t *testing.T) {
	t.Parallel()

	got, err := NewFlagParser(createTestCommand(t, "--start", "January 18, 2026")).ParseStart("start")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.January, 18, 0, 0, 0, 0, time.UTC), got)

	got, err = NewFlagParser(createTestCommand(t, "--start", "2026-02-03")).ParseStart("start")
	require.NoError(t, err)
	assert.Equal(t, time.February, got.Month())

	_, err = NewFlagParser(createTestCommand(t, "--start", "someday")).ParseStart("start")
	assert.ErrorIs(t, err, booking.ErrInvalidDate)

	_, err = NewFlagParser(createTestCommand(t)).ParseStart("start")
	assert.ErrorIs(t, err, booking.ErrInvalidDate)
}

func TestParseLimit(t *testing.T) {
	t.Parallel()

	got, err := NewFlagParser(createTestCommand(t)).ParseLimit("limit")
	require.NoError(t, err)
	assert.Equal(t, 20, got)

	_, err = NewFlagParser(createTestCommand(t, "--limit", "0")).ParseLimit("limit")
	assert.ErrorIs(t, err, booking.ErrInvalidLimit)
}

func TestOutputFormats(t *testing.T) {
	t.Parallel()

	jsonOutput, quiet, err := NewFlagParser(createTestCommand(t, "--json")).OutputFormats()
	require.NoError(t, err)
	assert.True(t, jsonOutput)
	assert.False(t, quiet)
}

func TestArguments_Getters(t *testing.T) {
	t.Parallel()

	cmd := createTestCommand(t, "--weeks", "2", "--start", "March 1, 2026")
	args := &Arguments{Flags: parseFlagsToMap(cmd), cmd: cmd}

	assert.Equal(t, 2, args.GetInt("weeks", 0))
	assert.Equal(t, 20, args.GetInt("limit", 20), "unset flags fall back to the default")
	assert.Equal(t, "March 1, 2026", args.GetString("start", ""))
	assert.True(t, args.IsSet("weeks"))
	assert.False(t, args.IsSet("limit"))
	assert.False(t, args.GetBool("json"))
}

func TestCommand_ReportsHandlerErrors(t *testing.T) {
	t.Parallel()

	cmd := createTestCommand(t, "--json")
	run := SimpleCommand(HandlerFunc(func(context.Context, *Arguments) (any, error) {
		return nil, booking.ErrUnknownOption
	}))
	cmd.SetContext(context.Background())
	cmd.SetOut(io.Discard)

	err := run(cmd, nil)

	var coded *cli.CodedError
	require.True(t, errors.As(err, &coded))
	assert.Equal(t, cli.ExitNotFound, coded.Code)
}
