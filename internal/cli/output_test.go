package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"charm.land/huh/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/aftercare/internal/app"
	"github.com/thenoetrevino/aftercare/internal/booking"
	"github.com/thenoetrevino/aftercare/internal/database"
	"github.com/thenoetrevino/aftercare/internal/models"
)

type quietThing struct{ Ref string }

func (q quietThing) QuietValue() string { return q.Ref }
func (q quietThing) String() string     { return "thing " + q.Ref }

func newTestFormatter(jsonOutput, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonOutput, Quiet: quiet, Out: &out, Err: &errOut}, &out, &errOut
}

func TestOutputFormatter_Success(t *testing.T) {
	f, out, _ := newTestFormatter(false, false)
	require.NoError(t, f.Success(quietThing{Ref: "abc"}))
	assert.Equal(t, "thing abc\n", out.String())

	f, out, _ = newTestFormatter(false, true)
	require.NoError(t, f.Success(quietThing{Ref: "abc"}))
	assert.Equal(t, "abc\n", out.String())

	f, out, _ = newTestFormatter(true, false)
	require.NoError(t, f.Success(quietThing{Ref: "abc"}))
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, true, decoded["success"])
	assert.Equal(t, map[string]any{"Ref": "abc"}, decoded["data"])
}

func TestOutputFormatter_ErrorWithSuggestion(t *testing.T) {
	f, _, errOut := newTestFormatter(false, false)
	require.NoError(t, f.ErrorWithSuggestion("X", "broken", "fix it"))
	assert.Contains(t, errOut.String(), "Error: broken")
	assert.Contains(t, errOut.String(), "Suggestion: fix it")

	f, out, _ := newTestFormatter(true, false)
	require.NoError(t, f.Error("X", "broken"))
	assert.JSONEq(t, `{"success":false,"error":{"code":"X","message":"broken"}}`, out.String())
}

func TestOutputFormatter_Fail(t *testing.T) {
	f, _, errOut := newTestFormatter(false, false)
	err := f.Fail(fmt.Errorf("lookup: %w", models.ErrBookingNotFound))

	assert.ErrorIs(t, err, models.ErrBookingNotFound)
	assert.Equal(t, ExitNotFound, ExitCode(err))
	assert.Contains(t, errOut.String(), "aftercare bookings")
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		code string
		exit int
	}{
		{booking.ErrInvalidDate, "INVALID_DATE", ExitValidation},
		{booking.ErrInvalidWeeks, "INVALID_WEEKS", ExitValidation},
		{booking.ErrUnknownOption, "OPTION_NOT_FOUND", ExitNotFound},
		{booking.ErrInvalidLimit, "INVALID_LIMIT", ExitUsage},
		{booking.ErrEmptyCatalog, "INVALID_PROGRAM", ExitDataErr},
		{huh.ErrUserAborted, "CANCELLED", ExitCancelled},
		{errors.New("disk full"), "INTERNAL_ERROR", ExitError},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			p := Classify(fmt.Errorf("wrapped: %w", tt.err))
			assert.Equal(t, tt.code, p.Code)
			assert.Equal(t, tt.exit, p.Exit)
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitError, ExitCode(errors.New("plain")))
	assert.Equal(t, ExitUsage, ExitCode(fmt.Errorf("outer: %w", &CodedError{Code: ExitUsage, Err: errors.New("x")})))
}

func TestWrapAndTruncate(t *testing.T) {
	assert.Equal(t, "one two\nthree", Wrap("one two three", 8))
	assert.Equal(t, "one two three", Wrap("one two three", 0))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
	assert.Equal(t, "abc", Truncate("abc", 5))
}

func TestGetCLIFromContext_UsesInjectedApp(t *testing.T) {
	db, err := database.OpenDB(context.Background(), ":memory:")
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	application := app.New(database.NewRepository(db), booking.DefaultCatalog(), app.WithCloser(db))

	c, err := GetCLIFromContext(WithApp(context.Background(), application))
	require.NoError(t, err)
	assert.Same(t, application, c.App)
	assert.NotNil(t, c.Config)

	// the injected App belongs to the caller
	require.NoError(t, c.Close())
	assert.NoError(t, db.PingContext(context.Background()))
}
