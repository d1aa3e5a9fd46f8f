package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/aftercare/internal/config/colors"
)

func writeConfig(t *testing.T, content string) {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "aftercare")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644))
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	assert.Equal(t, "q", defaults.Quit)
	assert.Equal(t, "space", defaults.SelectOption)
	assert.Equal(t, "enter", defaults.Confirm)
	assert.Equal(t, "esc", defaults.Cancel)
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(ThemeFileEnv, "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "q", cfg.KeyMappings.Quit)
	assert.Equal(t, "default", cfg.ColorScheme.Preset)
	assert.Equal(t, DefaultPickerConfig(), cfg.Picker)
	assert.Equal(t, DefaultProgramConfig(), cfg.Program)
	assert.Equal(t, 220.0, cfg.Picker.ViewportHeight())
}

func TestLoadConfigWithFile(t *testing.T) {
	t.Setenv(ThemeFileEnv, "")
	writeConfig(t, `key_mappings:
  quit: "x"
  pick_date: "c"
picker:
  visible_rows: 7
  debounce_ms: 80
  year_min: 2020
  year_max: 2035
program:
  price_per_week: 40
theme:
  preset: monochrome
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "x", cfg.KeyMappings.Quit)
	assert.Equal(t, "c", cfg.KeyMappings.PickDate)
	assert.Equal(t, "esc", cfg.KeyMappings.Cancel, "missing keys fall back to defaults")

	assert.Equal(t, 7, cfg.Picker.VisibleRows)
	assert.Equal(t, 44.0, cfg.Picker.ItemHeight)
	assert.Equal(t, 44.0, cfg.Picker.WheelStep)
	assert.Equal(t, 80, int(cfg.Picker.Debounce().Milliseconds()))
	assert.Equal(t, 150, int(cfg.Picker.OpenDelay().Milliseconds()))
	assert.Equal(t, 2020, cfg.Picker.YearMin)
	assert.Len(t, cfg.Picker.Options(), 4)

	assert.Equal(t, 40, cfg.Program.PricePerWeek)
	assert.Equal(t, 4, cfg.Program.MaxWeeks)

	assert.Equal(t, colors.Monochrome().Accent, cfg.ColorScheme.Accent)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv(ThemeFileEnv, "")

	writeConfig(t, "picker:\n  year_min: 2040\n  year_max: 2030\n")
	_, err := Load()
	assert.ErrorIs(t, err, ErrInvalidYearRange)

	writeConfig(t, "picker:\n  visible_rows: 4\n")
	_, err = Load()
	assert.ErrorIs(t, err, ErrInvalidVisibleRows)

	writeConfig(t, "program:\n  max_weeks: -1\n")
	_, err = Load()
	assert.ErrorIs(t, err, ErrInvalidProgram)

	writeConfig(t, "picker: [not, a, map]\n")
	_, err = Load()
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(ThemeFileEnv, "")

	cfg := Default()
	cfg.KeyMappings.Next = "N"
	cfg.Program.SessionDays = "Mon, Wed"
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
