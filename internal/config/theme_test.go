package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/aftercare/internal/config/colors"
)

func writeThemeFile(t *testing.T, name, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv(ThemeFileEnv, path)
}

func TestThemeFileLoading_YAML(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	writeThemeFile(t, "theme.yaml", `theme:
  accent: "#FF0000"
  muted: "#00FF00"
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "#FF0000", cfg.ColorScheme.Accent)
	assert.Equal(t, "#00FF00", cfg.ColorScheme.Muted)
	assert.Equal(t, colors.Default().Normal, cfg.ColorScheme.Normal, "unset colors keep the preset")
}

func TestThemeFileLoading_TOML(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	writeThemeFile(t, "theme.toml", `[theme]
preset = "dragon"
highlight = "#FFFFFF"
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dragon", cfg.ColorScheme.Preset)
	assert.Equal(t, "#FFFFFF", cfg.ColorScheme.Highlight)
	assert.Equal(t, colors.Dragon().Accent, cfg.ColorScheme.Accent)
}

func TestThemeFileLoading_BrokenFileIsIgnored(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	writeThemeFile(t, "theme.toml", "[theme\naccent = ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, colors.Default().Accent, cfg.ColorScheme.Accent)
}

func TestThemeFileLoading_MissingFileIsIgnored(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(ThemeFileEnv, filepath.Join(t.TempDir(), "nope.yaml"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "default", cfg.ColorScheme.Preset)
}
