package colors

import "reflect"

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "wave")
	Preset string `yaml:"preset" toml:"preset"`

	// Primary accent color (selected card, enabled buttons, picker band)
	Accent    string `yaml:"accent" toml:"accent"`
	AccentAlt string `yaml:"accent_alt" toml:"accent_alt"` // second gradient stop

	// Surfaces
	Background     string `yaml:"background" toml:"background"`
	CardBackground string `yaml:"card_background" toml:"card_background"`
	Border         string `yaml:"border" toml:"border"`
	SelectedBorder string `yaml:"selected_border" toml:"selected_border"`

	// Text colors
	Title    string `yaml:"title" toml:"title"`
	Normal   string `yaml:"normal" toml:"normal"`
	Subtle   string `yaml:"subtle" toml:"subtle"`     // secondary copy
	Muted    string `yaml:"muted" toml:"muted"`       // picker rows away from the center
	Disabled string `yaml:"disabled" toml:"disabled"` // NEXT without a full selection

	// Decorations (stars)
	Highlight string `yaml:"highlight" toml:"highlight"`

	// Button text on the accent background
	ButtonFg string `yaml:"button_fg" toml:"button_fg"`

	// Notification colors (foreground/background pairs)
	InfoFg  string `yaml:"info_fg" toml:"info_fg"`
	InfoBg  string `yaml:"info_bg" toml:"info_bg"`
	ErrorFg string `yaml:"error_fg" toml:"error_fg"`
	ErrorBg string `yaml:"error_bg" toml:"error_bg"`
}

// Presets lists the preset names GetPreset knows.
var Presets = []string{"default", "monochrome", "wave", "dragon", "lotus"}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	case "dragon":
		return Dragon()
	case "lotus":
		return Lotus()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	fillEmpty(c, preset)
}

// MergeFrom copies every non-empty field of other over c. A different preset
// resets the colors to that preset first.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" && other.Preset != c.Preset {
		*c = ColorScheme{Preset: other.Preset}
		c.ApplyDefaults()
	}
	fillEmpty(&other, c)
	*c = other
}

// fillEmpty sets every empty string field of dst from src.
func fillEmpty(dst, src *ColorScheme) {
	dv := reflect.ValueOf(dst).Elem()
	sv := reflect.ValueOf(src).Elem()
	for i := range dv.NumField() {
		if f := dv.Field(i); f.Kind() == reflect.String && f.String() == "" {
			f.SetString(sv.Field(i).String())
		}
	}
}
