package theme

import "github.com/thenoetrevino/aftercare/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Accent         string
	AccentAlt      string
	Background     string
	CardBg         string
	Border         string
	SelectedBorder string
	Title          string
	Normal         string
	Subtle         string
	Muted          string
	Disabled       string
	Highlight      string
	ButtonFg       string
	InfoFg         string
	InfoBg         string
	ErrorFg        string
	ErrorBg        string
)

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	Accent = scheme.Accent
	AccentAlt = scheme.AccentAlt
	Background = scheme.Background
	CardBg = scheme.CardBackground
	Border = scheme.Border
	SelectedBorder = scheme.SelectedBorder
	Title = scheme.Title
	Normal = scheme.Normal
	Subtle = scheme.Subtle
	Muted = scheme.Muted
	Disabled = scheme.Disabled
	Highlight = scheme.Highlight
	ButtonFg = scheme.ButtonFg
	InfoFg = scheme.InfoFg
	InfoBg = scheme.InfoBg
	ErrorFg = scheme.ErrorFg
	ErrorBg = scheme.ErrorBg
}
