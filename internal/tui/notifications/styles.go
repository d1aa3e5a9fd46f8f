package notifications

import "github.com/thenoetrevino/aftercare/internal/tui/theme"

type style struct {
	icon             string
	title            string
	foreground       string
	background       string
	borderForeground string
}

func (s Severity) style() style {
	if s == Error {
		return style{
			icon:             "✕",
			title:            "Error",
			foreground:       theme.ErrorFg,
			background:       theme.ErrorBg,
			borderForeground: theme.ErrorBg,
		}
	}
	return style{
		icon:             "🔔",
		title:            "Info",
		foreground:       theme.InfoFg,
		background:       theme.InfoBg,
		borderForeground: theme.InfoBg,
	}
}
