package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/aftercare/internal/tui/theme"
)

type StatusBarProps struct {
	Width int
	Hint  string
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: "Aftercare - Program booking"
// Right side: the hint, "press ? for help" by default
func RenderStatusBar(props StatusBarProps) string {
	leftText := "Aftercare - Program booking"
	rightText := props.Hint
	if rightText == "" {
		rightText = "press ? for help"
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	leftRendered := style.Render(leftText)
	rightRendered := style.Render(rightText)

	gapWidth := max(props.Width-lipgloss.Width(leftRendered)-lipgloss.Width(rightRendered), 1)
	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
