package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/aftercare/internal/booking"
	"github.com/thenoetrevino/aftercare/internal/models"
)

type CardProps struct {
	Option   models.WeekOption
	Selected bool
	Focused  bool
}

// RenderCard renders one week option:
//
//	╭──────────────────────────────╮
//	│ ★ ★                          │
//	│ 2 WEEKS                      │
//	│ $70 for 10 days              │
//	│ (2 Weeks X 5 Days) = 10 Days │
//	╰──────────────────────────────╯
func RenderCard(props CardProps) string {
	stars := StarStyle.Render(strings.TrimSpace(strings.Repeat("★ ", max(props.Option.Weeks, 1))))

	title := booking.WeeksLabel(props.Option)
	if props.Focused {
		title = "› " + title
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		stars,
		TitleStyle.Render(title),
		SubtitleStyle.Render(booking.PriceLabel(props.Option)),
		SubtitleStyle.Render(booking.DetailLabel(props.Option)),
	)

	if props.Selected {
		return SelectedCardStyle.Render(content)
	}
	return CardStyle.Render(content)
}
