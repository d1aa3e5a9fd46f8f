package styles

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/aftercare/internal/booking"
	"github.com/thenoetrevino/aftercare/internal/config/colors"
	"github.com/thenoetrevino/aftercare/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 60

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Start:", "Ends:"
	ValueStyle    lipgloss.Style // For field values

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
)

func init() {
	Init(*colors.Default())
}

// Init initializes all CLI styles with the given color scheme
func Init(scheme colors.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.InfoFg)).
		Background(lipgloss.Color(scheme.InfoBg)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.ErrorFg)).
		Background(lipgloss.Color(scheme.ErrorBg)).
		Padding(0, 1)
}

// Field renders "Label: value" with the label highlighted
func Field(label, value string) string {
	return LabelStyle.Render(label+":") + " " + ValueStyle.Render(value)
}

// RenderBookingCard renders a stored booking as a bordered card
func RenderBookingCard(b *models.Booking) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render(fmt.Sprintf("%d-week aftercare program", b.Weeks)),
		SubtitleStyle.Render(b.Reference),
		"",
		Field("Starts", b.StartDate),
		Field("Ends", b.EndDate),
		Field("Sessions", fmt.Sprintf("%d days", b.Days)),
		Field("Price", fmt.Sprintf("$%d", b.Price)),
	)
	return CardStyle.Render(content)
}

// RenderOption renders one catalog line: "2 WEEKS  $70 for 10 days  (2 Weeks X 5 Days) = 10 Days"
func RenderOption(o models.WeekOption) string {
	return fmt.Sprintf("%s  %s  %s",
		TitleStyle.Render(fmt.Sprintf("[%d] %s", o.ID, booking.WeeksLabel(o))),
		ValueStyle.Render(booking.PriceLabel(o)),
		SubtitleStyle.Render(booking.DetailLabel(o)))
}
