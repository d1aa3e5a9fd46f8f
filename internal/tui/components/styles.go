// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/aftercare/internal/config/colors"
	"github.com/thenoetrevino/aftercare/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// compared to the defaults, these feel like
	// they take up less space
	activeTabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      " ",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┘",
		BottomRight: "└",
	}

	tabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┴",
		BottomRight: "┴",
	}

	// TabStyle defines inactive navbar tabs
	TabStyle lipgloss.Style

	// ActiveTabStyle defines the current navbar tab
	ActiveTabStyle lipgloss.Style

	// TabGapStyle fills the remaining space after tabs
	TabGapStyle lipgloss.Style

	// TitleStyle defines page and modal headings
	TitleStyle lipgloss.Style

	// SubtitleStyle defines secondary copy under headings
	SubtitleStyle lipgloss.Style

	// LinkStyle defines the back link above the heading
	LinkStyle lipgloss.Style

	// CardStyle defines an unselected week card
	CardStyle lipgloss.Style

	// SelectedCardStyle defines the chosen week card
	SelectedCardStyle lipgloss.Style

	// StarStyle colors the card decoration
	StarStyle lipgloss.Style

	// FieldStyle defines the start and end date boxes
	FieldStyle lipgloss.Style

	// FieldLabelStyle defines the caption above a date box
	FieldLabelStyle lipgloss.Style

	// ModalBoxStyle defines the date picker dialog
	ModalBoxStyle lipgloss.Style

	// HelpBoxStyle defines the help overlay
	HelpBoxStyle lipgloss.Style

	// BandStyle marks the center row of each wheel column
	BandStyle lipgloss.Style

	// RowSelectedStyle emphasizes the committed wheel value
	RowSelectedStyle lipgloss.Style

	// RowMutedStyle dims every other wheel value
	RowMutedStyle lipgloss.Style

	// ButtonStyle defines enabled buttons
	ButtonStyle lipgloss.Style

	// SecondaryButtonStyle defines BACK and CANCEL
	SecondaryButtonStyle lipgloss.Style

	// DisabledButtonStyle defines NEXT before the booking is complete
	DisabledButtonStyle lipgloss.Style

	// FooterStyle defines the price call to action
	FooterStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(scheme colors.ColorScheme) {
	theme.Init(scheme)

	TabStyle = lipgloss.NewStyle().
		Border(tabBorder, true).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(0, 1)

	ActiveTabStyle = TabStyle.Border(activeTabBorder, true)

	TabGapStyle = TabStyle.
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	LinkStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.AccentAlt)).
		Underline(true)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Border)).
		Background(lipgloss.Color(theme.CardBg)).
		Padding(0, 1).
		Width(CardWidth).
		Height(CardHeight)

	SelectedCardStyle = CardStyle.
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(theme.Accent))

	StarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Highlight))

	FieldStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Border)).
		Padding(0, 1).
		Width(FieldWidth)

	FieldLabelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Bold(true)

	ModalBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.AccentAlt)).
		Padding(1, 2)

	BandStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(theme.CardBg))

	RowSelectedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal)).
		Bold(true)

	RowMutedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Muted))

	ButtonStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ButtonFg)).
		Background(lipgloss.Color(theme.Accent)).
		Bold(true).
		Padding(0, 2)

	SecondaryButtonStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent)).
		Underline(true).
		Padding(0, 2)

	DisabledButtonStyle = ButtonStyle.
		Foreground(lipgloss.Color(theme.Subtle)).
		Background(lipgloss.Color(theme.Disabled))

	FooterStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Title)).
		Bold(true)
}
