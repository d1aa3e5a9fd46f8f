package components

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/aftercare/internal/tui/theme"
)

type FieldProps struct {
	Label       string
	Value       string
	Placeholder string
	Active      bool
}

// RenderField renders a captioned date box. An empty value shows the
// placeholder in the subtle color.
func RenderField(props FieldProps) string {
	value := props.Value
	if value == "" {
		value = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Render(props.Placeholder)
	}

	box := FieldStyle
	if props.Active {
		box = box.BorderForeground(lipgloss.Color(theme.Accent))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		FieldLabelStyle.Render(props.Label),
		box.Render(value),
	)
}
