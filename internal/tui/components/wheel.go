package components

import (
	"iter"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/aftercare/internal/picker"
)

type WheelColumnProps struct {
	Rows        iter.Seq[picker.Row]
	Offset      float64
	ItemHeight  float64
	VisibleRows int
	Width       int
	Focused     bool
}

// WheelWindow returns the first and last item indices drawn for offset.
// The item nearest the center sits on the middle line; indices outside the
// column are drawn as blank lines.
func WheelWindow(offset, itemHeight float64, visibleRows int) (first, last int) {
	center := int(math.Round(offset / itemHeight))
	half := visibleRows / 2
	return center - half, center - half + visibleRows - 1
}

// RenderWheelColumn draws visibleRows lines of a picker column around its
// live offset. Emphasis follows the committed row; the middle line carries
// the center band.
func RenderWheelColumn(props WheelColumnProps) string {
	if props.VisibleRows <= 0 || props.ItemHeight <= 0 {
		return ""
	}
	first, last := WheelWindow(props.Offset, props.ItemHeight, props.VisibleRows)

	lines := make([]string, props.VisibleRows)
	for row := range props.Rows {
		if row.Spacer {
			continue
		}
		if row.Index > last {
			break
		}
		if row.Index < first {
			continue
		}
		style := RowMutedStyle
		if row.Selected {
			style = RowSelectedStyle
		}
		lines[row.Index-first] = style.Render(row.Label)
	}

	mid := props.VisibleRows / 2
	cell := lipgloss.NewStyle().Width(props.Width).Align(lipgloss.Center)
	for i, line := range lines {
		if i == mid {
			band := BandStyle.Width(props.Width).Align(lipgloss.Center)
			if props.Focused {
				band = band.Bold(true)
			}
			lines[i] = band.Render(bandMarkers(line, props.Width))
			continue
		}
		lines[i] = cell.Render(line)
	}
	return strings.Join(lines, "\n")
}

// bandMarkers frames the centered label with ‹ › when there is room.
func bandMarkers(label string, width int) string {
	if lipgloss.Width(label)+4 > width {
		return label
	}
	return "‹ " + label + " ›"
}
