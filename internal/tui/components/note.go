package components

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/thenoetrevino/aftercare/internal/tui/theme"
)

type NoteProps struct {
	Markdown string
	Width    int
}

// Cache Glamour renderers by width to avoid expensive re-creation
var (
	rendererCache sync.Map // map[int]*glamour.TermRenderer
)

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderNote renders the markdown reminder under the wheel. It falls back to
// the raw text when glamour fails.
func RenderNote(props NoteProps) string {
	if props.Markdown == "" {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Render("Pick a start date")
	}

	renderer, err := getRenderer(props.Width)
	if err == nil {
		rendered, err := renderer.Render(props.Markdown)
		if err == nil {
			return strings.TrimSpace(rendered)
		}
	}
	return props.Markdown
}
