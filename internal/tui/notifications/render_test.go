package notifications

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/aftercare/internal/tui/state"
)

func TestRender_ContainsTitleAndMessage(t *testing.T) {
	out := Render(Info, "Booking saved")

	assert.Contains(t, out, "Info")
	assert.Contains(t, out, "Booking saved")
	// border adds two lines around header and message
	assert.Equal(t, 4, lipgloss.Height(out))
}

func TestRenderFromState_Levels(t *testing.T) {
	assert.Contains(t, RenderFromState(state.Notification{Level: state.LevelError, Message: "boom"}), "Error")
	assert.Contains(t, RenderFromState(state.Notification{Level: state.LevelInfo, Message: "ok"}), "Info")
}

func TestRenderInline(t *testing.T) {
	out := RenderInline(Error, "could not save")

	assert.Contains(t, out, "could not save")
	assert.Equal(t, 1, lipgloss.Height(out))
}
