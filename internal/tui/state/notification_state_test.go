package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotificationState_AddAndClear(t *testing.T) {
	s := NewNotificationState()
	assert.False(t, s.HasAny())

	s.Add(LevelInfo, "saved")
	s.Add(LevelError, "failed")
	assert.Len(t, s.All(), 2)

	s.ClearLevel(LevelError)
	assert.Equal(t, []Notification{{Level: LevelInfo, Message: "saved"}}, s.All())

	s.Clear()
	assert.False(t, s.HasAny())
}

// TestNotificationState_GetLayers_NoWindow renders nothing before the first resize.
func TestNotificationState_GetLayers_NoWindow(t *testing.T) {
	s := NewNotificationState()
	s.Add(LevelInfo, "saved")

	assert.Empty(t, s.GetLayers(func(n Notification) string { return n.Message }))
}

// TestNotificationState_GetLayers_DropsOffscreen stops stacking at the bottom edge.
func TestNotificationState_GetLayers_DropsOffscreen(t *testing.T) {
	s := NewNotificationState()
	s.SetWindowSize(40, 4)
	s.Add(LevelInfo, "one")
	s.Add(LevelInfo, "two")
	s.Add(LevelInfo, "three")

	layers := s.GetLayers(func(n Notification) string { return n.Message })
	assert.Len(t, layers, 2)
}
