// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// Rect is a screen rectangle in terminal cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Offset returns r moved by dx, dy.
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// CenteredOrigin returns the top-left cell that centers a block of the given
// size on the screen, never negative.
func CenteredOrigin(contentWidth, contentHeight, screenWidth, screenHeight int) (int, int) {
	x := max((screenWidth-contentWidth)/2, 0)
	y := max((screenHeight-contentHeight)/2, 0)
	return x, y
}

// CreateCenteredLayer creates a layer positioned at the center of the screen.
//
// Returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x, y := CenteredOrigin(lipgloss.Width(content), lipgloss.Height(content), screenWidth, screenHeight)
	return lipgloss.NewLayer(content).X(x).Y(y)
}

// ModalWidth picks the date picker modal width for the screen
func ModalWidth(screenWidth int) int {
	return min(max(screenWidth/ModalWidthDivisor, ModalMinWidth), ModalMaxWidth)
}
