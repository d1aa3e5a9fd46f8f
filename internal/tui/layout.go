package tui

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/aftercare/internal/tui/layers"
)

// hitKind names the clickable parts of a rendered frame.
type hitKind int

const (
	hitNone hitKind = iota
	hitBackLink
	hitCard
	hitStartField
	hitBack
	hitNext
	hitModal
	hitColumn
	hitCancel
	hitConfirm
)

// hitRegion is a clickable rectangle in screen cells. index is the card or
// column number for hitCard and hitColumn.
type hitRegion struct {
	kind  hitKind
	index int
	rect  layers.Rect
}

// frame is rendered content plus the regions mouse input is tested against.
type frame struct {
	content string
	regions []hitRegion
}

// hitTest returns the last region added at (x, y); later regions sit on top.
func (f frame) hitTest(x, y int) (hitRegion, bool) {
	for i := len(f.regions) - 1; i >= 0; i-- {
		if f.regions[i].rect.Contains(x, y) {
			return f.regions[i], true
		}
	}
	return hitRegion{}, false
}

// stack lays blocks out top to bottom from an origin, recording where each
// block lands so clicks can be mapped back to it.
type stack struct {
	x, y    int
	blocks  []string
	regions []hitRegion
}

func newStack(x, y int) *stack {
	return &stack{x: x, y: y}
}

// add appends a block and returns its rectangle.
func (s *stack) add(block string) layers.Rect {
	r := layers.Rect{X: s.x, Y: s.y, W: lipgloss.Width(block), H: lipgloss.Height(block)}
	s.blocks = append(s.blocks, block)
	s.y += r.H
	return r
}

// blank appends an empty line.
func (s *stack) blank() {
	s.add("")
}

// row appends parts side by side, gap cells apart, top aligned, and returns
// one rectangle per part.
func (s *stack) row(gap int, parts ...string) []layers.Rect {
	spacer := strings.Repeat(" ", gap)
	joined := make([]string, 0, len(parts)*2)
	rects := make([]layers.Rect, 0, len(parts))
	x := s.x
	for i, p := range parts {
		if i > 0 {
			joined = append(joined, spacer)
			x += gap
		}
		joined = append(joined, p)
		rects = append(rects, layers.Rect{X: x, Y: s.y, W: lipgloss.Width(p), H: lipgloss.Height(p)})
		x += lipgloss.Width(p)
	}
	s.add(lipgloss.JoinHorizontal(lipgloss.Top, joined...))
	return rects
}

// mark records a clickable region.
func (s *stack) mark(kind hitKind, index int, r layers.Rect) {
	s.regions = append(s.regions, hitRegion{kind: kind, index: index, rect: r})
}

// render joins the blocks, indented to the stack's x origin.
func (s *stack) render() string {
	body := lipgloss.JoinVertical(lipgloss.Left, s.blocks...)
	if s.x == 0 {
		return body
	}
	indent := strings.Repeat(" ", s.x)
	lines := strings.Split(body, "\n")
	for i, l := range lines {
		lines[i] = indent + l
	}
	return strings.Join(lines, "\n")
}

// offset moves every region by dx, dy.
func offsetRegions(regions []hitRegion, dx, dy int) []hitRegion {
	out := make([]hitRegion, len(regions))
	for i, r := range regions {
		r.rect = r.rect.Offset(dx, dy)
		out[i] = r
	}
	return out
}
