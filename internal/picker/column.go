package picker

import (
	"fmt"
	"iter"
	"log/slog"
	"math"
	"slices"
	"time"
)

// ScrollState is the ephemeral scroll position of one column.
type ScrollState struct {
	Offset   float64
	Dragging bool
}

// Row is one rendered line of a column: either a spacer or an item.
type Row struct {
	Spacer   bool
	Height   float64
	Index    int
	Label    string
	Selected bool
}

// Geometry describes the uniform layout of a column.
type Geometry struct {
	ItemHeight     float64
	ViewportHeight float64
}

// Scroller is the type-independent surface of a column used by hosts that
// route input to day, month and year columns alike.
type Scroller interface {
	Name() string
	Len() int
	Geometry() Geometry
	SpacerHeight() float64
	Offset() float64
	CommittedIndex() int
	NearestIndex(offset float64) int
	OnOffsetChanged(offset float64)
	ScrollBy(delta float64)
	Drag() *DragController
	Render() iter.Seq[Row]
}

// Column is a finite, fixed list of values scrolled vertically, committing
// the value nearest the center once scrolling settles.
type Column[T comparable] struct {
	name      string
	items     []T
	label     func(T) string
	geometry  Geometry
	committed int

	scroll    ScrollState
	drag      *DragController
	debouncer *Debouncer

	onCommit func(T)
	logger   *slog.Logger
}

var _ Scroller = (*Column[int])(nil)

// NewColumn creates a column committed to initial. items is copied and never
// changes afterwards.
func NewColumn[T comparable](name string, items []T, label func(T) string, initial T, geo Geometry, sched Scheduler, debounce time.Duration, logger *slog.Logger) (*Column[T], error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("column %s: %w", name, ErrNoItems)
	}
	if geo.ItemHeight <= 0 || math.IsNaN(geo.ItemHeight) {
		return nil, fmt.Errorf("column %s: %w", name, ErrItemHeight)
	}
	if geo.ViewportHeight < geo.ItemHeight {
		geo.ViewportHeight = geo.ItemHeight
	}
	idx := slices.Index(items, initial)
	if idx < 0 {
		return nil, fmt.Errorf("column %s: %v: %w", name, initial, ErrUnknownItem)
	}
	if label == nil {
		label = func(v T) string { return fmt.Sprint(v) }
	}
	if logger == nil {
		logger = slog.Default()
	}

	c := &Column[T]{
		name:      name,
		items:     slices.Clone(items),
		label:     label,
		geometry:  geo,
		committed: idx,
		logger:    logger,
	}
	c.scroll.Offset = float64(idx) * geo.ItemHeight
	c.drag = newDragController(&c.scroll, c.OnOffsetChanged)
	c.debouncer = NewDebouncer(sched, debounce, c.commitOffset)
	return c, nil
}

func (c *Column[T]) Name() string { return c.name }

func (c *Column[T]) Len() int { return len(c.items) }

func (c *Column[T]) Geometry() Geometry { return c.geometry }

// Items returns a copy of the column's values.
func (c *Column[T]) Items() []T { return slices.Clone(c.items) }

// Committed returns the committed value.
func (c *Column[T]) Committed() T { return c.items[c.committed] }

func (c *Column[T]) CommittedIndex() int { return c.committed }

func (c *Column[T]) Offset() float64 { return c.scroll.Offset }

func (c *Column[T]) Dragging() bool { return c.scroll.Dragging }

func (c *Column[T]) Drag() *DragController { return c.drag }

// SetOnCommit registers fn to be called whenever the committed value changes.
func (c *Column[T]) SetOnCommit(fn func(T)) { c.onCommit = fn }

// IndexOf returns the index of item, or -1.
func (c *Column[T]) IndexOf(item T) int { return slices.Index(c.items, item) }

// SpacerHeight is the padding above the first and below the last item that
// lets both reach the center of the viewport.
func (c *Column[T]) SpacerHeight() float64 {
	return (c.geometry.ViewportHeight - c.geometry.ItemHeight) / 2
}

// Bounds returns the smallest and largest offsets the column accepts.
func (c *Column[T]) Bounds() (lo, hi float64) {
	spacer := c.SpacerHeight()
	return -spacer, float64(len(c.items)-1)*c.geometry.ItemHeight + spacer
}

// NearestIndex maps offset to the index of the item closest to the center,
// always inside [0, Len()-1].
func (c *Column[T]) NearestIndex(offset float64) int {
	if math.IsNaN(offset) {
		return c.committed
	}
	idx := math.Round(offset / c.geometry.ItemHeight)
	return int(max(0, min(idx, float64(len(c.items)-1))))
}

// ScrollTo jumps the offset to item. Unknown items leave the offset alone.
func (c *Column[T]) ScrollTo(item T) bool {
	idx := c.IndexOf(item)
	if idx < 0 {
		c.logger.Warn("scroll target not in column", "column", c.name, "item", fmt.Sprint(item))
		return false
	}
	c.scroll.Offset = float64(idx) * c.geometry.ItemHeight
	return true
}

// OnOffsetChanged handles a native scroll event. The value is committed
// later by the debouncer, never here.
func (c *Column[T]) OnOffsetChanged(offset float64) {
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return
	}
	lo, hi := c.Bounds()
	c.scroll.Offset = max(lo, min(offset, hi))
	c.debouncer.Notify(c.scroll.Offset)
}

// ScrollBy is a relative native scroll, as produced by a mouse wheel.
func (c *Column[T]) ScrollBy(delta float64) {
	c.OnOffsetChanged(c.scroll.Offset + delta)
}

// Select sets the committed value directly, without scrolling.
func (c *Column[T]) Select(item T) bool {
	idx := c.IndexOf(item)
	if idx < 0 {
		return false
	}
	c.committed = idx
	return true
}

// Render yields the leading spacer, one row per item and the trailing
// spacer. Emphasis follows the committed value, not the live offset.
func (c *Column[T]) Render() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		spacer := Row{Spacer: true, Height: c.SpacerHeight(), Index: -1}
		if !yield(spacer) {
			return
		}
		for i, item := range c.items {
			row := Row{
				Height:   c.geometry.ItemHeight,
				Index:    i,
				Label:    c.label(item),
				Selected: i == c.committed,
			}
			if !yield(row) {
				return
			}
		}
		yield(spacer)
	}
}

func (c *Column[T]) commitOffset(offset float64) bool {
	idx := c.NearestIndex(offset)
	if idx == c.committed {
		return false
	}
	c.committed = idx
	c.logger.Debug("column committed", "column", c.name, "value", c.label(c.items[idx]))
	if c.onCommit != nil {
		c.onCommit(c.items[idx])
	}
	return true
}

// mount re-arms the column for a new open.
func (c *Column[T]) mount() {
	c.debouncer.Start()
}

// unmount drops pending commits and drag sessions and parks the offset on
// the committed item.
func (c *Column[T]) unmount() {
	c.debouncer.Stop()
	c.drag.Reset()
	c.scroll.Offset = float64(c.committed) * c.geometry.ItemHeight
}
