package picker

// DragState is the state of a column's DragController.
type DragState int

const (
	DragIdle DragState = iota
	DragDragging
)

func (s DragState) String() string {
	switch s {
	case DragDragging:
		return "dragging"
	default:
		return "idle"
	}
}

// DragSession is the anchor of one drag gesture.
type DragSession struct {
	StartPointerY float64
	StartOffset   float64
}

// DragController turns pointer and touch sequences into direct offset writes
// on a single column. Only one session is active at a time; the first
// pointer wins.
type DragController struct {
	state   DragState
	session *DragSession
	scroll  *ScrollState

	// apply writes a new offset through the column, which also feeds the
	// debouncer the same way a native scroll event does.
	apply func(offset float64)
}

func newDragController(scroll *ScrollState, apply func(offset float64)) *DragController {
	return &DragController{
		state:  DragIdle,
		scroll: scroll,
		apply:  apply,
	}
}

// State returns the current state.
func (d *DragController) State() DragState {
	return d.state
}

// Session returns the active session, if any.
func (d *DragController) Session() (DragSession, bool) {
	if d.session == nil {
		return DragSession{}, false
	}
	return *d.session, true
}

// PointerDown starts a session at pointer position y. It returns false when a
// session is already active.
func (d *DragController) PointerDown(y float64) bool {
	if d.state == DragDragging {
		return false
	}
	d.state = DragDragging
	d.session = &DragSession{StartPointerY: y, StartOffset: d.scroll.Offset}
	d.scroll.Dragging = true
	return true
}

// PointerMove moves the column so that the content follows the pointer.
// Moving up advances the list.
func (d *DragController) PointerMove(y float64) bool {
	if d.state != DragDragging || d.session == nil {
		return false
	}
	d.apply(d.session.StartOffset + (d.session.StartPointerY - y))
	return true
}

// PointerUp ends the session. The offset is left where it is; snapping is the
// debouncer's job.
func (d *DragController) PointerUp() bool {
	if d.state != DragDragging {
		return false
	}
	d.Reset()
	return true
}

// PointerLeave ends the session like PointerUp.
func (d *DragController) PointerLeave() bool {
	return d.PointerUp()
}

func (d *DragController) TouchStart(y float64) bool { return d.PointerDown(y) }
func (d *DragController) TouchMove(y float64) bool  { return d.PointerMove(y) }
func (d *DragController) TouchEnd() bool            { return d.PointerUp() }

// Reset drops the session without touching the offset.
func (d *DragController) Reset() {
	d.state = DragIdle
	d.session = nil
	d.scroll.Dragging = false
}
