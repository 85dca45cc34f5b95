package gesture

// Dispatcher accepts assembled touch events. *EventTarget implements it.
type Dispatcher interface {
	Dispatch(e TouchEvent)
}

// Tracker turns per-finger Down/Move/Up notifications into DOM-style
// TouchEvents. Notifications are buffered until Flush, which emits at most one
// TouchStart, one TouchMove and one TouchEnd, in that order. Batching is what
// lets polled input (one sample per frame) produce a touch-end with two
// changed touches when both fingers lift in the same frame.
//
// A Tracker is not safe for concurrent use.
type Tracker struct {
	out    Dispatcher
	active []Touch

	downs []Touch
	moves []Touch
	ups   []Touch
}

// NewTracker creates a Tracker that flushes into out.
func NewTracker(out Dispatcher) *Tracker {
	return &Tracker{out: out}
}

// Down records a new contact. A Down for an id that is already active is
// treated as a Move.
func (t *Tracker) Down(id int, x, y float64) {
	if t.indexOf(id) >= 0 {
		t.Move(id, x, y)
		return
	}
	touch := Touch{ID: id, X: x, Y: y}
	t.active = append(t.active, touch)
	t.downs = append(t.downs, touch)
}

// Move records a new position for an active contact. Unknown ids are ignored.
func (t *Tracker) Move(id int, x, y float64) {
	i := t.indexOf(id)
	if i < 0 {
		return
	}
	if t.active[i].X == x && t.active[i].Y == y {
		return
	}
	t.active[i].X = x
	t.active[i].Y = y
	t.moves = upsert(t.moves, t.active[i])
}

// Up records the end of a contact at (x, y). Unknown ids are ignored.
func (t *Tracker) Up(id int, x, y float64) {
	i := t.indexOf(id)
	if i < 0 {
		return
	}
	t.ups = append(t.ups, Touch{ID: id, X: x, Y: y})
	copy(t.active[i:], t.active[i+1:])
	t.active = t.active[:len(t.active)-1]
	t.moves = drop(t.moves, id)
}

// Cancel drops every active contact without emitting events.
func (t *Tracker) Cancel() {
	t.active = t.active[:0]
	t.downs = t.downs[:0]
	t.moves = t.moves[:0]
	t.ups = t.ups[:0]
}

// Active returns the number of fingers currently in contact.
func (t *Tracker) Active() int {
	return len(t.active)
}

// Flush emits the buffered notifications.
func (t *Tracker) Flush() {
	if len(t.downs) > 0 {
		t.out.Dispatch(TouchEvent{Type: TouchStart, Touches: t.startTouches(), Changed: cloneTouches(t.downs)})
		t.downs = t.downs[:0]
	}
	if len(t.moves) > 0 {
		t.out.Dispatch(TouchEvent{Type: TouchMove, Touches: cloneTouches(t.active), Changed: cloneTouches(t.moves)})
		t.moves = t.moves[:0]
	}
	if len(t.ups) > 0 {
		t.out.Dispatch(TouchEvent{Type: TouchEnd, Touches: cloneTouches(t.active), Changed: cloneTouches(t.ups)})
		t.ups = t.ups[:0]
	}
}

// startTouches returns the contacts as they stood when the batch's new fingers
// landed. A finger that went down and moved within the batch reports its
// landing point, and one that went down and lifted again still counts.
func (t *Tracker) startTouches() []Touch {
	out := cloneTouches(t.active)
	for _, d := range t.downs {
		if i := t.indexOf(d.ID); i >= 0 {
			out[i] = d
		} else {
			out = append(out, d)
		}
	}
	return out
}

func (t *Tracker) indexOf(id int) int {
	for i := range t.active {
		if t.active[i].ID == id {
			return i
		}
	}
	return -1
}

func upsert(s []Touch, touch Touch) []Touch {
	for i := range s {
		if s[i].ID == touch.ID {
			s[i] = touch
			return s
		}
	}
	return append(s, touch)
}

func drop(s []Touch, id int) []Touch {
	for i := range s {
		if s[i].ID == id {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

func cloneTouches(s []Touch) []Touch {
	if len(s) == 0 {
		return nil
	}
	out := make([]Touch, len(s))
	copy(out, s)
	return out
}
