package gesture

import "sync"

// Remover unregisters a previously added listener. Remove is idempotent.
type Remover interface {
	Remove()
}

// Region is anything that can deliver touch events to listeners: a screen
// area, a UI widget, a network session.
type Region interface {
	AddTouchListener(t TouchType, fn func(TouchEvent)) Remover
}

// MotionSource delivers device-motion samples. Motion is not tied to a screen
// position, so one source is normally shared by every attachment.
type MotionSource interface {
	AddMotionListener(fn func(MotionEvent)) Remover
}

// --- Handler registry ---

type handler[E any] struct {
	id uint32
	fn func(E)
}

// registry is an id-keyed listener list. Dispatch iterates over a snapshot so
// listeners may add or remove listeners (including themselves) while running.
type registry[E any] struct {
	mu       sync.Mutex
	handlers []handler[E]
	nextID   uint32
}

func (r *registry[E]) add(fn func(E)) uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	r.handlers = append(r.handlers, handler[E]{id: r.nextID, fn: fn})
	return r.nextID
}

// remove deletes the entry with the given id, compacting the slice.
func (r *registry[E]) remove(id uint32) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.handlers {
		if r.handlers[i].id == id {
			copy(r.handlers[i:], r.handlers[i+1:])
			r.handlers[len(r.handlers)-1] = handler[E]{}
			r.handlers = r.handlers[:len(r.handlers)-1]
			return true
		}
	}
	return false
}

func (r *registry[E]) dispatch(e E) {
	r.mu.Lock()
	if len(r.handlers) == 0 {
		r.mu.Unlock()
		return
	}
	hs := make([]handler[E], len(r.handlers))
	copy(hs, r.handlers)
	r.mu.Unlock()

	for _, h := range hs {
		h.fn(e)
	}
}

func (r *registry[E]) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.handlers)
}

// CallbackHandle removes one listener from an EventTarget or MotionBus.
type CallbackHandle struct {
	once   sync.Once
	remove func()
}

// Remove unregisters the listener. Calling it again is a no-op.
func (h *CallbackHandle) Remove() {
	if h == nil || h.remove == nil {
		return
	}
	h.once.Do(h.remove)
}

// --- EventTarget ---

// EventTarget is an in-memory Region. Hosts feed it touch events with
// Dispatch (directly, through a Tracker, or through an input adapter) and
// engines subscribe to it with Attach. It is safe for concurrent use.
type EventTarget struct {
	name  string
	start registry[TouchEvent]
	move  registry[TouchEvent]
	end   registry[TouchEvent]
}

// NewEventTarget creates an empty target. The name only appears in debug
// output.
func NewEventTarget(name string) *EventTarget {
	return &EventTarget{name: name}
}

// Name returns the name given to NewEventTarget.
func (t *EventTarget) Name() string {
	return t.name
}

func (t *EventTarget) registryFor(typ TouchType) *registry[TouchEvent] {
	switch typ {
	case TouchStart:
		return &t.start
	case TouchMove:
		return &t.move
	case TouchEnd:
		return &t.end
	}
	return nil
}

// AddTouchListener registers fn for events of the given type.
func (t *EventTarget) AddTouchListener(typ TouchType, fn func(TouchEvent)) Remover {
	reg := t.registryFor(typ)
	if reg == nil || fn == nil {
		return &CallbackHandle{}
	}
	id := reg.add(fn)
	return &CallbackHandle{remove: func() { reg.remove(id) }}
}

// Dispatch delivers e to every listener registered for e.Type, in
// registration order.
func (t *EventTarget) Dispatch(e TouchEvent) {
	if reg := t.registryFor(e.Type); reg != nil {
		reg.dispatch(e)
	}
}

// ListenerCount returns the number of registered touch listeners across all
// event types.
func (t *EventTarget) ListenerCount() int {
	return t.start.len() + t.move.len() + t.end.len()
}

// --- MotionBus ---

// MotionBus is an in-memory MotionSource. It is safe for concurrent use.
type MotionBus struct {
	listeners registry[MotionEvent]
}

// DefaultMotion is the process-wide motion source used by the package-level
// Attach. Platform glue pushes accelerometer samples into it.
var DefaultMotion = NewMotionBus()

// NewMotionBus creates an empty motion source.
func NewMotionBus() *MotionBus {
	return &MotionBus{}
}

// AddMotionListener registers fn for every subsequent sample.
func (b *MotionBus) AddMotionListener(fn func(MotionEvent)) Remover {
	if fn == nil {
		return &CallbackHandle{}
	}
	id := b.listeners.add(fn)
	return &CallbackHandle{remove: func() { b.listeners.remove(id) }}
}

// Dispatch delivers a sample to every listener.
func (b *MotionBus) Dispatch(e MotionEvent) {
	b.listeners.dispatch(e)
}

// ListenerCount returns the number of registered motion listeners.
func (b *MotionBus) ListenerCount() int {
	return b.listeners.len()
}
