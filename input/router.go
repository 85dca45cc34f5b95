package input

import (
	"slices"

	"github.com/phanxgames/gesture"
)

// route is one registered region.
type route struct {
	name    string
	shape   HitShape
	target  *gesture.EventTarget
	tracker *gesture.Tracker
}

// Router turns raw per-finger input into touch events on named regions.
//
// The first finger of a sequence is hit-tested against every region; each
// region that contains it captures the sequence. Later fingers join the
// captured set regardless of where they land, so a pinch that spills over a
// region's edge keeps reporting. Capture ends when the last finger lifts.
//
// Downs, moves and ups are buffered per region and emitted by Flush, which
// hosts call once per frame. A Router is not safe for concurrent use.
type Router struct {
	routes   []*route
	captured []*route
	fingers  map[int]struct{}
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{fingers: make(map[int]struct{})}
}

// Add registers a region and returns its event target. Attach gesture
// recognizers to the returned target. A nil shape matches the whole screen.
// Adding a name that already exists replaces its shape and keeps the target.
func (r *Router) Add(name string, shape HitShape) *gesture.EventTarget {
	if shape == nil {
		shape = Everywhere{}
	}
	if rt := r.find(name); rt != nil {
		rt.shape = shape
		return rt.target
	}
	target := gesture.NewEventTarget(name)
	r.routes = append(r.routes, &route{
		name:    name,
		shape:   shape,
		target:  target,
		tracker: gesture.NewTracker(target),
	})
	return target
}

// Region returns the target registered under name, or nil.
func (r *Router) Region(name string) *gesture.EventTarget {
	if rt := r.find(name); rt != nil {
		return rt.target
	}
	return nil
}

// SetShape moves or resizes a region. It reports false for unknown names.
func (r *Router) SetShape(name string, shape HitShape) bool {
	rt := r.find(name)
	if rt == nil {
		return false
	}
	if shape == nil {
		shape = Everywhere{}
	}
	rt.shape = shape
	return true
}

// Remove unregisters a region. Fingers it had captured are dropped silently.
func (r *Router) Remove(name string) {
	i := slices.IndexFunc(r.routes, func(rt *route) bool { return rt.name == name })
	if i < 0 {
		return
	}
	rt := r.routes[i]
	rt.tracker.Cancel()
	r.routes = slices.Delete(r.routes, i, i+1)
	r.captured = slices.DeleteFunc(r.captured, func(c *route) bool { return c == rt })
}

// Names returns the registered region names in registration order.
func (r *Router) Names() []string {
	out := make([]string, len(r.routes))
	for i, rt := range r.routes {
		out[i] = rt.name
	}
	return out
}

func (r *Router) find(name string) *route {
	for _, rt := range r.routes {
		if rt.name == name {
			return rt
		}
	}
	return nil
}

// Down reports a new finger at (x, y).
func (r *Router) Down(id int, x, y float64) {
	if _, ok := r.fingers[id]; ok {
		r.Move(id, x, y)
		return
	}
	if len(r.fingers) == 0 {
		r.captured = r.captured[:0]
		for _, rt := range r.routes {
			if rt.shape.Contains(x, y) {
				r.captured = append(r.captured, rt)
			}
		}
	}
	r.fingers[id] = struct{}{}
	for _, rt := range r.captured {
		rt.tracker.Down(id, x, y)
	}
}

// Move reports a new position for an active finger.
func (r *Router) Move(id int, x, y float64) {
	if _, ok := r.fingers[id]; !ok {
		return
	}
	for _, rt := range r.captured {
		rt.tracker.Move(id, x, y)
	}
}

// Up reports that a finger lifted at (x, y).
func (r *Router) Up(id int, x, y float64) {
	if _, ok := r.fingers[id]; !ok {
		return
	}
	delete(r.fingers, id)
	for _, rt := range r.captured {
		rt.tracker.Up(id, x, y)
	}
}

// Active reports whether a finger with the given id is down.
func (r *Router) Active(id int) bool {
	_, ok := r.fingers[id]
	return ok
}

// Fingers returns the number of fingers currently down.
func (r *Router) Fingers() int {
	return len(r.fingers)
}

// Cancel drops every finger without emitting events, e.g. when the window
// loses focus.
func (r *Router) Cancel() {
	clear(r.fingers)
	for _, rt := range r.routes {
		rt.tracker.Cancel()
	}
	r.captured = r.captured[:0]
}

// Flush emits the touch events buffered since the previous Flush. Regions
// flush in registration order.
func (r *Router) Flush() {
	for _, rt := range r.routes {
		rt.tracker.Flush()
	}
}
