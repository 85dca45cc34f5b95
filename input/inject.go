package input

// injectedTouch is one synthetic finger change inside a frame.
type injectedTouch struct {
	id   int
	x, y float64
	down bool
}

// injectBase keeps synthetic finger ids clear of hardware slots.
const injectBase = 1000

// Injector queues synthetic touch frames. The owning EbitenSource consumes one
// frame per Update and skips hardware input for that frame, so injected
// gestures replay deterministically at the frame rate.
type Injector struct {
	frames [][]injectedTouch
}

// Pending returns the number of queued frames.
func (in *Injector) Pending() int {
	return len(in.frames)
}

// Clear drops every queued frame.
func (in *Injector) Clear() {
	in.frames = in.frames[:0]
}

func (in *Injector) push(frame ...injectedTouch) {
	in.frames = append(in.frames, frame)
}

// Tap queues a single-finger press and release at (x, y). Consumes two
// frames.
func (in *Injector) Tap(x, y float64) {
	in.push(injectedTouch{id: injectBase, x: x, y: y, down: true})
	in.push(injectedTouch{id: injectBase, x: x, y: y})
}

// DoubleTap queues two taps back to back. Consumes four frames.
func (in *Injector) DoubleTap(x, y float64) {
	in.Tap(x, y)
	in.Tap(x, y)
}

// Swipe queues a single-finger drag from (fromX, fromY) to (toX, toY) over
// frames frames, with linearly interpolated moves in between. Minimum frames
// is 2 (press + release).
func (in *Injector) Swipe(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.push(injectedTouch{id: injectBase, x: fromX, y: fromY, down: true})
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		in.push(injectedTouch{
			id:   injectBase,
			x:    fromX + (toX-fromX)*t,
			y:    fromY + (toY-fromY)*t,
			down: true,
		})
	}
	in.push(injectedTouch{id: injectBase, x: toX, y: toY})
}

// TwoFingerTap queues two fingers pressing together and lifting together.
// Consumes two frames.
func (in *Injector) TwoFingerTap(x1, y1, x2, y2 float64) {
	in.push(
		injectedTouch{id: injectBase, x: x1, y: y1, down: true},
		injectedTouch{id: injectBase + 1, x: x2, y: y2, down: true},
	)
	in.push(
		injectedTouch{id: injectBase, x: x1, y: y1},
		injectedTouch{id: injectBase + 1, x: x2, y: y2},
	)
}

// Pinch queues a horizontal two-finger pinch centred on (cx, cy). The finger
// spacing goes from fromDist to toDist over frames frames. Minimum frames
// is 3 (press, one move, release).
func (in *Injector) Pinch(cx, cy, fromDist, toDist float64, frames int) {
	if frames < 3 {
		frames = 3
	}
	pair := func(dist float64, down bool) []injectedTouch {
		return []injectedTouch{
			{id: injectBase, x: cx - dist/2, y: cy, down: down},
			{id: injectBase + 1, x: cx + dist/2, y: cy, down: down},
		}
	}
	in.push(pair(fromDist, true)...)
	steps := frames - 2
	var last float64
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		last = fromDist + (toDist-fromDist)*t
		in.push(pair(last, true)...)
	}
	in.push(pair(last, false)...)
}

// step feeds one queued frame into r. It returns false when the queue is
// empty, in which case the caller reads hardware input instead.
func (in *Injector) step(r *Router) bool {
	if len(in.frames) == 0 {
		return false
	}
	frame := in.frames[0]
	copy(in.frames, in.frames[1:])
	in.frames = in.frames[:len(in.frames)-1]

	for _, t := range frame {
		switch {
		case !t.down:
			r.Up(t.id, t.x, t.y)
		case r.Active(t.id):
			r.Move(t.id, t.x, t.y)
		default:
			r.Down(t.id, t.x, t.y)
		}
	}
	return true
}
