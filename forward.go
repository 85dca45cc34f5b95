package gesture

// Event is a recognized gesture in flat form, for consumers that prefer a
// stream of values over a set of callbacks (ECS worlds, network relays,
// logs).
type Event struct {
	Kind      Kind
	Region    string
	Direction Direction // valid for KindSwipe
	Scale     float64   // valid for KindPinch
	Delta     float64   // valid for KindPinch
}

// EventSink receives forwarded gestures.
type EventSink interface {
	EmitGesture(e Event)
}

// SinkFunc adapts a function to EventSink.
type SinkFunc func(Event)

// EmitGesture calls f(e).
func (f SinkFunc) EmitGesture(e Event) {
	f(e)
}

// Forward returns a capability set that reports every gesture kind to sink,
// tagged with region. Swipes are reported once, through OnSwipe; the
// direction-specific callbacks are left nil.
func Forward(region string, sink EventSink) Callbacks {
	if sink == nil {
		return Callbacks{}
	}
	return Callbacks{
		OnSwipe: func(d Direction) {
			sink.EmitGesture(Event{Kind: KindSwipe, Region: region, Direction: d})
		},
		OnDoubleTap: func(TouchEvent) {
			sink.EmitGesture(Event{Kind: KindDoubleTap, Region: region})
		},
		OnTwoFingerTap: func(TouchEvent) {
			sink.EmitGesture(Event{Kind: KindTwoFingerTap, Region: region})
		},
		OnPinch: func(scale, delta float64) {
			sink.EmitGesture(Event{Kind: KindPinch, Region: region, Scale: scale, Delta: delta})
		},
		OnShake: func() {
			sink.EmitGesture(Event{Kind: KindShake, Region: region})
		},
	}
}

// Chain combines two capability sets. For every gesture, a's callback runs
// before b's; a gesture with a callback in either set is reported.
func Chain(a, b Callbacks) Callbacks {
	return Callbacks{
		OnSwipe:        chainArg(a.OnSwipe, b.OnSwipe),
		OnSwipeLeft:    chain0(a.OnSwipeLeft, b.OnSwipeLeft),
		OnSwipeRight:   chain0(a.OnSwipeRight, b.OnSwipeRight),
		OnSwipeUp:      chain0(a.OnSwipeUp, b.OnSwipeUp),
		OnSwipeDown:    chain0(a.OnSwipeDown, b.OnSwipeDown),
		OnDoubleTap:    chainArg(a.OnDoubleTap, b.OnDoubleTap),
		OnTwoFingerTap: chainArg(a.OnTwoFingerTap, b.OnTwoFingerTap),
		OnPinch:        chainPinch(a.OnPinch, b.OnPinch),
		OnShake:        chain0(a.OnShake, b.OnShake),
	}
}

func chain0(a, b func()) func() {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func() { a(); b() }
}

func chainArg[T any](a, b func(T)) func(T) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(v T) { a(v); b(v) }
}

func chainPinch(a, b func(float64, float64)) func(float64, float64) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(s, d float64) { a(s, d); b(s, d) }
}
