// Package gesture recognizes multi-touch and device-motion gestures.
//
// A recognizer is attached to a [Region] (anything that delivers touch-start,
// touch-move and touch-end events) together with a [Callbacks] capability set
// and a [Config]. It classifies the event stream into five gestures:
//
//   - swipe, in four directions, by dominant axis
//   - double-tap, two taps inside a time window
//   - two-finger tap, a touch-end that lifts exactly two fingers
//   - pinch, a streaming scale/delta report against the two-finger baseline
//   - shake, a large jump in gravity-inclusive acceleration, rate limited
//
// # Quick start
//
//	region := gesture.NewEventTarget("carousel")
//	cfg := gesture.Config{MinSwipeDistance: 60}
//	h := gesture.Attach(region, gesture.Callbacks{
//		OnSwipeLeft:  carousel.Next,
//		OnSwipeRight: carousel.Prev,
//	}, &cfg)
//	defer h.Detach()
//
// Feed the region with [EventTarget.Dispatch], or through a [Tracker] when
// the platform reports fingers one at a time. The input sub-package routes
// Ebitengine and gomobile touches to regions by hit shape.
//
// # Independence
//
// Every Attach call owns its recognition state. Many attachments can share a
// region or a motion source without seeing each other's touch records, tap
// timestamps or pinch baselines. Callbacks run synchronously inside the
// event listener; there are no timers and no queues.
//
// # Configuration
//
// Attach keeps the *Config pointer and reads it on every event. Raising a
// threshold or setting Disabled takes effect on the next event without
// re-attaching. Shake threshold and cooldown are fixed.
//
// # Forwarding
//
// [Forward] builds a capability set that reports every gesture as an [Event]
// to an [EventSink]. The ecs sub-package publishes those events into a
// Donburi world; the relay package streams them over a websocket.
package gesture
