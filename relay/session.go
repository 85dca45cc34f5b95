package relay

import (
	"fmt"
	"time"

	"github.com/phanxgames/gesture"
)

// Session is the recognizer state behind one connection: a private region,
// motion source and clock, and one engine attachment that forwards every
// gesture into a pending list. Apply is not safe for concurrent use; the
// connection's read loop owns the session.
type Session struct {
	ID string

	region  string
	target  *gesture.EventTarget
	motion  *gesture.MotionBus
	clock   *gesture.ManualClock
	cfg     gesture.Config
	handle  *gesture.Handle
	pending []gesture.Event
}

// NewSession creates a session whose gestures are tagged with region.
func NewSession(id, region string, cfg gesture.Config) *Session {
	s := &Session{
		ID:     id,
		region: region,
		target: gesture.NewEventTarget(region + "/" + id),
		motion: gesture.NewMotionBus(),
		clock:  &gesture.ManualClock{},
		cfg:    cfg,
	}
	engine := &gesture.Engine{Motion: s.motion, Clock: s.clock}
	s.handle = engine.Attach(s.target, gesture.Forward(region, gesture.SinkFunc(func(e gesture.Event) {
		s.pending = append(s.pending, e)
	})), &s.cfg)
	return s
}

// Config returns the session's current settings.
func (s *Session) Config() gesture.Config {
	return s.cfg
}

// Apply feeds one client frame through the recognizer and returns the server
// frames it produced, in order. Unknown frame types are an error.
func (s *Session) Apply(f ClientFrame) ([]ServerFrame, error) {
	// Client clocks only move forward; late or missing timestamps reuse the
	// last one.
	if f.T > s.clock.NowMs() {
		s.clock.Set(f.T)
	}

	if typ, ok := touchType(f.Type); ok {
		s.target.Dispatch(gesture.TouchEvent{
			Type:    typ,
			Touches: toTouches(f.Touches),
			Changed: toTouches(f.Changed),
		})
		return s.drain(), nil
	}

	switch f.Type {
	case FrameMotion:
		var ev gesture.MotionEvent
		if f.Accel != nil {
			ev.AccelerationIncludingGravity = &gesture.Vec3{X: f.Accel.X, Y: f.Accel.Y, Z: f.Accel.Z}
		}
		s.motion.Dispatch(ev)
		return s.drain(), nil
	case FrameConfig:
		if f.Config == nil {
			return nil, fmt.Errorf("config frame without config")
		}
		s.applyConfig(*f.Config)
		return nil, nil
	case FramePing:
		return []ServerFrame{{Type: FramePong, T: f.T}}, nil
	}
	return nil, fmt.Errorf("unknown frame type %q", f.Type)
}

func (s *Session) applyConfig(u ConfigUpdate) {
	if u.MinSwipeDistance != nil {
		s.cfg.MinSwipeDistance = *u.MinSwipeDistance
	}
	if u.DoubleTapWindowMs != nil {
		s.cfg.DoubleTapWindow = time.Duration(*u.DoubleTapWindowMs) * time.Millisecond
	}
	if u.Enabled != nil {
		s.cfg.SetEnabled(*u.Enabled)
	}
}

func (s *Session) drain() []ServerFrame {
	if len(s.pending) == 0 {
		return nil
	}
	out := make([]ServerFrame, len(s.pending))
	for i, e := range s.pending {
		out[i] = ServerFrame{Type: FrameGesture, Session: s.ID, T: s.clock.NowMs(), Gesture: gestureFrame(e)}
	}
	s.pending = s.pending[:0]
	return out
}

// Close detaches the recognizer.
func (s *Session) Close() {
	s.handle.Detach()
}
