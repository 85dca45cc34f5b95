package input

import (
	"encoding/json"
	"fmt"
)

// Script step actions.
const (
	ActionTap          = "tap"
	ActionDoubleTap    = "doubletap"
	ActionSwipe        = "swipe"
	ActionTwoFingerTap = "twofingertap"
	ActionPinch        = "pinch"
	ActionShake        = "shake"
	ActionScreenshot   = "screenshot"
	ActionWait         = "wait"
)

// scriptStep is a single action in a gesture script.
type scriptStep struct {
	Action   string  `json:"action"`
	Label    string  `json:"label,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	X2       float64 `json:"x2,omitempty"`
	Y2       float64 `json:"y2,omitempty"`
	FromX    float64 `json:"fromX,omitempty"`
	FromY    float64 `json:"fromY,omitempty"`
	ToX      float64 `json:"toX,omitempty"`
	ToY      float64 `json:"toY,omitempty"`
	FromDist float64 `json:"fromDist,omitempty"`
	ToDist   float64 `json:"toDist,omitempty"`
	Frames   int     `json:"frames,omitempty"`
}

type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script plays a JSON list of gestures through an Injector, one step at a
// time, waiting for each step's frames to drain before starting the next.
// Assign it to EbitenSource.Script, or call Step from your own loop.
//
//	{"steps": [
//		{"action": "swipe", "fromX": 600, "fromY": 400, "toX": 200, "toY": 400, "frames": 6},
//		{"action": "wait", "frames": 30},
//		{"action": "pinch", "x": 400, "y": 150, "fromDist": 80, "toDist": 200},
//		{"action": "screenshot", "label": "zoomed"}
//	]}
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool

	// OnShake runs for shake steps. Touch sources have no motion sensor, so
	// the host decides where the shake goes.
	OnShake func()
	// OnScreenshot runs for screenshot steps with the step label.
	OnScreenshot func(label string)
}

// LoadScript parses a gesture script. Unknown actions are rejected.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case ActionTap, ActionDoubleTap, ActionSwipe, ActionTwoFingerTap,
			ActionPinch, ActionShake, ActionScreenshot, ActionWait:
		default:
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// Done reports whether every step has run and its frames have drained.
func (sc *Script) Done() bool {
	return sc.done
}

// Step advances the script by one frame, queueing frames on in.
func (sc *Script) Step(in *Injector) {
	if sc.done {
		return
	}
	if in.Pending() > 0 {
		return
	}
	if sc.waitCount > 0 {
		sc.waitCount--
		return
	}
	if sc.cursor >= len(sc.steps) {
		sc.done = true
		return
	}

	st := sc.steps[sc.cursor]
	sc.cursor++

	switch st.Action {
	case ActionTap:
		in.Tap(st.X, st.Y)
	case ActionDoubleTap:
		in.DoubleTap(st.X, st.Y)
	case ActionSwipe:
		in.Swipe(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case ActionTwoFingerTap:
		in.TwoFingerTap(st.X, st.Y, st.X2, st.Y2)
	case ActionPinch:
		in.Pinch(st.X, st.Y, st.FromDist, st.ToDist, st.Frames)
	case ActionShake:
		if sc.OnShake != nil {
			sc.OnShake()
		}
	case ActionScreenshot:
		if sc.OnScreenshot != nil {
			sc.OnScreenshot(st.Label)
		}
	case ActionWait:
		if st.Frames > 0 {
			sc.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if sc.cursor >= len(sc.steps) && sc.waitCount == 0 && in.Pending() == 0 {
		sc.done = true
	}
}
