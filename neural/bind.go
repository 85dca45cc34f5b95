package neural

import "github.com/phanxgames/gesture"

// Bind wires the field to a region: pinches zoom it and, when shake is set,
// a shake resets it. The returned function detaches everything.
func (f *Field) Bind(engine *gesture.Engine, region gesture.Region, cfg *gesture.Config, shake bool) (detach func()) {
	begin := region.AddTouchListener(gesture.TouchStart, func(e gesture.TouchEvent) {
		if len(e.Touches) == 2 && cfg.Enabled() {
			f.BeginPinch()
		}
	})
	cb := gesture.Callbacks{
		OnPinch: func(scale, _ float64) { f.Pinch(scale) },
	}
	if shake {
		cb.OnShake = f.Reset
	}
	h := engine.Attach(region, cb, cfg)
	return func() {
		begin.Remove()
		h.Detach()
	}
}
