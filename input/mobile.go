package input

import (
	"golang.org/x/mobile/event/touch"
)

// MobileSource feeds gomobile touch events to a Router. gomobile delivers one
// event per finger change; Handle buffers them and Flush, called once per
// paint, emits the batched touch events.
type MobileSource struct {
	router *Router

	// PixelsPerPt converts device pixels to layout points. Zero means 1.
	PixelsPerPt float32
}

// NewMobileSource creates a source that feeds r.
func NewMobileSource(r *Router) *MobileSource {
	return &MobileSource{router: r}
}

// Handle applies one gomobile touch event.
func (m *MobileSource) Handle(e touch.Event) {
	scale := m.PixelsPerPt
	if scale <= 0 {
		scale = 1
	}
	id := int(e.Sequence)
	x := float64(e.X / scale)
	y := float64(e.Y / scale)

	switch e.Type {
	case touch.TypeBegin:
		m.router.Down(id, x, y)
	case touch.TypeMove:
		m.router.Move(id, x, y)
	case touch.TypeEnd:
		m.router.Up(id, x, y)
	}
}

// Flush emits everything buffered since the previous Flush.
func (m *MobileSource) Flush() {
	m.router.Flush()
}
