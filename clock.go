package gesture

import (
	"sync/atomic"
	"time"
)

// Clock supplies monotonic millisecond readings to the engine. Only
// differences between readings are meaningful.
type Clock interface {
	NowMs() int64
}

// monotonicClock reads the process monotonic clock relative to its creation.
type monotonicClock struct {
	start time.Time
}

// NewMonotonicClock returns a Clock backed by time.Since, which uses the
// monotonic clock reading and is unaffected by wall-clock changes.
func NewMonotonicClock() Clock {
	return monotonicClock{start: time.Now()}
}

func (c monotonicClock) NowMs() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock is a Clock whose reading only changes when told to. Tests use it
// to script timing; network relays use it to follow client timestamps.
type ManualClock struct {
	ms atomic.Int64
}

// NowMs returns the current reading.
func (c *ManualClock) NowMs() int64 {
	return c.ms.Load()
}

// Set moves the clock to ms.
func (c *ManualClock) Set(ms int64) {
	c.ms.Store(ms)
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.ms.Add(d.Milliseconds())
}
