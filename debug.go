package gesture

import (
	"fmt"
	"os"
	"sync/atomic"
)

// debugEnabled gates diagnostic output. Read on every event, so it is atomic.
var debugEnabled atomic.Bool

// SetDebug enables or disables diagnostic output. When enabled, attachments,
// detachments, recognized gestures and discarded sequences are logged to
// stderr.
func SetDebug(enabled bool) {
	debugEnabled.Store(enabled)
}

// debugf writes one diagnostic line to stderr when debug output is enabled.
func debugf(format string, args ...any) {
	if !debugEnabled.Load() {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[gesture] "+format+"\n", args...)
}
