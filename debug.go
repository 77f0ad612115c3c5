package magnetic

import (
	"io"
	"log"
	"os"
)

// debugLogger receives diagnostics while debug mode is on.
var debugLogger = log.New(os.Stderr, "[magnetic] ", log.Lmicroseconds)

// globalDebug gates all diagnostics. Only one debug setting exists per
// process; hosts with several scenes share it.
var globalDebug bool

// SetDebugMode enables or disables diagnostics: hover edges, loop start and
// cancel, and rejected configs are logged to stderr (or the writer given to
// SetLogOutput).
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// DebugMode reports whether diagnostics are enabled.
func DebugMode() bool {
	return globalDebug
}

// SetLogOutput redirects diagnostics to w.
func SetLogOutput(w io.Writer) {
	debugLogger.SetOutput(w)
}

func debugf(format string, args ...any) {
	if !globalDebug {
		return
	}
	debugLogger.Printf(format, args...)
}

// debugCheckTriggerRadius warns when a controller is built on a zero-width
// root, which makes the trigger radius zero and the button unreachable.
func debugCheckTriggerRadius(e *Element, radius float64) {
	if radius <= 0 {
		debugf("warning: element %q has trigger radius %g (width %g)", e.Name, radius, e.Width)
	}
}
