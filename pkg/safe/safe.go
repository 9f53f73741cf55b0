package safe

import (
	"log/slog"
	"runtime/debug"
)

// Run spawns fn on its own goroutine and recovers any panic into a log line.
func Run(fn func()) {
	go func() {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("panic recovered", slog.Any("error", err), slog.String("stack", string(debug.Stack())))
			}
		}()
		fn()
	}()
}
