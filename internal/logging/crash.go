package logging

import (
	"context"
	"runtime"
	"runtime/debug"
)

// RecoverPanic logs a panic with its stack and the runtime state, then
// panics again. Defer it at the top of main and of long-lived goroutines.
func RecoverPanic(ctx context.Context) {
	r := recover()
	if r == nil {
		return
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	FromContext(ctx).Error().
		Interface("panic", r).
		Str("go_version", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Int("goroutines", runtime.NumGoroutine()).
		Uint64("alloc_kb", mem.Alloc/1024).
		Str("stack", string(debug.Stack())).
		Msg("panic")

	panic(r)
}
