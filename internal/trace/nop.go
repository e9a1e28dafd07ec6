package trace

import (
	"io"
	"os"
)

type nopTracer struct{}

func (nopTracer) Emit(*Event)   {}
func (nopTracer) Flush() error  { return nil }
func (nopTracer) Close() error  { return nil }
func (nopTracer) Level() Level  { return LevelOff }
func (nopTracer) Enabled() bool { return false }

// Nop discards everything.
var Nop Tracer = nopTracer{}

// accepts: heartbeats and failures pass any enabled level,
// everything else is filtered by scope.
func accepts(level Level, ev *Event) bool {
	if level == LevelOff {
		return false
	}
	if ev.Kind == KindHeartbeat {
		return true
	}
	if ev.Kind == KindPoint && ev.Extra[ExtraError] != "" {
		return true
	}
	return level.ShouldEmit(ev.Scope)
}

func isStdStream(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (f == os.Stdout || f == os.Stderr)
}
