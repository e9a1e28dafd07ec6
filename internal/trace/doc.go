// Package trace records structured events for sheetnav commands.
//
// Events are grouped by scope: a whole CLI command, a batch of fragments
// handled by the driver, and a single fragment parse or law check. The level
// picks how deep tracing goes:
//
//   - off: nothing
//   - error: only failures, emitted through Point with ScopeCommand
//   - command: command boundaries
//   - batch: plus batch boundaries
//   - debug: plus every fragment
//
// Tracers travel through context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeBatch, "check", 0)
//	defer span.End("")
//
// Stream output to a file is rotated by lumberjack; the ring tracer keeps the
// most recent events in memory for a dump after a failed run.
package trace
