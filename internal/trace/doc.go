// Package trace provides structured tracing for convsys.
//
// Tracing records what the tool did internally (commands, output directory
// probes, axis swaps, every diagnostic message) independently of the
// user-facing diagnostic log.
//
// # Usage
//
//	convsys outdir build/ --trace=- --trace-level=component
//
// # Implementations
//
//   - Nop: zero-overhead tracer when disabled
//   - StreamTracer: immediate write to a file or stderr (text or NDJSON)
//   - RingTracer: circular buffer of the latest events
//   - Session: one command run; streams, keeps a ring, or both, and writes
//     the ring at exit (ring mode) or when the command failed (both)
//
// # Messages
//
// Every message passing the diagnostic log becomes a ScopeMessage point
// carrying its Severity, its occurrence Count and whether the repeat
// threshold let it through (Shown).
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: only failure events (error messages, failed probes)
//   - LevelProcess: command boundaries
//   - LevelComponent: single component operations
//   - LevelDebug: everything, including every recorded message
//
// Tracers travel through context:
//
//	ctx = trace.WithTracer(ctx, session)
//	ctx = trace.WithSpan(ctx, commandSpan)
//	span := trace.Start(ctx, trace.ScopeComponent, "outdir.set") // nested under commandSpan
//	defer span.End("")
package trace
