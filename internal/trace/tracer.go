package trace

// Tracer receives trace events. Implementations are safe for concurrent use.
type Tracer interface {
	// Emit records ev if the tracer's level accepts it.
	Emit(ev *Event)

	// Flush writes buffered events.
	Flush() error

	// Close flushes and releases the output.
	Close() error

	// Level returns the level events are filtered at.
	Level() Level

	// Enabled reports whether events are recorded at all.
	Enabled() bool
}

// Nop drops every event. It is what FromContext returns when no tracer was
// attached.
var Nop Tracer = nopTracer{}

type nopTracer struct{}

func (nopTracer) Emit(*Event)   {}
func (nopTracer) Flush() error  { return nil }
func (nopTracer) Close() error  { return nil }
func (nopTracer) Level() Level  { return LevelOff }
func (nopTracer) Enabled() bool { return false }
