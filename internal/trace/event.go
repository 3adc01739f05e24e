package trace

import (
	"time"

	"convsys/internal/diag"
)

// Kind represents the type of trace event.
type Kind uint8

const (
	// KindSpanBegin marks the start of an operation.
	KindSpanBegin Kind = iota + 1
	// KindSpanEnd marks the end of an operation.
	KindSpanEnd
	// KindPoint represents an instant event such as a logged message.
	KindPoint
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindSpanBegin:
		return "begin"
	case KindSpanEnd:
		return "end"
	case KindPoint:
		return "point"
	default:
		return "unknown"
	}
}

// Scope indicates the granularity of the event.
// Lower numeric values represent coarser events.
type Scope uint8

const (
	// ScopeProcess covers command execution and startup.
	ScopeProcess Scope = iota + 1
	// ScopeComponent covers single operations: output directory probes,
	// axis swaps, config loading.
	ScopeComponent
	// ScopeMessage covers every diagnostic message passing the log.
	ScopeMessage
)

// String returns the string representation of Scope.
func (s Scope) String() string {
	switch s {
	case ScopeProcess:
		return "process"
	case ScopeComponent:
		return "component"
	case ScopeMessage:
		return "message"
	default:
		return "unknown"
	}
}

// Event represents a single trace event.
type Event struct {
	Time     time.Time         // wall-clock timestamp
	Seq      uint64            // global sequence number (monotonic)
	Kind     Kind              // event kind
	Scope    Scope             // granularity level
	SpanID   uint64            // unique span identifier, 0 for points
	ParentID uint64            // enclosing span (0 if root)
	Name     string            // e.g. "outdir.set", "diag.warning"
	Detail   string            // optional detail message
	Failure  bool              // error message or failed operation
	Extra    map[string]string // extensible key-value pairs

	// Set on ScopeMessage events only.
	Severity diag.Severity // class the message was recorded under
	Count    uint64        // occurrences of the text so far, this one included
	Shown    bool          // false when the repeat threshold hid the message
}

// IsMessage reports whether ev describes a diagnostic message.
func (ev *Event) IsMessage() bool { return ev.Scope == ScopeMessage && ev.Count > 0 }
