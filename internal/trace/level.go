package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff       Level = iota // no tracing
	LevelError                  // only error messages
	LevelProcess                // command boundaries
	LevelComponent              // component operations
	LevelDebug                  // everything including every message
)

// String returns the string representation of Level.
func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelError:
		return "error"
	case LevelProcess:
		return "process"
	case LevelComponent:
		return "component"
	case LevelDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// ParseLevel converts a string to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "":
		return LevelOff, nil
	case "error":
		return LevelError, nil
	case "process":
		return LevelProcess, nil
	case "component":
		return LevelComponent, nil
	case "debug":
		return LevelDebug, nil
	default:
		return LevelOff, fmt.Errorf("invalid trace level: %q (expected: off|error|process|component|debug)", s)
	}
}

// ShouldEmit returns true if an event of the given scope passes this level.
func (l Level) ShouldEmit(scope Scope) bool {
	switch l {
	case LevelProcess:
		return scope <= ScopeProcess
	case LevelComponent:
		return scope <= ScopeComponent
	case LevelDebug:
		return true
	}
	return false
}

// Accepts reports whether ev passes this level. Failure events pass every
// level except LevelOff.
func (l Level) Accepts(ev *Event) bool {
	if ev == nil || l == LevelOff {
		return false
	}
	return ev.Failure || l.ShouldEmit(ev.Scope)
}
