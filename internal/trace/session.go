package trace

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// StorageMode selects where a Session keeps events.
type StorageMode uint8

const (
	ModeStream StorageMode = iota + 1 // write events as they happen
	ModeRing                          // keep the latest events, write them at exit
	ModeBoth                          // stream at the level, keep a debug ring for failures
)

func (m StorageMode) String() string {
	switch m {
	case ModeStream:
		return "stream"
	case ModeRing:
		return "ring"
	case ModeBoth:
		return "both"
	}
	return "unknown"
}

// ParseMode reads a --trace-mode value.
func ParseMode(s string) (StorageMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "stream":
		return ModeStream, nil
	case "ring":
		return ModeRing, nil
	case "both":
		return ModeBoth, nil
	}
	return ModeStream, fmt.Errorf("invalid trace mode: %q (expected: stream|ring|both)", s)
}

const defaultRingSize = 1024

// Options configures Open.
type Options struct {
	Level    Level
	Mode     StorageMode
	Format   Format    // FormatAuto picks NDJSON for .ndjson and .jsonl paths
	Path     string    // "" or "-" selects Stderr
	Stderr   io.Writer // nil means os.Stderr; never closed
	RingSize int       // 0 means 1024
}

// Session is the tracer of one command run.
//
// ModeStream writes accepted events immediately. ModeRing keeps the latest
// accepted events and writes them when the run finishes. ModeBoth streams at
// the configured level while the ring records every event at LevelDebug; the
// ring is written only when the run failed, so a failing command leaves the
// full message history behind it.
type Session struct {
	level Level
	mode  StorageMode
	out   *StreamTracer
	ring  *RingTracer
}

// Open creates the output and the sinks the mode needs. LevelOff yields a
// session that records nothing.
func Open(opts Options) (*Session, error) {
	s := &Session{level: opts.Level, mode: opts.Mode}
	if opts.Level == LevelOff {
		return s, nil
	}
	if opts.Mode < ModeStream || opts.Mode > ModeBoth {
		return nil, fmt.Errorf("unknown trace mode: %v", opts.Mode)
	}

	format := opts.Format
	if format == FormatAuto {
		format = FormatText
		if strings.HasSuffix(opts.Path, ".ndjson") || strings.HasSuffix(opts.Path, ".jsonl") {
			format = FormatNDJSON
		}
	}

	if opts.Path == "" || opts.Path == "-" {
		w := opts.Stderr
		if w == nil {
			w = os.Stderr
		}
		s.out = NewStreamTracer(w, opts.Level, format)
	} else {
		out, err := createStreamTracer(opts.Path, opts.Level, format)
		if err != nil {
			return nil, err
		}
		s.out = out
	}

	switch opts.Mode {
	case ModeRing:
		s.ring = NewRingTracer(opts.RingSize, opts.Level)
	case ModeBoth:
		s.ring = NewRingTracer(opts.RingSize, LevelDebug)
	}
	return s, nil
}

// Emit numbers ev once and hands it to the live stream and the ring.
func (s *Session) Emit(ev *Event) {
	if !s.Enabled() {
		return
	}
	if ev.Seq == 0 {
		ev.Seq = NextSeq()
	}
	if s.mode != ModeRing {
		s.out.Emit(ev)
	}
	if s.ring != nil {
		s.ring.Emit(ev)
	}
}

// Ring returns the in-memory ring, or nil in ModeStream.
func (s *Session) Ring() *RingTracer { return s.ring }

// Finish writes the ring when the mode asks for it, then closes the output.
func (s *Session) Finish(failed bool) error {
	if !s.Enabled() {
		return nil
	}
	if s.ring != nil && (s.mode == ModeRing || failed) {
		s.dumpRing(failed)
	}
	return s.Close()
}

func (s *Session) dumpRing(failed bool) {
	events := s.ring.Snapshot()
	reason := "end of run"
	if failed {
		reason = "command failed"
	}
	s.out.write(&Event{
		Time:    time.Now(),
		Seq:     NextSeq(),
		Kind:    KindPoint,
		Scope:   ScopeProcess,
		Name:    "trace.ring",
		Detail:  fmt.Sprintf("%s: %d events kept, %d dropped", reason, len(events), s.ring.Dropped()),
		Failure: failed,
	})
	for i := range events {
		s.out.write(&events[i])
	}
}

// Flush drains the output.
func (s *Session) Flush() error {
	if s.out == nil {
		return nil
	}
	return s.out.Flush()
}

// Close flushes and closes the output if the session opened it.
func (s *Session) Close() error {
	if s.out == nil {
		return nil
	}
	return s.out.Close()
}

// Level returns the configured level.
func (s *Session) Level() Level { return s.level }

// Enabled reports whether the session records anything.
func (s *Session) Enabled() bool { return s != nil && s.level > LevelOff }
