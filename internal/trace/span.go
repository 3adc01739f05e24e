package trace

import (
	"strings"
	"sync/atomic"
	"time"

	"convsys/internal/diag"
)

var (
	globalSeq   uint64
	globalSpans uint64
)

// NextSeq returns a monotonically increasing sequence number.
func NextSeq() uint64 {
	return atomic.AddUint64(&globalSeq, 1)
}

// NextSpanID returns a unique span ID.
func NextSpanID() uint64 {
	return atomic.AddUint64(&globalSpans, 1)
}

// Span tracks one traced operation between Begin and End.
type Span struct {
	tracer   Tracer
	id       uint64
	parentID uint64
	scope    Scope
	name     string
	started  time.Time
	failed   bool
	extra    map[string]string
}

func (s *Span) live() bool {
	return s != nil && s.tracer != nil && s.tracer.Enabled()
}

// Begin emits the begin event of a span nested under parent (0 for a root
// span). With a disabled tracer it returns an inert span.
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	if t == nil || !t.Enabled() {
		return &Span{tracer: Nop}
	}
	s := &Span{
		tracer:   t,
		id:       NextSpanID(),
		parentID: parent,
		scope:    scope,
		name:     name,
		started:  time.Now(),
	}
	t.Emit(&Event{
		Time:     s.started,
		Seq:      NextSeq(),
		Kind:     KindSpanBegin,
		Scope:    scope,
		SpanID:   s.id,
		ParentID: parent,
		Name:     name,
	})
	return s
}

// End emits the end event with detail and the elapsed time in Extra.
func (s *Span) End(detail string) time.Duration {
	if !s.live() {
		return 0
	}
	dur := time.Since(s.started)
	s.WithExtra("took", dur.Round(time.Microsecond).String())
	s.tracer.Emit(&Event{
		Time:     time.Now(),
		Seq:      NextSeq(),
		Kind:     KindSpanEnd,
		Scope:    s.scope,
		SpanID:   s.id,
		ParentID: s.parentID,
		Name:     s.name,
		Detail:   detail,
		Failure:  s.failed,
		Extra:    s.extra,
	})
	return dur
}

// Fail marks the span as failed; its end event passes LevelError.
func (s *Span) Fail() *Span {
	if s.live() {
		s.failed = true
	}
	return s
}

// WithExtra adds a key-value pair to the end event.
func (s *Span) WithExtra(key, value string) *Span {
	if !s.live() {
		return s
	}
	if s.extra == nil {
		s.extra = make(map[string]string)
	}
	s.extra[key] = value
	return s
}

// ID returns the span ID, 0 for an inert span.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}

// Point emits a root-level instant event.
func Point(t Tracer, scope Scope, name, detail string, failure bool) {
	point(t, &Event{Scope: scope, Name: name, Detail: detail, Failure: failure})
}

// Message emits the event for one diagnostic: text recorded under sev, now
// seen count times, shown or hidden by the repeat threshold. Errors are
// failure events.
func Message(t Tracer, sev diag.Severity, text string, count uint64, shown bool) {
	name := "diag." + strings.ToLower(sev.String())
	if !shown {
		name += ".suppressed"
	}
	point(t, &Event{
		Scope:    ScopeMessage,
		Name:     name,
		Detail:   text,
		Failure:  sev == diag.SevError,
		Severity: sev,
		Count:    count,
		Shown:    shown,
	})
}

func point(t Tracer, ev *Event) {
	if t == nil || !t.Enabled() {
		return
	}
	ev.Time = time.Now()
	ev.Seq = NextSeq()
	ev.Kind = KindPoint
	t.Emit(ev)
}
