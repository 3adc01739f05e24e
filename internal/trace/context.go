package trace

import "context"

type ctxKey struct{}

// ctxState is what a context carries: the tracer and the span that new
// spans and points are nested under.
type ctxState struct {
	tracer Tracer
	parent uint64
}

func stateFrom(ctx context.Context) ctxState {
	if ctx != nil {
		if st, ok := ctx.Value(ctxKey{}).(ctxState); ok {
			return st
		}
	}
	return ctxState{tracer: Nop}
}

// FromContext returns the tracer attached to ctx, or Nop.
func FromContext(ctx context.Context) Tracer {
	return stateFrom(ctx).tracer
}

// ParentFrom returns the ID of the span carried by ctx, or 0.
func ParentFrom(ctx context.Context) uint64 {
	return stateFrom(ctx).parent
}

// WithTracer attaches t to ctx. A nil t is stored as Nop.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, ctxKey{}, ctxState{tracer: t, parent: ParentFrom(ctx)})
}

// WithSpan makes s the parent of spans and points started from the returned
// context.
func WithSpan(ctx context.Context, s *Span) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	st := stateFrom(ctx)
	st.parent = s.ID()
	return context.WithValue(ctx, ctxKey{}, st)
}

// Start begins a span nested under the span carried by ctx.
func Start(ctx context.Context, scope Scope, name string) *Span {
	st := stateFrom(ctx)
	return Begin(st.tracer, scope, name, st.parent)
}

// Mark emits a point nested under the span carried by ctx.
func Mark(ctx context.Context, scope Scope, name, detail string) {
	st := stateFrom(ctx)
	point(st.tracer, &Event{Scope: scope, ParentID: st.parent, Name: name, Detail: detail})
}
