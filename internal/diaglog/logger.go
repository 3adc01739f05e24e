// Package diaglog is the diagnostic log facade: warnings, infos and errors
// are deduplicated per class, colored on the console and written to the
// diagnostic stream with a severity prefix.
//
// A Logger is safe for concurrent use. Error output is never silenced and
// never suppressed by the repeat threshold; the repeat is still counted so
// the summary printed by DisplayErrors is exact.
package diaglog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"convsys/internal/args"
	"convsys/internal/console"
	"convsys/internal/diag"
	"convsys/internal/trace"
)

// DefaultSpamInterval is the minimum gap between two messages forwarded by
// RuntimeInfoSpam.
const DefaultSpamInterval = 200 * time.Millisecond

// Logger owns the three message classes and the output settings.
type Logger struct {
	mu sync.Mutex

	con      *console.Console
	out      io.Writer
	warnings *diag.Log
	errors   *diag.Log
	infos    *diag.Log

	silent bool
	args   *args.Set
	pause  func()

	now          func() time.Time
	spamInterval time.Duration
	lastSpam     time.Time

	tracer trace.Tracer
}

// Option configures a Logger.
type Option func(*Logger)

// WithConsole sets the stream and its color controller.
func WithConsole(c *console.Console) Option {
	return func(l *Logger) {
		if c != nil {
			l.con = c
		}
	}
}

// WithArgs sets the argument set queried for args.ErrPause.
func WithArgs(s *args.Set) Option {
	return func(l *Logger) { l.args = s }
}

// WithSilent suppresses everything except errors.
func WithSilent(silent bool) Option {
	return func(l *Logger) { l.silent = silent }
}

// WithPause replaces the pause-on-error hook. The default prompts on the
// diagnostic stream and waits for Enter on stdin.
func WithPause(fn func()) Option {
	return func(l *Logger) {
		if fn != nil {
			l.pause = fn
		}
	}
}

// WithClock replaces time.Now for the RuntimeInfoSpam limiter.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		if now != nil {
			l.now = now
		}
	}
}

// WithSpamInterval sets the RuntimeInfoSpam gap. Non-positive values keep the
// default.
func WithSpamInterval(d time.Duration) Option {
	return func(l *Logger) {
		if d > 0 {
			l.spamInterval = d
		}
	}
}

// WithThreshold sets the repeat threshold of all three classes.
func WithThreshold(n uint64) Option {
	return func(l *Logger) {
		l.warnings = diag.NewLog(n)
		l.errors = diag.NewLog(n)
		l.infos = diag.NewLog(n)
	}
}

// WithTracer emits a trace point for every message.
func WithTracer(t trace.Tracer) Option {
	return func(l *Logger) {
		if t != nil {
			l.tracer = t
		}
	}
}

// New returns a Logger writing uncolored to stderr unless options say
// otherwise.
func New(opts ...Option) *Logger {
	l := &Logger{
		con:          console.New(os.Stderr, false),
		warnings:     diag.NewLog(0),
		errors:       diag.NewLog(0),
		infos:        diag.NewLog(0),
		args:         &args.Set{},
		now:          time.Now,
		spamInterval: DefaultSpamInterval,
		tracer:       trace.Nop,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.out = l.con.Writer()
	if l.pause == nil {
		l.pause = StdinPause(stdin, l.out)
	}
	return l
}

// SetSilent toggles silencing of warnings and infos.
func (l *Logger) SetSilent(silent bool) {
	l.mu.Lock()
	l.silent = silent
	l.mu.Unlock()
}

// Silent reports whether warnings and infos are silenced.
func (l *Logger) Silent() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.silent
}

// Warning records txt and writes it in the warning color while it is below
// the repeat threshold.
func (l *Logger) Warning(txt string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.con.SetColor(console.AttrWarning)
	show := l.warnings.Record(txt)
	if show && !l.silent {
		l.writeLocked(diag.SevWarning, txt)
	}
	l.con.SetColorDefault()
	l.traceMessage(diag.SevWarning, l.warnings, txt, show)
}

// Info records txt and writes it while it is below the repeat threshold.
func (l *Logger) Info(txt string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	show := l.infos.Record(txt)
	if show && !l.silent {
		l.writeLocked(diag.SevInfo, txt)
	}
	l.traceMessage(diag.SevInfo, l.infos, txt, show)
}

// RuntimeInfo writes txt without recording it. Use it for progress lines that
// are unique or frequent.
func (l *Logger) RuntimeInfo(txt string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.runtimeInfoLocked(txt)
}

// RuntimeInfoSpam forwards txt to RuntimeInfo only when the spam interval
// passed since the last forwarded message. Dropped messages are lost.
func (l *Logger) RuntimeInfoSpam(txt string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.silent {
		return
	}
	now := l.now()
	if !l.lastSpam.IsZero() && now.Sub(l.lastSpam) < l.spamInterval {
		return
	}
	l.lastSpam = now
	l.runtimeInfoLocked(txt)
}

func (l *Logger) runtimeInfoLocked(txt string) {
	if !l.silent {
		l.writeLocked(diag.SevInfo, txt)
	}
}

// Error records txt and always writes it, regardless of silencing and of the
// repeat threshold. With args.ErrPause set it then blocks on the pause hook.
func (l *Logger) Error(txt string) {
	l.mu.Lock()
	l.con.SetColor(console.AttrError)
	// Errors are always shown; only the count matters here.
	_ = l.errors.Record(txt)
	l.writeLocked(diag.SevError, txt)
	l.con.SetColorDefault()
	l.traceMessage(diag.SevError, l.errors, txt, true)
	pause := l.args.Has(args.ErrPause)
	l.mu.Unlock()

	if pause {
		l.pause()
	}
}

// Errorf formats according to a format specifier and calls Error.
func (l *Logger) Errorf(format string, a ...any) {
	l.Error(fmt.Sprintf(format, a...))
}

// Warningf formats according to a format specifier and calls Warning.
func (l *Logger) Warningf(format string, a ...any) {
	l.Warning(fmt.Sprintf(format, a...))
}

// Infof formats according to a format specifier and calls Info.
func (l *Logger) Infof(format string, a ...any) {
	l.Info(fmt.Sprintf(format, a...))
}

func (l *Logger) writeLocked(sev diag.Severity, txt string) {
	fmt.Fprintf(l.out, "%s%s\n", sev.Prefix(), txt)
}

func (l *Logger) traceMessage(sev diag.Severity, log *diag.Log, txt string, shown bool) {
	if l.tracer.Enabled() {
		trace.Message(l.tracer, sev, txt, log.Count(txt), shown)
	}
}
