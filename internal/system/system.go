// Package system bundles the process utilities into one explicitly
// constructed context: the diagnostic log, the output directory, the axis
// swap transform and the argument set.
package system

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"

	"convsys/internal/args"
	"convsys/internal/axis"
	"convsys/internal/config"
	"convsys/internal/console"
	"convsys/internal/diaglog"
	"convsys/internal/outdir"
	"convsys/internal/trace"
)

// Options configures New.
type Options struct {
	// Stream receives diagnostics; nil selects color.Error (stderr).
	Stream       io.Writer
	Color        console.Mode
	Silent       bool
	Args         *args.Set
	Threshold    uint64
	SpamInterval time.Duration
	// Pause replaces the default stdin prompt used with errpause.
	Pause  func()
	Tracer trace.Tracer
}

// System is the process context shared by the tool's components.
type System struct {
	Log  *diaglog.Logger
	Out  *outdir.Validator
	Axis *axis.Swap
	Args *args.Set

	mu     sync.Mutex
	curDir string
}

// New builds a System from opts.
func New(opts Options) *System {
	stream := opts.Stream
	probe := stream
	if stream == nil {
		stream = color.Error
		probe = os.Stderr
	}
	if opts.Args == nil {
		opts.Args = &args.Set{}
	}
	if opts.Tracer == nil {
		opts.Tracer = trace.Nop
	}

	log := diaglog.New(
		diaglog.WithConsole(console.New(stream, opts.Color.Enabled(probe))),
		diaglog.WithSilent(opts.Silent),
		diaglog.WithArgs(opts.Args),
		diaglog.WithThreshold(opts.Threshold),
		diaglog.WithSpamInterval(opts.SpamInterval),
		diaglog.WithPause(opts.Pause),
		diaglog.WithTracer(opts.Tracer),
	)
	return &System{
		Log:  log,
		Out:  outdir.New(log),
		Axis: axis.NewSwap(),
		Args: opts.Args,
	}
}

// Init records the working directory.
func (s *System) Init() error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}
	s.mu.Lock()
	s.curDir = wd
	s.mu.Unlock()
	return nil
}

// CurDir returns the working directory captured by Init.
func (s *System) CurDir() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.curDir
}

// SetOutputDirectory stores and probes dir. See outdir.Validator.Set.
func (s *System) SetOutputDirectory(ctx context.Context, dir string) error {
	return s.Out.Set(ctx, dir)
}

// OutputDirectory returns the stored output directory.
func (s *System) OutputDirectory() string {
	return s.Out.Dir()
}

// SetAxisSwap composes a swap of axes a1 and a2. It panics on invalid
// indices.
func (s *System) SetAxisSwap(ctx context.Context, a1, a2 int) {
	s.Axis.Set(a1, a2)
	trace.Mark(ctx, trace.ScopeComponent, "axis.swap", fmt.Sprintf("%d<->%d", a1, a2))
}

// AxisSwap returns a copy of the axis transform.
func (s *System) AxisSwap() axis.Mat4 { return s.Axis.Get() }

// HasAxisSwap reports whether the axis transform differs from identity.
func (s *System) HasAxisSwap() bool { return s.Axis.Has() }

// Apply applies the axis swaps and the output directory of cfg, in that
// order. Flag-level settings are applied by New.
func (s *System) Apply(ctx context.Context, cfg config.Config) error {
	pairs, err := cfg.SwapPairs()
	if err != nil {
		return err
	}
	for _, p := range pairs {
		s.SetAxisSwap(ctx, p[0], p[1])
	}
	if cfg.Output.Dir != "" {
		if err := s.SetOutputDirectory(ctx, cfg.Output.Dir); err != nil {
			return err
		}
	}
	return nil
}
