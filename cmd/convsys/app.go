package main

import (
	"context"
	"fmt"
	"os"

	"fortio.org/safecast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"convsys/internal/args"
	"convsys/internal/config"
	"convsys/internal/console"
	"convsys/internal/diag"
	"convsys/internal/system"
	"convsys/internal/trace"
)

// app carries the session state between the root hooks and execute.
type app struct {
	sys      *system.System
	summary  bool
	dumpPath string
	trace    *trace.Session // nil when tracing is off
	span     *trace.Span    // command span
}

type systemKey struct{}

// systemFrom returns the System attached by app.setup.
func systemFrom(cmd *cobra.Command) (*system.System, error) {
	if s, ok := cmd.Context().Value(systemKey{}).(*system.System); ok {
		return s, nil
	}
	return nil, fmt.Errorf("%s: session not initialised", cmd.Name())
}

// setup reads the config file and flags, creates the tracer and the System,
// and attaches both to the command context.
func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	colorValue := cfg.Diagnostics.Color
	if flags.Changed("color") {
		colorValue, _ = flags.GetString("color")
	}
	mode, err := console.ParseMode(colorValue)
	if err != nil {
		return err
	}

	silent := cfg.Diagnostics.Silent
	if flags.Changed("quiet") {
		silent, _ = flags.GetBool("quiet")
	}

	argSet := args.FromFlags(flags)
	if cfg.Diagnostics.ErrPause && !flags.Changed("errpause") {
		argSet.Add(args.ErrPause)
	}

	threshold, err := cfg.ThresholdValue()
	if err != nil {
		return fmt.Errorf("invalid threshold: %w", err)
	}
	if flags.Changed("threshold") {
		n, _ := flags.GetInt("threshold")
		if threshold, err = safecast.Conv[uint64](n); err != nil {
			return fmt.Errorf("invalid --threshold %d: %w", n, err)
		}
	}

	a.summary, _ = flags.GetBool("summary")
	a.dumpPath, _ = flags.GetString("diag-dump")

	session, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	tracer := trace.Nop
	if session != nil {
		a.trace = session
		tracer = session
	}
	a.span = trace.Begin(tracer, trace.ScopeProcess, "command:"+cmd.CommandPath(), 0)

	opts := system.Options{
		Color:        mode,
		Silent:       silent,
		Args:         argSet,
		Threshold:    threshold,
		SpamInterval: cfg.Diagnostics.SpamInterval.Duration,
		Tracer:       tracer,
	}
	if w := cmd.ErrOrStderr(); w != os.Stderr {
		opts.Stream = w
	}
	a.sys = system.New(opts)
	if err := a.sys.Init(); err != nil {
		return err
	}

	ctx := trace.WithSpan(trace.WithTracer(cmd.Context(), tracer), a.span)
	ctx = context.WithValue(ctx, systemKey{}, a.sys)
	cmd.SetContext(ctx)

	if cfg.Path != "" {
		a.sys.Log.RuntimeInfo("using config " + cfg.Path)
	}
	return a.sys.Apply(ctx, cfg)
}

func loadConfig(flags *pflag.FlagSet) (config.Config, error) {
	path, _ := flags.GetString("config")
	if path != "" {
		return config.Load(path)
	}
	return config.Discover(".")
}

// finish prints the summary, writes the dump, closes the command span and
// finishes the trace session. cmdErr is the command's result; a failed
// command lets the trace session write its ring.
func (a *app) finish(cmdErr error) error {
	var err error
	if a.sys != nil {
		if a.summary {
			a.sys.Log.DisplayAll()
		}
		if a.dumpPath != "" {
			if derr := diag.SaveSnapshot(a.dumpPath, a.sys.Log.Snapshot()); derr != nil {
				err = fmt.Errorf("write diagnostic dump: %w", derr)
			}
		}
	}
	if a.span != nil {
		if cmdErr != nil {
			a.span.Fail().End(cmdErr.Error())
		} else {
			a.span.End("")
		}
	}
	if a.trace != nil {
		if terr := a.trace.Finish(cmdErr != nil || err != nil); terr != nil && err == nil {
			err = fmt.Errorf("write trace: %w", terr)
		}
	}
	return err
}
