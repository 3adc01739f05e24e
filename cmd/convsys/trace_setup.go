package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"convsys/internal/trace"
)

// setupTracing opens the trace session described by the trace flags. It
// returns nil when tracing is off.
func setupTracing(cmd *cobra.Command) (*trace.Session, error) {
	flags := cmd.Flags()

	traceOutput, err := flags.GetString("trace")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace flag: %w", err)
	}

	levelStr, err := flags.GetString("trace-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-level flag: %w", err)
	}

	modeStr, err := flags.GetString("trace-mode")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-mode flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}

	// An output without a level means "trace the command boundaries".
	if level == trace.LevelOff {
		if traceOutput == "" {
			return nil, nil
		}
		level = trace.LevelProcess
	}

	mode, err := trace.ParseMode(modeStr)
	if err != nil {
		return nil, err
	}

	session, err := trace.Open(trace.Options{
		Level:  level,
		Mode:   mode,
		Path:   traceOutput,
		Stderr: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	return session, nil
}
