// Package outdir records the output directory and checks that it accepts
// new files.
package outdir

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"convsys/internal/pathutil"
	"convsys/internal/trace"
)

// ErrNotWritable is returned when the probe file cannot be created.
var ErrNotWritable = errors.New("unable to write to output directory")

// probeName is appended to the directory as given; callers pass a directory
// that already ends in a separator.
const probeName = "tmp"

// ErrorLogger receives the diagnostic emitted when the probe fails.
type ErrorLogger interface {
	Error(txt string)
}

// Validator holds the output directory.
type Validator struct {
	mu  sync.Mutex
	dir string
	log ErrorLogger
}

// New returns a Validator reporting probe failures to log. log may be nil.
func New(log ErrorLogger) *Validator {
	return &Validator{log: log}
}

// Set stores the directory part of dir, then probes it by creating and
// removing dir+"tmp". The directory is stored even when the probe fails.
func (v *Validator) Set(ctx context.Context, dir string) error {
	span := trace.Start(ctx, trace.ScopeComponent, "outdir.set").
		WithExtra("dir", dir)

	v.mu.Lock()
	v.dir = pathutil.FileDirectory(dir)
	v.mu.Unlock()

	err := probe(dir + probeName)
	if err == nil {
		span.End("writable")
		return nil
	}

	span.Fail().End(err.Error())
	if v.log != nil {
		v.log.Error("cannot write in output directory " + dir)
	}
	return fmt.Errorf("%w: %s: %w", ErrNotWritable, dir, err)
}

// Dir returns the stored directory, or "" before the first Set.
func (v *Validator) Dir() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.dir
}

func probe(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Remove(path)
}
