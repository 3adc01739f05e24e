package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

// StreamTracer writes accepted events to a writer as they arrive.
//
// Output to a file opened by the tracer is buffered and closed by Close.
// Writers passed to NewStreamTracer are written unbuffered and never closed,
// so trace lines stay interleaved with diagnostics on a shared stderr.
type StreamTracer struct {
	mu     sync.Mutex
	out    io.Writer
	buf    *bufio.Writer // non-nil for owned files
	file   *os.File
	level  Level
	format Format
	err    error // first write error; later events are dropped
}

// NewStreamTracer writes to w without taking ownership of it.
func NewStreamTracer(w io.Writer, level Level, format Format) *StreamTracer {
	return &StreamTracer{out: w, level: level, format: format}
}

// createStreamTracer creates path and writes to it through a buffer.
func createStreamTracer(path string, level Level, format Format) (*StreamTracer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("open trace output: %w", err)
	}
	buf := bufio.NewWriter(f)
	return &StreamTracer{out: buf, buf: buf, file: f, level: level, format: format}, nil
}

// Emit writes ev if the level accepts it.
func (t *StreamTracer) Emit(ev *Event) {
	if !t.level.Accepts(ev) {
		return
	}
	if ev.Seq == 0 {
		ev.Seq = NextSeq()
	}
	t.write(ev)
}

// write formats ev regardless of the level. A failed write disables the
// tracer; tracing never fails the command.
func (t *StreamTracer) write(ev *Event) {
	data := FormatEvent(ev, t.format)
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.err != nil {
		return
	}
	_, t.err = t.out.Write(data)
}

// Flush reports the first write error, then drains the buffer.
func (t *StreamTracer) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.err != nil {
		return t.err
	}
	if t.buf != nil {
		return t.buf.Flush()
	}
	return nil
}

// Close flushes and closes an owned file.
func (t *StreamTracer) Close() error {
	err := t.Flush()
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.file != nil {
		err = errors.Join(err, t.file.Close())
		t.file = nil
	}
	return err
}

// Level returns the filter level.
func (t *StreamTracer) Level() Level { return t.level }

// Enabled reports whether the tracer writes anything.
func (t *StreamTracer) Enabled() bool { return t.level > LevelOff }
