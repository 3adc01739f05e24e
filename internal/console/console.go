// Package console switches the foreground color of a diagnostic stream.
//
// Colors are written as SGR escape sequences through fatih/color. On Windows
// the stream should be color.Error (a colorable writer) so sequences are
// translated to console attributes. With color disabled every call is a no-op.
package console

import (
	"io"

	"github.com/fatih/color"
)

// Console writes color changes to one stream.
type Console struct {
	w       io.Writer
	enabled bool
}

// New returns a Console for w. When enabled is false SetColor and
// SetColorDefault write nothing.
func New(w io.Writer, enabled bool) *Console {
	return &Console{w: w, enabled: enabled}
}

// Writer returns the wrapped stream.
func (c *Console) Writer() io.Writer {
	if c == nil {
		return nil
	}
	return c.w
}

// Enabled reports whether escape sequences are written.
func (c *Console) Enabled() bool { return c != nil && c.enabled }

// SetColor switches the foreground to attr.
func (c *Console) SetColor(attr Attr) {
	if !c.Enabled() {
		return
	}
	if attr == AttrDefault {
		c.SetColorDefault()
		return
	}
	col := color.New(attr.Foreground())
	col.EnableColor()
	col.SetWriter(c.w)
}

// SetColorDefault restores the default foreground.
func (c *Console) SetColorDefault() {
	if !c.Enabled() {
		return
	}
	// UnsetWriter honours the global color.NoColor, so write the reset
	// sequence through an explicitly enabled color instead.
	reset := color.New(color.Reset)
	reset.EnableColor()
	reset.SetWriter(c.w)
}
