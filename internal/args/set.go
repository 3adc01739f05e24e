// Package args holds the named process arguments that other components query,
// such as "errpause".
package args

import (
	"sort"
	"strings"

	"github.com/spf13/pflag"
)

// ErrPause makes the diagnostic log wait for acknowledgement after each error.
const ErrPause = "errpause"

// Set maps argument names to their values. A name present without values is
// a switch. The zero value is ready to use.
type Set struct {
	values map[string][]string
}

// New returns a Set holding the given switches.
func New(switches ...string) *Set {
	s := &Set{}
	for _, name := range switches {
		s.Add(name)
	}
	return s
}

// FromFlags collects every flag that was set on the command line. Boolean
// flags set to false are left out.
func FromFlags(fs *pflag.FlagSet) *Set {
	s := &Set{}
	if fs == nil {
		return s
	}
	fs.Visit(func(f *pflag.Flag) {
		if f.Value.Type() == "bool" {
			if f.Value.String() == "true" {
				s.Add(f.Name)
			}
			return
		}
		s.Add(f.Name, f.Value.String())
	})
	return s
}

// Add registers name and appends values to it.
func (s *Set) Add(name string, values ...string) {
	if s.values == nil {
		s.values = make(map[string][]string)
	}
	s.values[name] = append(s.values[name], values...)
}

// Has reports whether name was given.
func (s *Set) Has(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.values[name]
	return ok
}

// Values returns all values of name.
func (s *Set) Values(name string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.values[name]...)
}

// Names returns the registered names in sorted order.
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.values))
	for name := range s.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String renders the set as command-line flags, e.g. "--color=off --errpause".
func (s *Set) String() string {
	var parts []string
	for _, name := range s.Names() {
		values := s.Values(name)
		if len(values) == 0 {
			parts = append(parts, "--"+name)
			continue
		}
		for _, v := range values {
			parts = append(parts, "--"+name+"="+v)
		}
	}
	return strings.Join(parts, " ")
}
