package version

import (
	"strings"
	"testing"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestColored(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "1.2.3-rc.1"
	if got := Colored(false); got != "1.2.3-rc.1" {
		t.Errorf("Colored(false) = %q", got)
	}
	got := Colored(true)
	if !strings.Contains(got, "\x1b[") || !strings.HasSuffix(got, "-rc.1") {
		t.Errorf("Colored(true) = %q", got)
	}

	Version = "dev"
	if got := Colored(true); got != "dev" {
		t.Errorf("non-semver version must stay plain, got %q", got)
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		in                     string
		major, minor, patch, s string
		ok                     bool
	}{
		{"0.1.0", "0", "1", "0", "", true},
		{"10.20.30+build", "10", "20", "30", "+build", true},
		{"1.2", "", "", "", "", false},
		{"v1.2.3", "", "", "", "", false},
	}
	for _, tt := range tests {
		major, minor, patch, s, ok := split(tt.in)
		if ok != tt.ok || major != tt.major || minor != tt.minor || patch != tt.patch || s != tt.s {
			t.Errorf("split(%q) = %q %q %q %q %v", tt.in, major, minor, patch, s, ok)
		}
	}
}
