package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[diagnostics]
silent = true
errpause = true
color = "off"
threshold = 3
spam_interval = "1s"

[output]
dir = "build/"

[axis]
swaps = [[0, 1], [1, 2]]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Diagnostics.Silent || !cfg.Diagnostics.ErrPause || cfg.Diagnostics.Color != "off" {
		t.Fatalf("unexpected diagnostics %+v", cfg.Diagnostics)
	}
	if cfg.Diagnostics.SpamInterval.Duration != time.Second {
		t.Fatalf("spam_interval = %v", cfg.Diagnostics.SpamInterval)
	}
	if n, err := cfg.ThresholdValue(); err != nil || n != 3 {
		t.Fatalf("ThresholdValue = %d, %v", n, err)
	}
	pairs, err := cfg.SwapPairs()
	if err != nil || len(pairs) != 2 || pairs[1] != [2]int{1, 2} {
		t.Fatalf("SwapPairs = %v, %v", pairs, err)
	}
	if cfg.Output.Dir != "build/" || cfg.Path != path {
		t.Fatalf("unexpected output/path %+v %q", cfg.Output, cfg.Path)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[output]\ndir = \"out/\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if cfg.Diagnostics != def.Diagnostics {
		t.Fatalf("diagnostics defaults lost: %+v", cfg.Diagnostics)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad toml", "[diagnostics\n", "failed to parse TOML"},
		{"unknown key", "[output]\nfolder = \"x\"\n", "unknown keys: output.folder"},
		{"negative threshold", "[diagnostics]\nthreshold = -1\n", "threshold"},
		{"bad duration", "[diagnostics]\nspam_interval = \"soon\"\n", "failed to parse TOML"},
		{"axis out of range", "[axis]\nswaps = [[0, 3]]\n", "out of range"},
		{"axis negative", "[axis]\nswaps = [[-1, 0]]\n", "out of range"},
		{"axis same", "[axis]\nswaps = [[2, 2]]\n", "must differ"},
		{"axis arity", "[axis]\nswaps = [[0, 1, 2]]\n", "expected 2 indices"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.body)
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Load error = %v, want substring %q", err, tt.want)
			}
		})
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	got, err := Find(nested)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if got != want {
		t.Fatalf("Find = %q, want %q", got, want)
	}
}

func TestDiscoverWithoutFile(t *testing.T) {
	dir := t.TempDir()
	if _, err := Find(dir); !errors.Is(err, ErrNotFound) {
		t.Skipf("config file present above temp dir: %v", err)
	}
	cfg, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if cfg.Path != "" || cfg.Diagnostics != Default().Diagnostics {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}
