package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"convsys/internal/outdir"
)

// run executes argv against an isolated config file.
func run(t *testing.T, cfgBody string, argv ...string) (string, string, error) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "convsys.toml")
	if err := os.WriteFile(cfgPath, []byte(cfgBody), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	var stdout, stderr bytes.Buffer
	err := execute(append([]string{"--config", cfgPath, "--color", "off"}, argv...), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestPathCommands(t *testing.T) {
	tests := []struct {
		argv []string
		want string
	}{
		{[]string{"path", "fix", "a/b//c/../d"}, "a\\b\\d\n"},
		{[]string{"path", "dir", `a\b\c.txt`, "c.txt"}, "a\\b\\\nc.txt\n"},
		{[]string{"path", "name", "a/b/c.txt"}, "c.txt\n"},
		{[]string{"path", "stem", "file.tar.gz"}, "file.tar\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.argv, " "), func(t *testing.T) {
			stdout, _, err := run(t, "", tt.argv...)
			if err != nil {
				t.Fatalf("execute: %v", err)
			}
			if stdout != tt.want {
				t.Fatalf("stdout = %q, want %q", stdout, tt.want)
			}
		})
	}
}

func TestPathStemInfoAndQuiet(t *testing.T) {
	_, stderr, err := run(t, "", "path", "stem", "noext", "noext")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := strings.Count(stderr, "INFO: path has no file ending: noext"); got != 2 {
		t.Fatalf("info lines = %d in %q", got, stderr)
	}

	_, stderr, err = run(t, "", "--quiet", "path", "stem", "noext")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if stderr != "" {
		t.Fatalf("--quiet must silence infos, got %q", stderr)
	}
}

func TestOutdirCommand(t *testing.T) {
	dir := t.TempDir() + "/"
	stdout, stderr, err := run(t, "", "outdir", dir)
	if err != nil {
		t.Fatalf("execute: %v (stderr %q)", err, stderr)
	}
	if stdout != "output directory: "+dir+"\n" {
		t.Fatalf("stdout = %q", stdout)
	}

	missing := filepath.Join(t.TempDir(), "missing") + "/"
	_, stderr, err = run(t, "", "--quiet", "outdir", missing)
	if !errors.Is(err, outdir.ErrNotWritable) {
		t.Fatalf("expected ErrNotWritable, got %v", err)
	}
	if !strings.Contains(stderr, "ERROR: cannot write in output directory "+missing) {
		t.Fatalf("error line missing from %q", stderr)
	}
}

func TestOutdirWarnsWithoutTrailingSeparator(t *testing.T) {
	dir := t.TempDir()
	_, stderr, err := run(t, "", "outdir", dir)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(stderr, "WARNING: output directory has no trailing separator") {
		t.Fatalf("missing warning in %q", stderr)
	}
}

func TestAxisCommand(t *testing.T) {
	stdout, _, err := run(t, "", "axis", "0,1")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(stdout, "[0 1 0 0]\n[1 0 0 0]") || !strings.HasSuffix(stdout, "axis swap: true\n") {
		t.Fatalf("stdout = %q", stdout)
	}

	stdout, _, err = run(t, "", "axis", "0,1", "1,0")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasSuffix(stdout, "axis swap: false\n") {
		t.Fatalf("two equal swaps must cancel, stdout = %q", stdout)
	}

	if _, _, err := run(t, "", "axis", "0,3"); err == nil {
		t.Fatalf("out of range axis must fail")
	}
}

func TestAxisFromConfig(t *testing.T) {
	cfg := "[axis]\nswaps = [[1, 2]]\n"
	stdout, _, err := run(t, cfg, "axis")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasSuffix(stdout, "axis swap: true\n") {
		t.Fatalf("config swap not applied: %q", stdout)
	}

	stdout, _, err = run(t, cfg, "axis", "--reset")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasSuffix(stdout, "axis swap: false\n") {
		t.Fatalf("--reset must drop config swaps: %q", stdout)
	}
}

func TestDumpAndReport(t *testing.T) {
	dump := filepath.Join(t.TempDir(), "diag.mp")
	missing := filepath.Join(t.TempDir(), "missing") + "/"
	if _, _, err := run(t, "", "--diag-dump", dump, "outdir", missing); err == nil {
		t.Fatalf("outdir on a missing directory must fail")
	}
	if _, err := os.Stat(dump); err != nil {
		t.Fatalf("dump not written on failure: %v", err)
	}

	_, stderr, err := run(t, "", "report", dump)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	want := "ERRORS (1):\n(1) cannot write in output directory " + missing + "\n"
	if !strings.HasSuffix(stderr, want) {
		t.Fatalf("report stderr = %q, want suffix %q", stderr, want)
	}
}

func TestSummaryAndThreshold(t *testing.T) {
	_, stderr, err := run(t, "[diagnostics]\nthreshold = 2\n", "--summary", "path", "stem", "x", "x", "x")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := strings.Count(stderr, "INFO: path has no file ending: x"); got != 1 {
		t.Fatalf("threshold 2 must print once, got %d in %q", got, stderr)
	}
	if !strings.HasSuffix(stderr, "INFOS (3):\n(3) path has no file ending: x\n") {
		t.Fatalf("missing summary in %q", stderr)
	}

	_, _, err = run(t, "", "--threshold", "-1", "path", "fix", "a")
	if err == nil {
		t.Fatalf("negative --threshold must fail")
	}
}

func TestTraceOutput(t *testing.T) {
	dir := t.TempDir() + "/"
	_, stderr, err := run(t, "", "--trace", "-", "--trace-level", "component", "outdir", dir)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"command:convsys outdir", "  \u2192 outdir.set", "(writable)"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("trace output missing %q:\n%s", want, stderr)
		}
	}
}

func TestTraceBothDumpsRingOnFailure(t *testing.T) {
	dir := t.TempDir() + "/"
	_, stderr, err := run(t, "", "--trace", "-", "--trace-mode", "both", "outdir", dir)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if strings.Contains(stderr, "trace.ring") {
		t.Fatalf("successful command must not dump the ring:\n%s", stderr)
	}

	missing := filepath.Join(t.TempDir(), "missing") + "/"
	_, stderr, err = run(t, "", "--trace", "-", "--trace-mode", "both", "outdir", missing)
	if err == nil {
		t.Fatalf("outdir on a missing directory must fail")
	}
	dump := strings.Index(stderr, "trace.ring ! (command failed:")
	if dump < 0 {
		t.Fatalf("failed command must dump the ring:\n%s", stderr)
	}
	// the live stream runs at process level and only lets failures through;
	// the ring also holds the begin of the component span
	if strings.Contains(stderr[:dump], "\u2192 outdir.set") {
		t.Fatalf("component begin leaked into the process-level stream:\n%s", stderr)
	}
	for _, want := range []string{"\u2192 outdir.set", "diag.error ! x1 (cannot write in output directory " + missing + ")"} {
		if !strings.Contains(stderr[dump:], want) {
			t.Errorf("ring dump missing %q:\n%s", want, stderr[dump:])
		}
	}
}

func TestTraceRingModeDumpsAtExit(t *testing.T) {
	_, stderr, err := run(t, "", "--trace", "-", "--trace-mode", "ring", "--trace-level", "debug", "path", "stem", "noext")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(stderr, "trace.ring (end of run:") || !strings.Contains(stderr, "diag.info x1 (path has no file ending: noext)") {
		t.Fatalf("ring mode output:\n%s", stderr)
	}
}

func TestReportUnreadableDump(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none.mp")
	_, stderr, err := run(t, "", "report", missing)
	if err == nil {
		t.Fatalf("report on a missing dump must fail")
	}
	if !strings.Contains(stderr, "ERROR: cannot read diagnostic dump "+missing) {
		t.Fatalf("missing error line in %q", stderr)
	}
}

func TestVersionJSON(t *testing.T) {
	stdout, _, err := run(t, "", "version", "--format", "json", "--full")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	var payload versionPayload
	if err := json.Unmarshal([]byte(stdout), &payload); err != nil {
		t.Fatalf("invalid json %q: %v", stdout, err)
	}
	if payload.Tool != "convsys" || payload.GitCommit != "unknown" {
		t.Fatalf("unexpected payload %+v", payload)
	}

	if _, _, err := run(t, "", "version", "--format", "xml"); err == nil {
		t.Fatalf("unknown format must fail")
	}
}

func TestInvalidConfigFails(t *testing.T) {
	if _, _, err := run(t, "[axis]\nswaps = [[0, 0]]\n", "sysinfo"); err == nil {
		t.Fatalf("invalid config must fail")
	}
}

func TestSysinfo(t *testing.T) {
	stdout, _, err := run(t, "[diagnostics]\nerrpause = true\n", "sysinfo")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	wd, _ := os.Getwd()
	if !strings.Contains(stdout, "working dir: "+wd) || !strings.Contains(stdout, "output dir:  unknown") {
		t.Fatalf("stdout = %q", stdout)
	}
	if !strings.Contains(stdout, "arguments:   --color=off --config=") || !strings.Contains(stdout, "--errpause\n") {
		t.Fatalf("arguments line missing in %q", stdout)
	}
}

func TestParseSwap(t *testing.T) {
	tests := []struct {
		in      string
		want    [2]int
		wantErr bool
	}{
		{"0,1", [2]int{0, 1}, false},
		{" 2 , 0 ", [2]int{2, 0}, false},
		{"1", [2]int{}, true},
		{"1,1", [2]int{}, true},
		{"x,1", [2]int{}, true},
		{"0,-1", [2]int{}, true},
	}
	for _, tt := range tests {
		got, err := parseSwap(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("parseSwap(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "unknown"},
		{512, "512 B"},
		{2048, "2.0 KiB"},
		{3 << 30, "3.0 GiB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
