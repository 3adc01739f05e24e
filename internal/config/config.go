// Package config loads convsys.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"

	"convsys/internal/diag"
	"convsys/internal/diaglog"
)

// FileName is the config file searched for by Find.
const FileName = "convsys.toml"

// ErrNotFound is returned by Find when no config file exists up to the root.
var ErrNotFound = errors.New("no " + FileName + " found")

// Config is the decoded configuration.
type Config struct {
	Path string `toml:"-"`

	Diagnostics Diagnostics `toml:"diagnostics"`
	Output      Output      `toml:"output"`
	Axis        Axis        `toml:"axis"`
}

// Diagnostics configures the diagnostic log.
type Diagnostics struct {
	Silent       bool     `toml:"silent"`
	ErrPause     bool     `toml:"errpause"`
	Color        string   `toml:"color"`
	Threshold    int64    `toml:"threshold"`
	SpamInterval Duration `toml:"spam_interval"`
}

// Output configures the output directory.
type Output struct {
	Dir string `toml:"dir"`
}

// Axis lists axis swaps applied in order.
type Axis struct {
	Swaps [][]int64 `toml:"swaps"`
}

// Duration decodes TOML strings such as "200ms".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Diagnostics: Diagnostics{
			Color:        "auto",
			Threshold:    diag.DefaultThreshold,
			SpamInterval: Duration{diaglog.DefaultSpamInterval},
		},
	}
}

// Find walks from startDir to the filesystem root looking for FileName.
func Find(startDir string) (string, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}

// Load decodes path over Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover loads the config found from startDir upward. Without a config
// file it returns Default and no error.
func Discover(startDir string) (Config, error) {
	path, err := Find(startDir)
	if errors.Is(err, ErrNotFound) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, err
	}
	return Load(path)
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Diagnostics.Threshold < 0 {
		return fmt.Errorf("[diagnostics].threshold must not be negative")
	}
	if c.Diagnostics.SpamInterval.Duration < 0 {
		return fmt.Errorf("[diagnostics].spam_interval must not be negative")
	}
	if _, err := c.SwapPairs(); err != nil {
		return err
	}
	return nil
}

// ThresholdValue returns the threshold as the log expects it.
func (c Config) ThresholdValue() (uint64, error) {
	return safecast.Conv[uint64](c.Diagnostics.Threshold)
}

// SwapPairs converts [axis].swaps into index pairs, checking each index.
func (c Config) SwapPairs() ([][2]int, error) {
	pairs := make([][2]int, 0, len(c.Axis.Swaps))
	for i, sw := range c.Axis.Swaps {
		if len(sw) != 2 {
			return nil, fmt.Errorf("[axis].swaps[%d]: expected 2 indices, got %d", i, len(sw))
		}
		var pair [2]int
		for j, v := range sw {
			idx, err := safecast.Conv[uint8](v)
			if err != nil || idx > 2 {
				return nil, fmt.Errorf("[axis].swaps[%d]: index %d out of range 0..2", i, v)
			}
			pair[j] = int(idx)
		}
		if pair[0] == pair[1] {
			return nil, fmt.Errorf("[axis].swaps[%d]: indices must differ", i)
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}
