// Package config loads rithm.toml, the optional settings file of the rithm
// command line tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"rithm/internal/digits"
	"rithm/internal/trace"
)

// FileName is the settings file searched for from the working directory upward.
const FileName = "rithm.toml"

// Config mirrors the sections of rithm.toml.
type Config struct {
	Arithmetic Arithmetic `toml:"arithmetic"`
	Output     Output     `toml:"output"`
	Trace      Trace      `toml:"trace"`

	// Path is the file the values came from; empty for defaults.
	Path string `toml:"-"`
}

type Arithmetic struct {
	DigitWidth int    `toml:"digit_width"`
	Separator  string `toml:"separator"`
}

type Output struct {
	Radix int    `toml:"radix"`
	Color string `toml:"color"`
}

type Trace struct {
	Level     string `toml:"level"`
	Output    string `toml:"output"`
	Mode      string `toml:"mode"`
	Format    string `toml:"format"`
	RingSize  int    `toml:"ring_size"`
	Heartbeat string `toml:"heartbeat"`
}

// Default returns the settings used when no file is found.
func Default() Config {
	return Config{
		Arithmetic: Arithmetic{DigitWidth: 32, Separator: "_"},
		Output:     Output{Radix: 10, Color: "auto"},
		Trace:      Trace{Level: "off", Output: "-", Mode: "stream", Format: "auto"},
	}
}

// Find walks from startDir to the filesystem root looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// LoadNearest loads the closest rithm.toml above startDir, or the defaults
// when there is none.
func LoadNearest(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Load reads path on top of the defaults and validates the result.
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
	if meta.IsDefined("arithmetic", "separator") && cfg.Arithmetic.Separator == "" {
		return Config{}, fmt.Errorf("%s: [arithmetic].separator must not be empty", path)
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every value and names the offending key.
func (c Config) Validate() error {
	if _, err := c.Family(); err != nil {
		return err
	}
	if c.Output.Radix < 2 || c.Output.Radix > digits.MaxRadix {
		return c.keyError("output", "radix", fmt.Errorf("%w, got %d", digits.ErrInvalidRadix, c.Output.Radix))
	}
	if _, err := ParseColorMode(c.Output.Color); err != nil {
		return c.keyError("output", "color", err)
	}
	if _, err := c.TraceConfig(); err != nil {
		return err
	}
	return nil
}

func (c Config) keyError(section, key string, err error) error {
	origin := c.Path
	if origin == "" {
		origin = "settings"
	}
	return fmt.Errorf("%s: [%s].%s: %w", origin, section, key, err)
}

// Family builds the digit family described by [arithmetic].
func (c Config) Family() (*digits.Family, error) {
	width, err := digits.ParseWidth(c.Arithmetic.DigitWidth)
	if err != nil {
		return nil, c.keyError("arithmetic", "digit_width", err)
	}
	if len(c.Arithmetic.Separator) != 1 {
		return nil, c.keyError("arithmetic", "separator",
			fmt.Errorf("want a single ASCII character, got %q", c.Arithmetic.Separator))
	}
	fam, err := digits.NewFamily(digits.Config{Width: width, Separator: c.Arithmetic.Separator[0]})
	if err != nil {
		return nil, c.keyError("arithmetic", "separator", err)
	}
	return fam, nil
}

// TraceConfig converts [trace] into a tracer configuration.
func (c Config) TraceConfig() (trace.Config, error) {
	level, err := trace.ParseLevel(c.Trace.Level)
	if err != nil {
		return trace.Config{}, c.keyError("trace", "level", err)
	}
	mode, err := trace.ParseMode(c.Trace.Mode)
	if err != nil {
		return trace.Config{}, c.keyError("trace", "mode", err)
	}
	format, err := trace.ParseFormat(c.Trace.Format)
	if err != nil {
		return trace.Config{}, c.keyError("trace", "format", err)
	}
	var heartbeat time.Duration
	if c.Trace.Heartbeat != "" {
		heartbeat, err = time.ParseDuration(c.Trace.Heartbeat)
		if err != nil || heartbeat < 0 {
			return trace.Config{}, c.keyError("trace", "heartbeat", fmt.Errorf("invalid duration %q", c.Trace.Heartbeat))
		}
	}
	if c.Trace.RingSize < 0 {
		return trace.Config{}, c.keyError("trace", "ring_size", fmt.Errorf("must not be negative, got %d", c.Trace.RingSize))
	}
	return trace.Config{
		Level:      level,
		Mode:       mode,
		Format:     format,
		OutputPath: c.Trace.Output,
		RingSize:   c.Trace.RingSize,
		Heartbeat:  heartbeat,
	}, nil
}

// ColorMode selects when output is colored.
type ColorMode uint8

const (
	ColorAuto ColorMode = iota
	ColorOn
	ColorOff
)

// String returns the string representation of ColorMode.
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorOn:
		return "on"
	case ColorOff:
		return "off"
	default:
		return "unknown"
	}
}

// ParseColorMode converts a string to ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return ColorAuto, nil
	case "on", "always", "true":
		return ColorOn, nil
	case "off", "never", "false":
		return ColorOff, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode: %q (expected: auto|on|off)", s)
	}
}
