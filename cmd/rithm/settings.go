package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rithm/internal/config"
	"rithm/internal/digits"
	"rithm/internal/observ"
)

// settings is the effective configuration of one invocation: rithm.toml
// values with command line flags applied on top.
type settings struct {
	cfg   config.Config
	fam   *digits.Family
	radix int
	color bool
	timer *observ.Timer // nil unless --timings
}

type flagOverride struct {
	flag  string
	apply func() error
}

// loadSettings reads the settings file and applies flag overrides. Only
// flags set explicitly on the command line override file values.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	flags := cmd.Flags()
	path, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	var cfg config.Config
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadNearest(".")
	}
	if err != nil {
		return nil, err
	}

	intFlag := func(name string, dst *int) flagOverride {
		return flagOverride{name, func() error {
			v, err := flags.GetInt(name)
			*dst = v
			return err
		}}
	}
	stringFlag := func(name string, dst *string) flagOverride {
		return flagOverride{name, func() error {
			v, err := flags.GetString(name)
			*dst = v
			return err
		}}
	}
	overrides := []flagOverride{
		intFlag("width", &cfg.Arithmetic.DigitWidth),
		stringFlag("separator", &cfg.Arithmetic.Separator),
		intFlag("radix", &cfg.Output.Radix),
		stringFlag("color", &cfg.Output.Color),
		stringFlag("trace", &cfg.Trace.Output),
		stringFlag("trace-level", &cfg.Trace.Level),
		stringFlag("trace-mode", &cfg.Trace.Mode),
		stringFlag("trace-format", &cfg.Trace.Format),
		intFlag("trace-ring-size", &cfg.Trace.RingSize),
		{"trace-heartbeat", func() error {
			d, err := flags.GetDuration("trace-heartbeat")
			cfg.Trace.Heartbeat = d.String()
			return err
		}},
	}
	for _, o := range overrides {
		if !flags.Changed(o.flag) {
			continue
		}
		if err := o.apply(); err != nil {
			return nil, fmt.Errorf("failed to get %s flag: %w", o.flag, err)
		}
	}
	// An explicit trace destination without a level means phase tracing.
	if flags.Changed("trace") && !flags.Changed("trace-level") && (cfg.Trace.Level == "" || cfg.Trace.Level == "off") {
		cfg.Trace.Level = "phase"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	fam, err := cfg.Family()
	if err != nil {
		return nil, err
	}
	mode, err := config.ParseColorMode(cfg.Output.Color)
	if err != nil {
		return nil, err
	}
	s := &settings{cfg: cfg, fam: fam, radix: cfg.Output.Radix}
	switch mode {
	case config.ColorOn:
		s.color = true
	case config.ColorAuto:
		s.color = isTerminal(cmd.OutOrStdout()) && os.Getenv("NO_COLOR") == ""
	}
	timings, err := flags.GetBool("timings")
	if err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if timings {
		s.timer = observ.NewTimer()
	}
	return s, nil
}

// setup runs before every subcommand.
func (a *app) setup(cmd *cobra.Command) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	a.settings = s
	color.NoColor = !s.color

	cleanupTrace, err := setupTracing(cmd, s.cfg)
	if err != nil {
		return err
	}
	a.cleanups = append(a.cleanups, cleanupTrace)

	cleanupProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	a.cleanups = append(a.cleanups, func(bool) { cleanupProfiling() })

	if s.timer != nil {
		a.cleanups = append(a.cleanups, func(bool) { s.timer.Fprint(cmd.ErrOrStderr()) })
	}
	return nil
}
