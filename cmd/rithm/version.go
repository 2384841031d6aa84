package main

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"rithm/internal/digits"
	"rithm/internal/version"
)

type versionOptions struct {
	format   string
	showHash bool
	showDate bool
	showEnv  bool
}

type versionPayload struct {
	Tool       string `json:"tool"`
	Version    string `json:"version"`
	Tagline    string `json:"tagline"`
	GitCommit  string `json:"git_commit,omitempty"`
	BuildDate  string `json:"build_date,omitempty"`
	GoVersion  string `json:"go_version,omitempty"`
	DigitWidth int    `json:"digit_width,omitempty"`
}

const versionTagline = "every digit counts"

func newVersionCmd(a *app) *cobra.Command {
	var (
		format   string
		showHash bool
		showDate bool
		showEnv  bool
		showFull bool
	)
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show rithm build fingerprints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := versionOptions{
				format:   strings.ToLower(format),
				showHash: showHash || showFull,
				showDate: showDate || showFull,
				showEnv:  showEnv || showFull,
			}
			switch opts.format {
			case "pretty", "json":
			default:
				return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
			}
			width := a.settings.fam.Config().Width
			if opts.format == "json" {
				return renderVersionJSON(cmd.OutOrStdout(), width, opts)
			}
			renderVersionPretty(cmd.OutOrStdout(), width, opts)
			return nil
		},
	}
	cmd.Flags().BoolVar(&showHash, "hash", false, "include git commit hash")
	cmd.Flags().BoolVar(&showDate, "date", false, "include build timestamp")
	cmd.Flags().BoolVar(&showEnv, "env", false, "include Go version and digit width")
	cmd.Flags().BoolVar(&showFull, "full", false, "show every recorded bit of build metadata")
	cmd.Flags().StringVar(&format, "format", "pretty", "output format (pretty|json)")
	return cmd
}

func renderVersionPretty(out io.Writer, width digits.Width, opts versionOptions) {
	fmt.Fprintf(out, "rithm %s: %s\n", version.Styled(), versionTagline)
	if opts.showHash {
		fmt.Fprintf(out, "commit: %s\n", valueOrUnknown(version.Commit()))
	}
	if opts.showDate {
		fmt.Fprintf(out, "built:  %s\n", valueOrUnknown(version.BuildDate))
	}
	if opts.showEnv {
		fmt.Fprintf(out, "go:     %s\n", runtime.Version())
		fmt.Fprintf(out, "digits: %d-bit\n", uint8(width))
	}
}

func renderVersionJSON(out io.Writer, width digits.Width, opts versionOptions) error {
	payload := versionPayload{
		Tool:    "rithm",
		Version: version.Version,
		Tagline: versionTagline,
	}
	if opts.showHash {
		payload.GitCommit = valueOrUnknown(version.Commit())
	}
	if opts.showDate {
		payload.BuildDate = valueOrUnknown(version.BuildDate)
	}
	if opts.showEnv {
		payload.GoVersion = runtime.Version()
		payload.DigitWidth = int(width)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func valueOrUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
