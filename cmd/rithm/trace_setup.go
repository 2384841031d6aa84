package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"rithm/internal/config"
	"rithm/internal/trace"
)

// setupTracing builds the tracer described by cfg and attaches it to the
// command context. The cleanup dumps the ring buffer to stderr when the
// command failed.
func setupTracing(cmd *cobra.Command, cfg config.Config) (func(failed bool), error) {
	tcfg, err := cfg.TraceConfig()
	if err != nil {
		return nil, err
	}
	if tcfg.Level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func(bool) {}, nil
	}
	if tcfg.OutputPath == "-" || tcfg.OutputPath == "" {
		// Hide Close so the tracer never closes the command's stderr.
		tcfg.Output = struct{ io.Writer }{cmd.ErrOrStderr()}
	}

	tracer, err := trace.New(tcfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	cmd.SetContext(trace.WithTracer(cmd.Context(), tracer))
	root := trace.Begin(tracer, trace.ScopeDriver, cmd.Name(), 0)

	heartbeat := trace.StartHeartbeat(tracer, tcfg.Heartbeat)

	return func(failed bool) {
		heartbeat.Stop()
		detail := ""
		if failed {
			detail = "failed"
		}
		root.End(detail)
		if ring, ok := trace.Ring(tracer); ok && failed {
			fmt.Fprintln(cmd.ErrOrStderr(), "trace: last events:")
			if err := ring.Dump(cmd.ErrOrStderr(), trace.FormatText); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "trace: dump error: %v\n", err)
			}
		}
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}, nil
}
