package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"rithm/internal/batch"
	"rithm/internal/ui"
)

func newBatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [flags] file...",
		Short: "Evaluate RPN files concurrently",
		Long: `Batch evaluates every line of each file on a stack of its own, running
files in parallel, and prints each final stack in argument order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runBatch,
	}
	cmd.Flags().IntP("jobs", "j", 0, "files evaluated concurrently (0 = GOMAXPROCS)")
	cmd.Flags().String("ui", "auto", "progress view (auto|on|off)")
	return cmd
}

func (a *app) runBatch(cmd *cobra.Command, files []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	req := batch.Request{Files: files, Family: a.settings.fam, Jobs: jobs}
	var results []batch.Result
	if shouldUseTUI(mode, cmd.InOrStdin(), cmd.OutOrStdout()) {
		results, err = runBatchWithUI(cmd.Context(), req, cmd.InOrStdin(), cmd.OutOrStdout())
	} else {
		results, err = batch.Run(cmd.Context(), req)
	}
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, res := range results {
		if a.settings.timer != nil {
			a.settings.timer.Record(res.Path, res.Elapsed, fmt.Sprintf("%d lines", res.Lines))
		}
		if res.Err != nil {
			failed++
			printError(cmd.ErrOrStderr(), res.Err)
			continue
		}
		fmt.Fprintf(out, "%s: %s\n", res.Path, joinValues(res, a.settings.radix))
	}
	if failed > 0 {
		return &exitError{code: 1, err: fmt.Errorf("%d of %d files failed", failed, len(results))}
	}
	return nil
}

func joinValues(res batch.Result, radix int) string {
	if len(res.Stack) == 0 {
		return "(empty)"
	}
	parts := make([]string, len(res.Stack))
	for i, v := range res.Stack {
		parts[i] = v.Text(radix)
	}
	return strings.Join(parts, " ")
}

type batchOutcome struct {
	results []batch.Result
	err     error
}

func runBatchWithUI(ctx context.Context, req batch.Request, in io.Reader, out io.Writer) ([]batch.Result, error) {
	events := make(chan batch.Event, 256)
	outcomeCh := make(chan batchOutcome, 1)

	go func() {
		reqCopy := req
		reqCopy.Progress = batch.ChannelSink{Ch: events}
		res, err := batch.Run(ctx, reqCopy)
		outcomeCh <- batchOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("batch", req.Files, events)
	program := tea.NewProgram(model, tea.WithInput(in), tea.WithOutput(out))
	_, uiErr := program.Run()
	// The view may quit early; keep the workers unblocked.
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
