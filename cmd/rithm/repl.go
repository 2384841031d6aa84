package main

import (
	"bufio"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"rithm/internal/calc"
	"rithm/internal/ui"
)

func newReplCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive RPN calculator",
		Long: `Repl evaluates one line at a time on a persistent stack. On a terminal it
shows the stack live; otherwise it prints the top of the stack after each line.`,
		Args: cobra.NoArgs,
		RunE: a.runRepl,
	}
	cmd.Flags().String("load", "", "load the stack from a snapshot at start")
	cmd.Flags().String("save", "", "save the stack to a snapshot on exit")
	cmd.Flags().String("ui", "auto", "interactive view (auto|on|off)")
	return cmd
}

func (a *app) runRepl(cmd *cobra.Command, _ []string) error {
	loadPath, err := cmd.Flags().GetString("load")
	if err != nil {
		return fmt.Errorf("failed to get load flag: %w", err)
	}
	savePath, err := cmd.Flags().GetString("save")
	if err != nil {
		return fmt.Errorf("failed to get save flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	c := calc.New(a.settings.fam)
	if loadPath != "" {
		if err := loadSnapshot(c, loadPath); err != nil {
			return err
		}
	}

	interactive := shouldUseTUI(mode, cmd.InOrStdin(), cmd.OutOrStdout())
	if interactive {
		model := ui.NewREPL(cmd.Context(), c, a.settings.radix)
		program := tea.NewProgram(model, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("repl: %w", err)
		}
	} else if err := a.lineRepl(cmd, c); err != nil {
		return err
	}

	if savePath != "" {
		return saveSnapshot(c, savePath)
	}
	return nil
}

// lineRepl is the non-interactive loop. A failing line reports its error
// and leaves the stack as it was.
func (a *app) lineRepl(cmd *cobra.Command, c *calc.Calculator) error {
	out := cmd.OutOrStdout()
	sc := bufio.NewScanner(cmd.InOrStdin())
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if line == "quit" || line == "exit" {
			break
		}
		if err := c.Eval(cmd.Context(), line); err != nil {
			printError(cmd.ErrOrStderr(), err)
			continue
		}
		if top, ok := c.Top(); ok {
			fmt.Fprintf(out, "[%d] %s\n", c.Depth(), top.Text(a.settings.radix))
		} else {
			fmt.Fprintln(out, "[0]")
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}
