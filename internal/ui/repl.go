// Package ui holds the terminal front ends of the rithm command: the
// interactive calculator and the batch progress view.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"rithm/internal/calc"
)

var (
	indexStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

// REPL is a Bubble Tea model evaluating one line per Enter.
type REPL struct {
	ctx     context.Context
	calc    *calc.Calculator
	radix   int
	input   textinput.Model
	err     string
	history []string
	histPos int
	width   int
	quit    bool
}

// NewREPL returns a model driving c. Values are shown in radix.
func NewREPL(ctx context.Context, c *calc.Calculator, radix int) *REPL {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "1 2 + (quit to exit)"
	ti.Focus()
	return &REPL{ctx: ctx, calc: c, radix: radix, input: ti, width: 80}
}

func (m *REPL) Init() tea.Cmd { return textinput.Blink }

func (m *REPL) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			m.quit = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.submit() {
				return m, tea.Quit
			}
			return m, nil
		case tea.KeyUp:
			m.recall(-1)
			return m, nil
		case tea.KeyDown:
			m.recall(1)
			return m, nil
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit evaluates the input line and reports whether the session ends.
func (m *REPL) submit() bool {
	line := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	switch line {
	case "":
		return false
	case "quit", "exit":
		m.quit = true
		return true
	}
	m.history = append(m.history, line)
	m.histPos = len(m.history)
	m.err = ""
	if err := m.calc.Eval(m.ctx, line); err != nil {
		m.err = err.Error()
	}
	return false
}

func (m *REPL) recall(delta int) {
	if len(m.history) == 0 {
		return
	}
	m.histPos = min(max(m.histPos+delta, 0), len(m.history))
	if m.histPos == len(m.history) {
		m.input.Reset()
		return
	}
	m.input.SetValue(m.history[m.histPos])
	m.input.CursorEnd()
}

func (m *REPL) View() string {
	if m.quit {
		return ""
	}
	var b strings.Builder
	b.WriteString(RenderStack(m.calc.Stack(), m.radix, m.width))
	if m.err != "" {
		b.WriteString(errorStyle.Render("error: "+m.err) + "\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ history · esc quit"))
	b.WriteString("\n")
	return b.String()
}

// Err returns the message of the last failed line.
func (m *REPL) Err() string { return m.err }

// RenderStack lays out values top-down with their depth, right aligned and
// truncated to width columns.
func RenderStack(values []calc.Value, radix, width int) string {
	if len(values) == 0 {
		return indexStyle.Render("(empty)") + "\n"
	}
	texts := make([]string, len(values))
	labelWidth := len(fmt.Sprint(len(values)))
	valueWidth := 0
	for i, v := range values {
		texts[i] = v.Text(radix)
		valueWidth = max(valueWidth, runewidth.StringWidth(texts[i]))
	}
	limit := max(width-labelWidth-3, 8)
	valueWidth = min(valueWidth, limit)

	var b strings.Builder
	for i := len(values) - 1; i >= 0; i-- {
		depth := len(values) - i
		text := texts[i]
		if runewidth.StringWidth(text) > valueWidth {
			text = runewidth.Truncate(text, valueWidth, "…")
		}
		label := indexStyle.Render(fmt.Sprintf("%*d:", labelWidth, depth))
		fmt.Fprintf(&b, "%s %s\n", label, runewidth.FillLeft(text, valueWidth))
	}
	return b.String()
}
