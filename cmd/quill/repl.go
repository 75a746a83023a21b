package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"quill/quill"
)

var (
	accentColor  = lipgloss.Color("#3B82F6")
	successColor = lipgloss.Color("#10B981")
	errorColor   = lipgloss.Color("#EF4444")
	mutedColor   = lipgloss.Color("#6B7280")

	promptStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	resultStyle = lipgloss.NewStyle().Foreground(successColor)
	errorStyle  = lipgloss.NewStyle().Foreground(errorColor)
	mutedStyle  = lipgloss.NewStyle().Foreground(mutedColor)
	headerStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true).Padding(0, 1)
)

type historyEntry struct {
	input string
	lines []string
	isErr bool
}

// replModel evaluates each line of input against a scope and context that
// persist for the life of the session, so a variable bound on one line is
// visible on the next. Each line is parsed as its own program: a class body
// does not fit on one line, and a class name from an earlier line is not
// known to the parser of a later one.
type replModel struct {
	textInput textinput.Model
	scope     *quill.Scope
	ctx       *quill.Context
	out       *strings.Builder
	history   []historyEntry
	quitting  bool
	width     int
	height    int
}

func newREPLModel() replModel {
	ti := textinput.New()
	ti.Placeholder = "class Point: ..."
	ti.Focus()
	ti.CharLimit = 2000
	ti.Width = 60
	ti.PromptStyle = promptStyle
	ti.Prompt = "quill> "

	var out strings.Builder
	return replModel{
		textInput: ti,
		scope:     quill.NewScope(),
		ctx:       quill.NewContext(&out),
		out:       &out,
	}
}

func (m replModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.EnterAltScreen)
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = msg.Width - 10
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d"))):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+l"))):
			m.history = nil
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
			input := strings.TrimSpace(m.textInput.Value())
			m.textInput.SetValue("")
			if input == "" {
				return m, nil
			}
			if input == ":quit" || input == ":q" {
				m.quitting = true
				return m, tea.Quit
			}
			lines, isErr := m.evaluate(input)
			m.history = append(m.history, historyEntry{input: input, lines: lines, isErr: isErr})
			return m, nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// evaluate parses input as a standalone program and executes it against
// the session's persistent scope, returning any printed output split into
// lines (or the error text on failure).
func (m replModel) evaluate(input string) ([]string, bool) {
	m.out.Reset()
	program, err := quill.ParseProgram(input)
	if err != nil {
		return []string{err.Error()}, true
	}
	_, _, err = program.Execute(m.scope, m.ctx)
	if err != nil {
		return []string{err.Error()}, true
	}
	text := strings.TrimRight(m.out.String(), "\n")
	if text == "" {
		return nil, false
	}
	return strings.Split(text, "\n"), false
}

func (m replModel) View() string {
	if m.quitting {
		return mutedStyle.Render("Goodbye!\n")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("quill REPL") + " " + mutedStyle.Render(Version) + "\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", 40)) + "\n\n")

	for _, entry := range m.history {
		b.WriteString(mutedStyle.Render("  > ") + entry.input + "\n")
		for _, line := range entry.lines {
			if entry.isErr {
				b.WriteString("  " + errorStyle.Render(line) + "\n")
			} else {
				b.WriteString("  " + resultStyle.Render(line) + "\n")
			}
		}
	}

	b.WriteString("\n" + m.textInput.View() + "\n\n")
	b.WriteString(mutedStyle.Render("ctrl+l clear  ctrl+c quit"))
	return b.String()
}

func newREPLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive quill session",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(newREPLModel(), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}
