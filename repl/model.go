// Package repl is an interactive read-eval-print loop for arithmetic
// expressions. Input that is not yet a complete expression, such as an
// unclosed parenthesis, continues on the next line.
//
// A number is settled at the end of the line it is typed on, so a line
// ending in "1." or "2e" is evaluated right away and reports the dangling
// "." or "e" instead of waiting for more digits.
package repl

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/arith/arith"
	"github.com/dhamidi/arith/format"
)

var log = commonlog.GetLogger("arith.repl")

const (
	prompt             = "> "
	continuationPrompt = "… "
	maxEntries         = 100
)

// Entry is one evaluated input and its printed result.
type Entry struct {
	Input  string
	Output string
	Failed bool
}

type Model struct {
	input     textinput.Model
	evaluator *arith.Evaluator
	precision int

	pending []string
	entries []Entry

	history      []string
	historyIndex int // -1 while editing a new line
	draft        string

	quitting bool
}

func New(evaluator *arith.Evaluator, precision int) Model {
	if evaluator == nil {
		evaluator = arith.New()
	}
	ti := textinput.New()
	ti.Prompt = PromptStyle.Render(prompt)
	ti.Placeholder = "1 + 2 * 3"
	ti.Focus()

	return Model{
		input:        ti,
		evaluator:    evaluator,
		precision:    precision,
		historyIndex: -1,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.input.Width = max(msg.Width-len(prompt)-1, 10)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEsc:
		if len(m.pending) > 0 {
			m.pending = nil
			m.setPrompt()
			m.input.Reset()
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case tea.KeyCtrlL:
		m.entries = nil
		return m, nil

	case tea.KeyUp:
		m.recall(1)
		return m, nil

	case tea.KeyDown:
		m.recall(-1)
		return m, nil

	case tea.KeyEnter:
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()
	m.historyIndex = -1

	if len(m.pending) == 0 {
		switch strings.TrimSpace(line) {
		case "":
			return m, nil
		case ":q", ":quit", "exit":
			m.quitting = true
			return m, tea.Quit
		}
	}

	text := strings.Join(append(m.pending, line), "\n")
	if !m.evaluator.IsComplete(text) {
		m.pending = append(m.pending, line)
		m.setPrompt()
		return m, nil
	}
	m.pending = nil
	m.setPrompt()

	m.history = append(m.history, strings.ReplaceAll(text, "\n", " "))
	m.addEntry(m.evaluate(text))
	return m, nil
}

func (m Model) evaluate(text string) Entry {
	v, err := m.evaluator.Evaluate(text)
	if err != nil {
		log.Debugf("evaluate %q: %s", text, err)
		return Entry{Input: text, Output: err.Error(), Failed: true}
	}
	return Entry{Input: text, Output: format.FormatValue(v, m.precision)}
}

func (m *Model) addEntry(e Entry) {
	m.entries = append(m.entries, e)
	if len(m.entries) > maxEntries {
		m.entries = m.entries[len(m.entries)-maxEntries:]
	}
}

// recall moves through the input history; delta 1 goes back in time.
func (m *Model) recall(delta int) {
	if len(m.history) == 0 {
		return
	}
	if m.historyIndex == -1 {
		if delta < 0 {
			return
		}
		m.draft = m.input.Value()
	}
	idx := m.historyIndex + delta
	switch {
	case idx < 0:
		m.historyIndex = -1
		m.input.SetValue(m.draft)
	case idx >= len(m.history):
		return
	default:
		m.historyIndex = idx
		m.input.SetValue(m.history[len(m.history)-1-idx])
	}
	m.input.CursorEnd()
}

func (m *Model) setPrompt() {
	if len(m.pending) > 0 {
		m.input.Prompt = PromptStyle.Render(continuationPrompt)
	} else {
		m.input.Prompt = PromptStyle.Render(prompt)
	}
}

// Entries returns the evaluated inputs, oldest first.
func (m Model) Entries() []Entry {
	return m.entries
}

// Pending returns the lines of an unfinished expression.
func (m Model) Pending() []string {
	return m.pending
}

func (m Model) View() string {
	var sb strings.Builder
	for _, e := range m.entries {
		for i, line := range strings.Split(e.Input, "\n") {
			p := prompt
			if i > 0 {
				p = continuationPrompt
			}
			sb.WriteString(PromptStyle.Render(p) + line + "\n")
		}
		if e.Failed {
			sb.WriteString(ErrorStyle.Render(e.Output) + "\n")
		} else {
			sb.WriteString(ValueStyle.Render(e.Output) + "\n")
		}
	}
	if m.quitting {
		return sb.String()
	}
	for i, line := range m.pending {
		p := prompt
		if i > 0 {
			p = continuationPrompt
		}
		sb.WriteString(PromptStyle.Render(p) + line + "\n")
	}
	sb.WriteString(m.input.View() + "\n")
	sb.WriteString(HelpStyle.Render("enter evaluate • ↑/↓ history • esc cancel/quit • ctrl+l clear") + "\n")
	return sb.String()
}

// Run starts the REPL on the terminal.
func Run(evaluator *arith.Evaluator, precision int) error {
	p := tea.NewProgram(New(evaluator, precision))
	_, err := p.Run()
	return err
}
