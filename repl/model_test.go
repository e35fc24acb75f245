package repl

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/dhamidi/arith/arith"
)

func enter(t *testing.T, m Model, line string) (Model, tea.Cmd) {
	t.Helper()
	m.input.SetValue(line)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model), cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestEvaluateLine(t *testing.T) {
	m := New(arith.New(), -1)

	m, _ = enter(t, m, "1 + 2 * 3")
	m, _ = enter(t, m, "1 2")

	want := []Entry{
		{Input: "1 + 2 * 3", Output: "7"},
		{Input: "1 2", Output: `1:3: unexpected "2" after expression`, Failed: true},
	}
	if diff := cmp.Diff(want, m.Entries()); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
	if m.input.Value() != "" {
		t.Errorf("input not cleared: %q", m.input.Value())
	}
}

func TestContinuationLines(t *testing.T) {
	m := New(arith.New(), -1)

	m, _ = enter(t, m, "2 * (1 +")
	if diff := cmp.Diff([]string{"2 * (1 +"}, m.Pending()); diff != "" {
		t.Fatalf("pending mismatch (-want +got):\n%s", diff)
	}
	if len(m.Entries()) != 0 {
		t.Fatalf("incomplete input was evaluated: %+v", m.Entries())
	}

	m, _ = enter(t, m, "3")
	m, _ = enter(t, m, ")")

	if len(m.Pending()) != 0 {
		t.Errorf("pending = %q, want none", m.Pending())
	}
	entries := m.Entries()
	if len(entries) != 1 || entries[0].Output != "8" {
		t.Fatalf("entries = %+v, want one entry with 8", entries)
	}
	if entries[0].Input != "2 * (1 +\n3\n)" {
		t.Errorf("input = %q", entries[0].Input)
	}
}

func TestDanglingNumberIsNotContinued(t *testing.T) {
	m := New(arith.New(), -1)

	m, _ = enter(t, m, "(1.")
	if len(m.Pending()) != 0 {
		t.Fatalf("pending = %q, want none", m.Pending())
	}
	entries := m.Entries()
	if len(entries) != 1 || !entries[0].Failed {
		t.Errorf("entries = %+v, want one failed entry", entries)
	}
}

func TestEscape(t *testing.T) {
	m := New(arith.New(), -1)
	m, _ = enter(t, m, "(")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if isQuit(cmd) {
		t.Fatal("escape with pending input should not quit")
	}
	if len(m.Pending()) != 0 {
		t.Errorf("pending = %q, want none", m.Pending())
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !isQuit(cmd) {
		t.Error("escape without pending input should quit")
	}
}

func TestQuit(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyCtrlD} {
		_, cmd := New(nil, -1).Update(tea.KeyMsg{Type: key})
		if !isQuit(cmd) {
			t.Errorf("%v did not quit", key)
		}
	}
	if _, cmd := enter(t, New(nil, -1), ":q"); !isQuit(cmd) {
		t.Error(":q did not quit")
	}
}

func TestHistory(t *testing.T) {
	m := New(arith.New(), 3)
	m, _ = enter(t, m, "1/3")
	m, _ = enter(t, m, "2")

	if m.Entries()[0].Output != "0.333" {
		t.Errorf("precision not applied: %q", m.Entries()[0].Output)
	}

	m.input.SetValue("draft")
	up := tea.KeyMsg{Type: tea.KeyUp}
	down := tea.KeyMsg{Type: tea.KeyDown}

	steps := []struct {
		key      tea.KeyMsg
		expected string
	}{
		{up, "2"},
		{up, "1/3"},
		{up, "1/3"},
		{down, "2"},
		{down, "draft"},
	}
	for i, step := range steps {
		next, _ := m.Update(step.key)
		m = next.(Model)
		if m.input.Value() != step.expected {
			t.Errorf("step %d: input = %q, want %q", i, m.input.Value(), step.expected)
		}
	}
}

func TestView(t *testing.T) {
	m := New(arith.New(), -1)
	m, _ = enter(t, m, "6 * 7")
	m, _ = enter(t, m, "(1")

	view := m.View()
	for _, want := range []string{"6 * 7", "42", "(1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view does not contain %q:\n%s", want, view)
		}
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	if len(next.(Model).Entries()) != 0 {
		t.Error("ctrl+l did not clear the transcript")
	}
}
