package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTaskModelRunsActionAndRendersDetails(t *testing.T) {
	m := taskModel{title: "seed apply", action: func(context.Context) ([]string, error) {
		return []string{"inserted owners=2 items=3"}, nil
	}}
	if !strings.Contains(m.View(), "Running...") {
		t.Fatalf("expected running view, got %q", m.View())
	}

	msg := m.Init()()
	next, cmd := m.Update(msg)
	if cmd == nil {
		t.Fatal("expected quit command after action completes")
	}
	view := next.View()
	if !strings.Contains(view, "OK") || !strings.Contains(view, "inserted owners=2 items=3") {
		t.Fatalf("unexpected view %q", view)
	}
}

func TestTaskModelRendersFailure(t *testing.T) {
	m := taskModel{title: "migrate up"}
	next, _ := m.Update(actionMsg{err: errors.New("db down"), details: []string{"partial"}})
	view := next.View()
	if !strings.Contains(view, "FAILED") || !strings.Contains(view, "db down") || !strings.Contains(view, "partial") {
		t.Fatalf("unexpected view %q", view)
	}
}

func TestTaskModelCtrlCCancels(t *testing.T) {
	m := taskModel{title: "migrate up"}
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit on ctrl+c")
	}
	if res := next.(taskModel); !errors.Is(res.err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", res.err)
	}
}
