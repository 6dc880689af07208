package handler

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNotHandled(t *testing.T) {
	if NotHandled.Handled || NotHandled.Cmd != nil {
		t.Errorf("NotHandled = %+v, want zero", NotHandled)
	}
}

func TestChain(t *testing.T) {
	var calls []string
	first := func(key string) Result {
		calls = append(calls, "first:"+key)
		return NotHandled
	}
	second := func(key string) Result {
		calls = append(calls, "second:"+key)
		return Handled(tea.Quit)
	}
	third := func(string) Result {
		calls = append(calls, "third")
		return Handled(nil)
	}

	handled, cmd := Chain("x", first, second, third)

	if !handled {
		t.Fatal("Chain() handled = false")
	}
	if cmd == nil {
		t.Error("Chain() should return the handling command")
	}
	if len(calls) != 2 || calls[0] != "first:x" || calls[1] != "second:x" {
		t.Errorf("calls = %v", calls)
	}
}

func TestChain_NoneHandle(t *testing.T) {
	handled, cmd := Chain("x", func(string) Result { return NotHandled })
	if handled || cmd != nil {
		t.Errorf("Chain() = (%v, %v), want (false, nil)", handled, cmd)
	}
}
