package prompt

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestTextInputModel(t *testing.T) {
	t.Parallel()

	t.Run("enter keeps prefilled value", func(t *testing.T) {
		t.Parallel()
		updated, cmd := newTextInputModel("Your name:", "alice", "Alice Example").Update(keyPress("enter"))
		m := updated.(textInputModel)
		if !m.done || m.cancelled || cmd == nil {
			t.Errorf("done=%v cancelled=%v cmd=%v", m.done, m.cancelled, cmd != nil)
		}
		if got := m.result().Value; got != "Alice Example" {
			t.Errorf("result().Value = %q", got)
		}
	})

	t.Run("result trims whitespace", func(t *testing.T) {
		t.Parallel()
		m := newTextInputModel("Your name:", "alice", "  carol \t")
		if got := m.result(); got.Value != "carol" || got.Cancelled {
			t.Errorf("result() = %+v, want carol", got)
		}
	})

	t.Run("value is capped", func(t *testing.T) {
		t.Parallel()
		m := newTextInputModel("Your name:", "alice", strings.Repeat("x", nameLimit+10))
		if got := len(m.result().Value); got != nameLimit {
			t.Errorf("len(result().Value) = %d, want %d", got, nameLimit)
		}
	})

	t.Run("esc cancels", func(t *testing.T) {
		t.Parallel()
		updated, _ := newTextInputModel("Your name:", "alice", "").Update(keyPress("esc"))
		if m := updated.(textInputModel); !m.cancelled || !m.done {
			t.Errorf("cancelled=%v done=%v", m.cancelled, m.done)
		}
	})

	t.Run("view shows prompt until done", func(t *testing.T) {
		t.Parallel()
		m := newTextInputModel("Your name:", "alice", "")
		got := ansi.Strip(m.View().Content)
		if !strings.HasPrefix(got, "Your name:\n") || !strings.HasSuffix(got, "\nenter to save, esc to cancel") {
			t.Errorf("View() = %q", got)
		}
		m.done = true
		if got := m.View().Content; got != "" {
			t.Errorf("View() after done = %q", got)
		}
	})
}
