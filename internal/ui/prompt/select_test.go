package prompt

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func languageOptions() []Option {
	return []Option{
		{Value: "html", Description: "<!-- … -->"},
		{Value: "python"},
		{Value: "typescript", Description: "// …"},
	}
}

func TestSelectModel_Update(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		keys         []tea.KeyPressMsg
		wantSelected int
		wantDone     bool
		wantCancel   bool
	}{
		{"enter selects first", []tea.KeyPressMsg{keyPress("enter")}, 0, true, false},
		{"down then enter", []tea.KeyPressMsg{{Code: tea.KeyDown}, keyPress("enter")}, 1, true, false},
		{"esc cancels", []tea.KeyPressMsg{keyPress("esc")}, -1, true, true},
		{"q cancels", []tea.KeyPressMsg{keyPress("q")}, -1, true, true},
		{"ctrl+c cancels", []tea.KeyPressMsg{keyPress("ctrl+c")}, -1, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var model tea.Model = newSelectModel("Language", languageOptions())
			for _, k := range tt.keys {
				model, _ = model.Update(k)
			}
			m := model.(selectModel)

			if m.done != tt.wantDone {
				t.Errorf("done = %v, want %v", m.done, tt.wantDone)
			}
			if m.cancelled != tt.wantCancel {
				t.Errorf("cancelled = %v, want %v", m.cancelled, tt.wantCancel)
			}
			if !tt.wantCancel && m.selected != tt.wantSelected {
				t.Errorf("selected = %d, want %d", m.selected, tt.wantSelected)
			}
		})
	}
}

func TestSelectModel_WindowSize(t *testing.T) {
	t.Parallel()

	m := newSelectModel("Language", languageOptions())
	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if cmd != nil {
		t.Error("WindowSizeMsg should not return a command")
	}
	if w := updated.(selectModel).list.Width(); w != 100 {
		t.Errorf("list width = %d, want 100", w)
	}
}

func TestSelectModel_View(t *testing.T) {
	t.Parallel()

	m := newSelectModel("Language", languageOptions())
	if m.View().Content == "" {
		t.Error("View().Content should not be empty when not done")
	}
	m.done = true
	_ = m.View()
}

func TestSelect_NoOptions(t *testing.T) {
	t.Parallel()

	res, err := Select("Language", nil)
	if err != nil {
		t.Fatalf("Select() error: %v", err)
	}
	if !res.Cancelled {
		t.Error("Select() with no options should be cancelled")
	}
}
