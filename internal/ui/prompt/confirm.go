package prompt

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/devcomment/internal/ui/styles"
)

// ConfirmResult holds the result of a confirmation prompt.
type ConfirmResult struct {
	Confirmed bool
	Cancelled bool
}

// Question is a yes/no question. Detail is shown muted below the title,
// and DefaultYes decides what a bare enter means.
type Question struct {
	Title      string
	Detail     string
	DefaultYes bool
}

func (q Question) hint() string {
	if q.DefaultYes {
		return "[Y/n]"
	}
	return "[y/N]"
}

type confirmModel struct {
	q         Question
	confirmed bool
	done      bool
	cancelled bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "Y":
		m.confirmed = true
	case "n", "N":
		m.confirmed = false
	case "enter":
		m.confirmed = m.q.DefaultYes
	case "ctrl+c", "esc":
		m.cancelled = true
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

func (m confirmModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	var b strings.Builder
	b.WriteString(m.q.Title)
	b.WriteString(" ")
	b.WriteString(styles.MutedStyle.Render(m.q.hint()))
	b.WriteString(" ")
	if m.q.Detail != "" {
		b.WriteString("\n")
		b.WriteString(styles.MutedStyle.Render(m.q.Detail))
	}
	return tea.NewView(b.String())
}

// Confirm asks q and returns the answer. Esc and ctrl+c cancel.
func Confirm(q Question) (ConfirmResult, error) {
	finalModel, err := run(confirmModel{q: q})
	if err != nil {
		return ConfirmResult{}, err
	}
	m := finalModel.(confirmModel)
	return ConfirmResult{
		Confirmed: m.confirmed,
		Cancelled: m.cancelled,
	}, nil
}
