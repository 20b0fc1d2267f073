package prompt

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/devcomment/internal/ui/styles"
)

// TextInputResult holds the result of a text input prompt.
type TextInputResult struct {
	Value     string
	Cancelled bool
}

type textInputModel struct {
	textInput textinput.Model
	prompt    string
	done      bool
	cancelled bool
}

func (m textInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m textInputModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	var b strings.Builder
	b.WriteString(m.prompt)
	b.WriteString("\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n")
	b.WriteString(styles.MutedStyle.Render("enter to save, esc to cancel"))
	return tea.NewView(b.String())
}

// nameLimit caps single-line values such as the {user} name.
const nameLimit = 64

func newTextInputModel(prompt, placeholder, value string) textInputModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = nameLimit
	ti.SetValue(value)
	ti.Focus()
	ti.SetWidth(40)

	return textInputModel{
		textInput: ti,
		prompt:    prompt,
	}
}

// TextInput asks for a single line, prefilled with value. The returned
// value has surrounding whitespace removed.
func TextInput(prompt, placeholder, value string) (TextInputResult, error) {
	finalModel, err := run(newTextInputModel(prompt, placeholder, value))
	if err != nil {
		return TextInputResult{}, err
	}
	m := finalModel.(textInputModel)
	return m.result(), nil
}

func (m textInputModel) result() TextInputResult {
	return TextInputResult{
		Value:     strings.TrimSpace(m.textInput.Value()),
		Cancelled: m.cancelled,
	}
}
