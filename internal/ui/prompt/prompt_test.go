package prompt

import tea "charm.land/bubbletea/v2"

// keyPress builds the key message for a key name as printed by
// tea.KeyPressMsg.String.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	}
	r := []rune(key)[0]
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}
