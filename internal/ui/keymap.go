package ui

import tea "github.com/charmbracelet/bubbletea"

// KeyMap binds logical actions to keys. Up/down carry a control-byte alias
// next to the cursor key so both terminal dialects land on the same action.
type KeyMap struct {
	Up          tea.Key
	UpAlias     tea.Key
	Down        tea.Key
	DownAlias   tea.Key
	ScreenDown  tea.Key
	Select      tea.Key
	Cancel      tea.Key
	CancelAlias tea.Key
	ToggleMode  tea.Key
	Copy        tea.Key
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:          tea.Key{Type: tea.KeyUp},
		UpAlias:     tea.Key{Type: tea.KeyCtrlP},
		Down:        tea.Key{Type: tea.KeyDown},
		DownAlias:   tea.Key{Type: tea.KeyCtrlN},
		ScreenDown:  tea.Key{Type: tea.KeyCtrlD},
		Select:      tea.Key{Type: tea.KeyEnter},
		Cancel:      tea.Key{Type: tea.KeyCtrlC},
		CancelAlias: tea.Key{Type: tea.KeyEsc},
		ToggleMode:  tea.Key{Type: tea.KeyCtrlT},
		Copy:        tea.Key{Type: tea.KeyCtrlY},
	}
}

func keyMatches(msg tea.KeyMsg, k tea.Key) bool {
	if k.Type != tea.KeyRunes {
		return msg.Type == k.Type
	}
	if len(k.Runes) > 0 {
		return msg.String() == string(k.Runes)
	}
	return false
}
