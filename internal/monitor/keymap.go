package monitor

import "fmt"

// KeyMap defines the keyboard shortcuts displayed in the footer.
type KeyMap struct {
	Up      string
	Down    string
	Refresh string
	Quit    string
}

// DefaultKeyMap returns the default shortcut mapping.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:      "k",
		Down:    "j",
		Refresh: "r",
		Quit:    "q",
	}
}

// HelpLine renders the footer help text.
func (k KeyMap) HelpLine() string {
	return fmt.Sprintf("[%s/%s] move  [%s] refresh  [%s] quit",
		k.Up, k.Down, k.Refresh, k.Quit)
}
