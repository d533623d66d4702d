package main

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the heap inspector's keyboard shortcuts, a trimmed
// version of the teacher's hiveexplorer KeyMap scoped to the operations a
// read-mostly heap browser actually needs.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	GC      key.Binding
	Alloc   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the inspector's default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		GC: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "run gc cycle"),
		),
		Alloc: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "allocate one object of the selected kind"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
