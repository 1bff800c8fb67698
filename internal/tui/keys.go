package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the key bindings of the converter.
//
// Undo, copy and paste work in every pane. The remaining bindings depend on
// which pane has the focus.
type keyMap struct {
	NextPane, PrevPane   key.Binding
	NextGroup, PrevGroup key.Binding
	Up, Down             key.Binding
	Apply                key.Binding

	Undo        key.Binding
	Copy, Paste key.Binding
	Clear       key.Binding

	Help key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextPane: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pane")),
		PrevPane: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous pane")),

		NextGroup: key.NewBinding(key.WithKeys("ctrl+right", "f3"), key.WithHelp("ctrl+→", "next tab")),
		PrevGroup: key.NewBinding(key.WithKeys("ctrl+left", "f2"), key.WithHelp("ctrl+←", "previous tab")),

		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Apply: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),

		Undo:  key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Copy:  key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy text")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste text")),
		Clear: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear text")),

		Help: key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Quit: key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPane, k.Apply, k.Undo, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextPane, k.PrevPane, k.NextGroup, k.PrevGroup},
		{k.Up, k.Down, k.Apply},
		{k.Undo, k.Copy, k.Paste, k.Clear},
		{k.Help, k.Quit},
	}
}
