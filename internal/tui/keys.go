package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the application key bindings
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	Filter     key.Binding
	Genre      key.Binding
	ClearGenre key.Binding
	Search     key.Binding
	Favorite   key.Binding
	Details    key.Binding
	Theme      key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextTab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Filter:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "cycle filter")),
		Genre:      key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "cycle genre")),
		ClearGenre: key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "clear genre")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Favorite:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "favorite")),
		Details:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Theme:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
