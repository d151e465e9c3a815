package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard bindings for the TUI.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Section1 key.Binding
	Section2 key.Binding
	Section3 key.Binding
	Section4 key.Binding
	Section5 key.Binding
	Enter    key.Binding
	Theme    key.Binding
	Reload   key.Binding
	Debug    key.Binding
	Help     key.Binding
	Escape   key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Section1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "intro"),
		),
		Section2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "skills"),
		),
		Section3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "work"),
		),
		Section4: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "career"),
		),
		Section5: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "notes"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "view work"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle theme"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload content"),
		),
		Debug: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "debug log"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close overlay"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Top, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.Top, k.Enter},
		{k.Section1, k.Section2, k.Section3, k.Section4, k.Section5},
		{k.Theme, k.Reload, k.Debug},
		{k.Help, k.Escape, k.Quit},
	}
}
