package ui

import "github.com/charmbracelet/bubbles/key"

type bookingKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Enter   key.Binding
	Back    key.Binding
	AddRow  key.Binding
	DropRow key.Binding
	Remove  key.Binding
	Submit  key.Binding
	Quit    key.Binding
}

func (k bookingKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.AddRow, k.Submit, k.Quit}
}

func (k bookingKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter, k.Back},
		{k.AddRow, k.DropRow, k.Remove, k.Submit, k.Quit},
	}
}

var bookingKeys = bookingKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "move down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	AddRow: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add date"),
	),
	DropRow: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "drop date"),
	),
	Remove: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "remove slot"),
	),
	Submit: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "submit booking"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
