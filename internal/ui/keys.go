package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Select  key.Binding
	Pet     key.Binding
	Jump    key.Binding
	Dance   key.Binding
	Recolor key.Binding
	Custom  key.Binding
	Details key.Binding
	Back    key.Binding
	Help    key.Binding
	Quit    key.Binding
	Force   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev color"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next color"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Pet: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pet"),
		),
		Jump: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "jump"),
		),
		Dance: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "dance"),
		),
		Recolor: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "recolor"),
		),
		Custom: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "custom color"),
		),
		Details: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stats"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Force: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pet, k.Jump, k.Dance, k.Recolor, k.Details, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Pet, k.Jump, k.Dance, k.Recolor},
		{k.Left, k.Right, k.Custom, k.Back},
		{k.Details, k.Help, k.Quit},
	}
}
