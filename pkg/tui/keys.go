package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Edit     key.Binding
	Toggle   key.Binding
	Append   key.Binding
	Undo     key.Binding
	Holiday  key.Binding
	Search   key.Binding
	Jump     key.Binding
	Today    key.Binding
	View     key.Binding
	Commit   key.Binding
	NewLine  key.Binding
	Cancel   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Toggle, k.Undo, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Today, k.Jump},
		{k.Edit, k.Toggle, k.Append, k.Undo, k.Holiday},
		{k.Search, k.View, k.Help, k.Quit},
	}
}

// EditHelp is the bindings shown while a cell is being edited.
func (k KeyMap) EditHelp() []key.Binding {
	return []key.Binding{k.Commit, k.NewLine, k.Cancel}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev day"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next day"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter", "edit day"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle task"),
		),
		Append: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add task"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo"),
		),
		Holiday: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "holiday"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Jump: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "go to date"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		View: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "year view"),
		),
		Commit: key.NewBinding(
			key.WithKeys("ctrl+d", "ctrl+enter"),
			key.WithHelp("ctrl+d", "finish"),
		),
		NewLine: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "new task line"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
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
