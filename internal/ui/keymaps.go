package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the terminal client reacts to.
type KeyMap struct {
	Quit       key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Select     key.Binding
	Add        key.Binding
	Delete     key.Binding
	Toggle     key.Binding
	Today      key.Binding
	NextMonth  key.Binding
	PrevMonth  key.Binding
	StartPause key.Binding
	Reset      key.Binding
	Back       key.Binding
	SwitchAuth key.Binding
	Logout     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:       key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		NextTab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous tab")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up", "move up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down", "move down")),
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("left", "move left")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("right", "move right")),
		Select:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle done")),
		Today:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "jump to today")),
		NextMonth:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next month")),
		PrevMonth:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "previous month")),
		StartPause: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start/pause")),
		Reset:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		SwitchAuth: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "switch login/signup")),
		Logout:     key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "log out")),
	}
}
